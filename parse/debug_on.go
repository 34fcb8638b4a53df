//go:build parsecdebug

package parse

const debugProgress = true
