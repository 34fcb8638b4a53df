package parse

import (
	"fmt"

	"github.com/dhamidi/parsec/input"
)

// checkProgress panics if a repeated parser succeeded without shrinking
// the input. It is a no-op unless built with the parsecdebug tag, and only
// fires for inputs that know their length.
func checkProgress[T any](before, after input.Input[T]) {
	if !debugProgress {
		return
	}
	n, ok := before.Len()
	if !ok || after == nil {
		return
	}
	m, ok := after.Len()
	if ok && m >= n {
		panic(fmt.Sprintf("parse: repeated parser succeeded without consuming input at %v", before))
	}
}
