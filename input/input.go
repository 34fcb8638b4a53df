// Package input defines the streams that parsers consume.
//
// An Input is an immutable cursor over a sequence of items. Decomposing it
// never mutates it: Uncons hands back the head item together with a new Input
// for everything after it, so holding on to an Input value is all it takes to
// come back to that point later. Every adapter in this package is a small
// struct of a shared buffer plus an offset, which makes copying one O(1).
package input

import (
	"fmt"
	"strconv"
)

// Input is a sequential source of items of type T.
//
// Implementations must be cheap to copy and must never mutate shared state:
// parsers backtrack by re-using Input values they held before an attempt.
type Input[T any] interface {
	// Uncons returns the next item and the input following it.
	// ok is false if the input is exhausted.
	Uncons() (item T, rest Input[T], ok bool)

	// Len returns the remaining length, if known. The unit is
	// adapter-specific but strictly decreases as items are consumed.
	Len() (n int, ok bool)
}

// IsEmpty reports whether in has no more items.
func IsEmpty[T any](in Input[T]) bool {
	if in == nil {
		return true
	}
	_, _, ok := in.Uncons()
	return !ok
}

// Positioner is implemented by inputs that can report where in the
// underlying source they are.
type Positioner interface {
	Position() Position
}

// Position represents a location in source text.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// maxPreview bounds how much remaining input a diagnostic shows.
const maxPreview = 32

func quotePreview(s string) string {
	if len(s) <= maxPreview {
		return strconv.Quote(s)
	}
	cut := maxPreview
	// back up to a rune boundary
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return strconv.Quote(s[:cut]) + "..."
}
