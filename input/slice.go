package input

import (
	"fmt"
	"strings"
)

// Slice is an Input over a homogeneous sequence of items, such as lexer
// tokens, DOM nodes or decoded JSON values.
// The backing slice must not be modified while any Slice value refers to it.
type Slice[T comparable] struct {
	items []T
	off   int
}

// NewSlice returns an Input positioned at the first element of items.
func NewSlice[T comparable](items []T) Slice[T] {
	return Slice[T]{items: items}
}

func (s Slice[T]) Uncons() (T, Input[T], bool) {
	if s.off >= len(s.items) {
		var zero T
		return zero, nil, false
	}
	return s.items[s.off], Slice[T]{items: s.items, off: s.off + 1}, true
}

func (s Slice[T]) Len() (int, bool) {
	return len(s.items) - s.off, true
}

// Rest returns the items not yet consumed. Callers must not modify them.
func (s Slice[T]) Rest() []T {
	return s.items[s.off:]
}

// Offset returns the index of the next item.
func (s Slice[T]) Offset() int {
	return s.off
}

func (s Slice[T]) Equal(other Slice[T]) bool {
	a, b := s.Rest(), other.Rest()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s Slice[T]) String() string {
	rest := s.Rest()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("@%d [", s.off))
	for i, item := range rest {
		if i == 8 {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteString("]")
	return sb.String()
}
