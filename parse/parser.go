package parse

import (
	"github.com/dhamidi/parsec/input"
)

// Parser consumes items of type T and produces a value of type V.
//
// Parse must be a pure function of its input: calling it twice with equal
// inputs yields equal results. On success rest is a suffix of in.
type Parser[T, V any] interface {
	Parse(in input.Input[T]) (value V, rest input.Input[T], err error)
}

// Func adapts an ordinary function to the Parser interface.
type Func[T, V any] func(in input.Input[T]) (V, input.Input[T], error)

func (f Func[T, V]) Parse(in input.Input[T]) (V, input.Input[T], error) {
	return f(in)
}

// Pair holds the results of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the results of three parsers run in sequence.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Option is the result of Optional: OK reports whether Value was parsed.
type Option[V any] struct {
	Value V
	OK    bool
}

func Some[V any](v V) Option[V] {
	return Option[V]{Value: v, OK: true}
}

func None[V any]() Option[V] {
	return Option[V]{}
}

// Run parses in and fails unless the whole input is consumed.
func Run[T, V any](p Parser[T, V], in input.Input[T]) (V, error) {
	v, _, err := Skip(p, EOF[T]()).Parse(in)
	return v, err
}
