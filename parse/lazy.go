package parse

import (
	"sync"

	"github.com/dhamidi/parsec/input"
)

type lazyParser[T, V any] struct {
	get func() Parser[T, V]
}

// Lazy defers building a parser until it is first used. Recursive grammars
// need it: Go evaluates arguments eagerly, so a parser cannot mention itself
// while it is being constructed.
//
//	var expr parse.Parser[rune, int]
//	parens := parse.Between(open, parse.Lazy(func() parse.Parser[rune, int] { return expr }), closing)
//	expr = parse.Or(number, parens)
func Lazy[T, V any](build func() Parser[T, V]) Parser[T, V] {
	return lazyParser[T, V]{get: sync.OnceValue(build)}
}

func (l lazyParser[T, V]) Parse(in input.Input[T]) (V, input.Input[T], error) {
	return l.get().Parse(in)
}

type labelParser[T, V any] struct {
	p    Parser[T, V]
	name string
}

// Label reports a failure of p as an Expected error naming what was being
// parsed, with the item found at the start of the input. KindMessage
// failures are passed through since they carry semantic information.
func Label[T, V any](p Parser[T, V], name string) Parser[T, V] {
	return labelParser[T, V]{p: p, name: name}
}

func (l labelParser[T, V]) Parse(in input.Input[T]) (V, input.Input[T], error) {
	v, rest, err := l.p.Parse(in)
	if err == nil {
		return v, rest, nil
	}
	var zero V
	if perr, ok := err.(*Error[T]); ok && perr.Kind == KindMessage {
		return zero, in, err
	}
	found := "end of input"
	if item, _, ok := in.Uncons(); ok {
		found = describe(item)
	}
	return zero, in, NewExpected(l.name, found, in)
}
