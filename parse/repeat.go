package parse

import (
	"github.com/dhamidi/parsec/input"
)

// foldMany0 runs p until it fails, folding each value into acc.
// The failure that ends the loop is dropped.
func foldMany0[T, V, A any](p Parser[T, V], acc A, f func(A, V) A, in input.Input[T]) (A, input.Input[T]) {
	for {
		v, rest, err := p.Parse(in)
		if err != nil {
			return acc, in
		}
		checkProgress(in, rest)
		acc = f(acc, v)
		in = rest
	}
}

func foldMany1[T, V, A any](p Parser[T, V], acc A, f func(A, V) A, in input.Input[T]) (A, input.Input[T], error) {
	v, rest, err := p.Parse(in)
	if err != nil {
		return acc, in, err
	}
	checkProgress(in, rest)
	acc, rest = foldMany0(p, f(acc, v), f, rest)
	return acc, rest, nil
}

func appendValue[V any](acc []V, v V) []V {
	return append(acc, v)
}

type manyParser[T, V any] struct {
	p Parser[T, V]
}

// Many applies p zero or more times and collects the values. It never fails.
// p must consume input whenever it succeeds.
func Many[T, V any](p Parser[T, V]) Parser[T, []V] {
	return manyParser[T, V]{p: p}
}

func (m manyParser[T, V]) Parse(in input.Input[T]) ([]V, input.Input[T], error) {
	values, rest := foldMany0(m.p, []V(nil), appendValue[V], in)
	return values, rest, nil
}

type many1Parser[T, V any] struct {
	p Parser[T, V]
}

// Many1 is like Many but requires one success. If the first attempt fails,
// its error is returned as is.
func Many1[T, V any](p Parser[T, V]) Parser[T, []V] {
	return many1Parser[T, V]{p: p}
}

func (m many1Parser[T, V]) Parse(in input.Input[T]) ([]V, input.Input[T], error) {
	values, rest, err := foldMany1(m.p, []V(nil), appendValue[V], in)
	if err != nil {
		return nil, in, err
	}
	return values, rest, nil
}

type foldParser[T, V, A any] struct {
	p    Parser[T, V]
	init A
	f    func(A, V) A
	min1 bool
}

// FoldMany0 applies p zero or more times, combining the values with f
// starting from init. Each call to Parse starts again from init, so init must
// not be mutated by f.
func FoldMany0[T, V, A any](p Parser[T, V], init A, f func(A, V) A) Parser[T, A] {
	return foldParser[T, V, A]{p: p, init: init, f: f}
}

// FoldMany1 is like FoldMany0 but requires one success.
func FoldMany1[T, V, A any](p Parser[T, V], init A, f func(A, V) A) Parser[T, A] {
	return foldParser[T, V, A]{p: p, init: init, f: f, min1: true}
}

func (fp foldParser[T, V, A]) Parse(in input.Input[T]) (A, input.Input[T], error) {
	if !fp.min1 {
		acc, rest := foldMany0(fp.p, fp.init, fp.f, in)
		return acc, rest, nil
	}
	acc, rest, err := foldMany1(fp.p, fp.init, fp.f, in)
	if err != nil {
		var zero A
		return zero, in, err
	}
	return acc, rest, nil
}
