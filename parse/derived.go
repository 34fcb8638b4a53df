package parse

import (
	"github.com/dhamidi/parsec/input"
)

type itemParser[T any] struct{}

// Item consumes any single item. It fails with KindUnexpectedEOF on empty
// input.
func Item[T any]() Parser[T, T] {
	return itemParser[T]{}
}

func (itemParser[T]) Parse(in input.Input[T]) (T, input.Input[T], error) {
	item, rest, ok := in.Uncons()
	if !ok {
		return item, in, NewUnexpectedEOF[T]()
	}
	return item, rest, nil
}

type satisfyParser[T any] struct {
	pred func(T) bool
}

// Satisfy consumes one item for which pred returns true.
func Satisfy[T any](pred func(T) bool) Parser[T, T] {
	return satisfyParser[T]{pred: pred}
}

func (s satisfyParser[T]) Parse(in input.Input[T]) (T, input.Input[T], error) {
	item, rest, ok := in.Uncons()
	if !ok {
		return item, in, NewUnexpectedEOF[T]()
	}
	if !s.pred(item) {
		var zero T
		return zero, in, NewExpected("item satisfying predicate", "different item", in)
	}
	return item, rest, nil
}

type tokenParser[T comparable] struct {
	expected T
}

// Token consumes one item equal to expected.
func Token[T comparable](expected T) Parser[T, T] {
	return tokenParser[T]{expected: expected}
}

func (tp tokenParser[T]) Parse(in input.Input[T]) (T, input.Input[T], error) {
	item, rest, ok := in.Uncons()
	if !ok {
		return item, in, NewUnexpectedEOF[T]()
	}
	if item != tp.expected {
		var zero T
		return zero, in, NewExpected(describe(tp.expected), describe(item), in)
	}
	return item, rest, nil
}

type eofParser[T any] struct{}

// EOF succeeds only on empty input.
func EOF[T any]() Parser[T, struct{}] {
	return eofParser[T]{}
}

func (eofParser[T]) Parse(in input.Input[T]) (struct{}, input.Input[T], error) {
	if !input.IsEmpty(in) {
		return struct{}{}, in, NewExpected("end of input", "more input", in)
	}
	return struct{}{}, in, nil
}

// Between parses left, p and right in order and keeps p's value.
func Between[T, L, V, R any](left Parser[T, L], p Parser[T, V], right Parser[T, R]) Parser[T, V] {
	return Skip(PrecededBy(p, left), right)
}

type choiceParser[T, V any] struct {
	parsers []Parser[T, V]
}

// Choice tries each parser in order on the same input and returns the first
// success. If all of them fail the error is a flat KindMany error holding
// every failure in the order the parsers were tried.
func Choice[T, V any](parsers ...Parser[T, V]) Parser[T, V] {
	return choiceParser[T, V]{parsers: parsers}
}

func (c choiceParser[T, V]) Parse(in input.Input[T]) (V, input.Input[T], error) {
	var errs []error
	for _, p := range c.parsers {
		v, rest, err := p.Parse(in)
		if err == nil {
			return v, rest, nil
		}
		errs = append(errs, err)
	}
	var zero V
	return zero, in, NewMany[T](errs...)
}

type sepByParser[T, V, S any] struct {
	p    Parser[T, V]
	sep  Parser[T, S]
	min1 bool
}

// SepBy parses zero or more p separated by sep. A separator that is not
// followed by p is left unconsumed.
func SepBy[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return sepByParser[T, V, S]{p: p, sep: sep}
}

// SepBy1 is like SepBy but requires one element; if the first element fails,
// its error is returned.
func SepBy1[T, V, S any](p Parser[T, V], sep Parser[T, S]) Parser[T, []V] {
	return sepByParser[T, V, S]{p: p, sep: sep, min1: true}
}

func (s sepByParser[T, V, S]) Parse(in input.Input[T]) ([]V, input.Input[T], error) {
	first, rest, err := s.p.Parse(in)
	if err != nil {
		if s.min1 {
			return nil, in, err
		}
		return nil, in, nil
	}

	values := []V{first}
	for {
		beforeSep := rest
		_, afterSep, err := s.sep.Parse(beforeSep)
		if err != nil {
			break
		}
		v, afterElem, err := s.p.Parse(afterSep)
		if err != nil {
			// dangling separator: resume from before it
			rest = beforeSep
			break
		}
		checkProgress(beforeSep, afterElem)
		values = append(values, v)
		rest = afterElem
	}
	return values, rest, nil
}
