package parse

import (
	"github.com/dhamidi/parsec/input"
)

type mapParser[T, A, B any] struct {
	p Parser[T, A]
	f func(A) B
}

// Map applies f to the value p produces. Failures pass through untouched.
func Map[T, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return mapParser[T, A, B]{p: p, f: f}
}

func (m mapParser[T, A, B]) Parse(in input.Input[T]) (B, input.Input[T], error) {
	v, rest, err := m.p.Parse(in)
	if err != nil {
		var zero B
		return zero, in, err
	}
	return m.f(v), rest, nil
}

type andParser[T, A, B any] struct {
	left  Parser[T, A]
	right Parser[T, B]
}

// And runs left, then right on what left did not consume, and keeps both
// values. The first failure is returned unchanged; right is not attempted
// if left fails.
func And[T, A, B any](left Parser[T, A], right Parser[T, B]) Parser[T, Pair[A, B]] {
	return andParser[T, A, B]{left: left, right: right}
}

func (a andParser[T, A, B]) Parse(in input.Input[T]) (Pair[A, B], input.Input[T], error) {
	l, rest, err := a.left.Parse(in)
	if err != nil {
		return Pair[A, B]{}, in, err
	}
	r, rest, err := a.right.Parse(rest)
	if err != nil {
		return Pair[A, B]{}, in, err
	}
	return Pair[A, B]{First: l, Second: r}, rest, nil
}

type skipParser[T, A, B any] struct {
	left  Parser[T, A]
	right Parser[T, B]
}

// Skip runs left then right and keeps only left's value.
func Skip[T, A, B any](left Parser[T, A], right Parser[T, B]) Parser[T, A] {
	return skipParser[T, A, B]{left: left, right: right}
}

func (s skipParser[T, A, B]) Parse(in input.Input[T]) (A, input.Input[T], error) {
	var zero A
	l, rest, err := s.left.Parse(in)
	if err != nil {
		return zero, in, err
	}
	_, rest, err = s.right.Parse(rest)
	if err != nil {
		return zero, in, err
	}
	return l, rest, nil
}

type precededParser[T, A, B any] struct {
	first  Parser[T, B]
	second Parser[T, A]
}

// PrecededBy runs first, then p, and keeps only p's value.
func PrecededBy[T, A, B any](p Parser[T, A], first Parser[T, B]) Parser[T, A] {
	return precededParser[T, A, B]{first: first, second: p}
}

func (pp precededParser[T, A, B]) Parse(in input.Input[T]) (A, input.Input[T], error) {
	_, rest, err := pp.first.Parse(in)
	if err != nil {
		var zero A
		return zero, in, err
	}
	v, rest, err := pp.second.Parse(rest)
	if err != nil {
		var zero A
		return zero, in, err
	}
	return v, rest, nil
}

type bindParser[T, A, B any] struct {
	p Parser[T, A]
	f func(A) Parser[T, B]
}

// Bind runs p and hands its value to f, which picks the parser to run on
// the rest of the input.
func Bind[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return bindParser[T, A, B]{p: p, f: f}
}

func (b bindParser[T, A, B]) Parse(in input.Input[T]) (B, input.Input[T], error) {
	v, rest, err := b.p.Parse(in)
	if err != nil {
		var zero B
		return zero, in, err
	}
	w, rest, err := b.f(v).Parse(rest)
	if err != nil {
		var zero B
		return zero, in, err
	}
	return w, rest, nil
}

type orParser[T, V any] struct {
	left  Parser[T, V]
	right Parser[T, V]
}

// Or tries left and, if it fails, tries right on the original input.
// When both fail the error is KindMany holding left's then right's error.
func Or[T, V any](left, right Parser[T, V]) Parser[T, V] {
	return orParser[T, V]{left: left, right: right}
}

func (o orParser[T, V]) Parse(in input.Input[T]) (V, input.Input[T], error) {
	v, rest, lerr := o.left.Parse(in)
	if lerr == nil {
		return v, rest, nil
	}
	v, rest, rerr := o.right.Parse(in)
	if rerr == nil {
		return v, rest, nil
	}
	var zero V
	return zero, in, NewMany[T](lerr, rerr)
}

type optionalParser[T, V any] struct {
	p Parser[T, V]
}

// Optional never fails: it yields Some(v) if p succeeds and None with the
// original input otherwise.
func Optional[T, V any](p Parser[T, V]) Parser[T, Option[V]] {
	return optionalParser[T, V]{p: p}
}

func (o optionalParser[T, V]) Parse(in input.Input[T]) (Option[V], input.Input[T], error) {
	v, rest, err := o.p.Parse(in)
	if err != nil {
		return None[V](), in, nil
	}
	return Some(v), rest, nil
}

type pureParser[T, V any] struct {
	value V
}

// Pure succeeds with value without consuming anything.
func Pure[T, V any](value V) Parser[T, V] {
	return pureParser[T, V]{value: value}
}

// Empty is an alias for Pure.
func Empty[T, V any](value V) Parser[T, V] {
	return Pure[T](value)
}

func (p pureParser[T, V]) Parse(in input.Input[T]) (V, input.Input[T], error) {
	return p.value, in, nil
}

type failParser[T, V any] struct {
	message string
}

// Fail always fails with a KindMessage error at the current input.
func Fail[T, V any](message string) Parser[T, V] {
	return failParser[T, V]{message: message}
}

func (f failParser[T, V]) Parse(in input.Input[T]) (V, input.Input[T], error) {
	var zero V
	return zero, in, NewMessage(f.message, in)
}
