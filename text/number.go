package text

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/dhamidi/parsec/input"
	"github.com/dhamidi/parsec/parse"
)

const invalidNumber = "invalid number"

// magnitude accumulates a decimal value, recording overflow of uint64.
type magnitude struct {
	value    uint64
	overflow bool
}

func addDigit(m magnitude, d rune) magnitude {
	if m.overflow {
		return m
	}
	n := uint64(d - '0')
	if m.value > (^uint64(0)-n)/10 {
		return magnitude{overflow: true}
	}
	return magnitude{value: m.value*10 + n}
}

var digits = parse.FoldMany1(Digit(), magnitude{}, addDigit)

type unsignedParser[N constraints.Unsigned] struct{}

// Unsigned parses one or more decimal digits into N. A value that does
// not fit in N fails with a KindMessage error at the first digit.
func Unsigned[N constraints.Unsigned]() parse.Parser[rune, N] {
	return unsignedParser[N]{}
}

func (unsignedParser[N]) Parse(in input.Input[rune]) (N, input.Input[rune], error) {
	m, rest, err := digits.Parse(in)
	if err != nil {
		return 0, in, err
	}
	n := N(m.value)
	if m.overflow || uint64(n) != m.value {
		return 0, in, parse.NewMessage(invalidNumber, in)
	}
	return n, rest, nil
}

type integerParser[N constraints.Signed] struct{}

var sign = parse.Optional(Char('-'))

// Integer parses an optionally negative decimal integer into N. A value
// that does not fit in N fails with a KindMessage error at the first digit.
func Integer[N constraints.Signed]() parse.Parser[rune, N] {
	return integerParser[N]{}
}

func (integerParser[N]) Parse(in input.Input[rune]) (N, input.Input[rune], error) {
	neg, start, err := sign.Parse(in)
	if err != nil {
		return 0, in, err
	}
	m, rest, err := digits.Parse(start)
	if err != nil {
		return 0, in, err
	}
	if m.overflow {
		return 0, in, parse.NewMessage(invalidNumber, start)
	}

	var v int64
	switch {
	case neg.OK && m.value <= 1<<63:
		v = int64(-m.value)
	case !neg.OK && m.value <= math.MaxInt64:
		v = int64(m.value)
	default:
		return 0, in, parse.NewMessage(invalidNumber, start)
	}
	n := N(v)
	if int64(n) != v {
		return 0, in, parse.NewMessage(invalidNumber, start)
	}
	return n, rest, nil
}
