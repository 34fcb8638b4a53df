// Package calc evaluates integer arithmetic expressions.
//
// The grammar is
//
//	expr   = term { ("+" | "-") term } .
//	term   = factor { ("*" | "/") factor } .
//	factor = number | "(" expr ")" | "-" factor .
//
// with whitespace allowed around every token. Operators are left
// associative and arithmetic wraps on int64 overflow.
package calc

import (
	"github.com/dhamidi/parsec/input"
	"github.com/dhamidi/parsec/parse"
	"github.com/dhamidi/parsec/text"
)

// Eval evaluates s, which must consist of a single expression.
func Eval(s string) (int64, error) {
	return parse.Run(grammar, input.NewString(s))
}

// Parser returns the expression parser. It accepts leading whitespace and
// stops after the expression and any whitespace following it.
func Parser() parse.Parser[rune, int64] {
	return grammar
}

var grammar = parse.PrecededBy(build(), text.Spaces())

func lexeme[V any](p parse.Parser[rune, V]) parse.Parser[rune, V] {
	return text.Lexeme(p)
}

func build() parse.Parser[rune, int64] {
	var expr, factor parse.Parser[rune, int64]

	number := lexeme(parse.Label(text.Integer[int64](), "number"))
	parens := parse.Between(
		lexeme(text.Char('(')),
		parse.Lazy(func() parse.Parser[rune, int64] { return expr }),
		lexeme(text.Char(')')),
	)
	negated := parse.Map(
		parse.PrecededBy(parse.Lazy(func() parse.Parser[rune, int64] { return factor }), lexeme(text.Char('-'))),
		func(v int64) int64 { return -v },
	)

	factor = parse.Trace("factor", parse.Choice(number, parens, negated))
	term := parse.Trace("term", chain(factor, "*/"))
	expr = parse.Trace("expr", chain(term, "+-"))
	return expr
}

type operand struct {
	value int64
	at    input.Input[rune]
}

type step struct {
	op  rune
	arg operand
}

type total struct {
	value int64
	err   error
}

// positioned remembers where each operand started so that semantic errors
// point at it.
func positioned(p parse.Parser[rune, int64]) parse.Parser[rune, operand] {
	return parse.Func[rune, operand](func(in input.Input[rune]) (operand, input.Input[rune], error) {
		v, rest, err := p.Parse(in)
		if err != nil {
			return operand{}, in, err
		}
		return operand{value: v, at: in}, rest, nil
	})
}

func apply(acc total, s step) total {
	if acc.err != nil {
		return acc
	}
	switch s.op {
	case '+':
		acc.value += s.arg.value
	case '-':
		acc.value -= s.arg.value
	case '*':
		acc.value *= s.arg.value
	case '/':
		if s.arg.value == 0 {
			return total{err: parse.NewMessage("division by zero", s.arg.at)}
		}
		acc.value /= s.arg.value
	}
	return acc
}

// chain parses arg { op arg } where op is one of ops, folding left to right.
func chain(p parse.Parser[rune, int64], ops string) parse.Parser[rune, int64] {
	arg := positioned(p)
	steps := parse.Map2(lexeme(text.OneOf(ops)), arg, func(op rune, a operand) step {
		return step{op: op, arg: a}
	})
	folded := parse.Bind(arg, func(first operand) parse.Parser[rune, total] {
		return parse.FoldMany0(steps, total{value: first.value}, apply)
	})
	return parse.Bind(folded, func(t total) parse.Parser[rune, int64] {
		if t.err != nil {
			return failWith[int64](t.err)
		}
		return parse.Pure[rune](t.value)
	})
}

func failWith[V any](err error) parse.Parser[rune, V] {
	return parse.Func[rune, V](func(in input.Input[rune]) (V, input.Input[rune], error) {
		var zero V
		return zero, in, err
	})
}
