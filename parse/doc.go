// Package parse is a parser-combinator core over arbitrary item streams.
//
// # Overview
//
// A Parser[T, V] turns an input.Input[T] into a value of type V plus the
// input that is left, or fails with an error. Parsers are built from a small
// set of primitives (Item, Satisfy, Token, EOF, Pure, Fail) and combined with
// the operators in this package:
//
//	sequencing    And, Skip, PrecededBy, Between, Map2, Map3, Tuple2, Tuple3
//	transforming  Map, Bind
//	alternation   Or, Choice, Optional
//	repetition    Many, Many1, FoldMany0, FoldMany1, SepBy, SepBy1
//
// For example, a comma separated list of digits in brackets:
//
//	digit := parse.Satisfy(unicode.IsDigit)
//	list := parse.Between(parse.Token('['), parse.SepBy(digit, parse.Token(',')), parse.Token(']'))
//	digits, rest, err := list.Parse(input.NewString("[1,2,3]"))
//
// # Backtracking
//
// Inputs are immutable cursors. An alternative is tried against the same
// Input value the previous alternative saw, so whatever a failed attempt
// consumed never leaks into the next one. Sequencing does not backtrack: once
// the left side of And succeeds its progress stands, and a failure on the
// right side is returned as is.
//
// # Errors
//
// Failures are *Error[T] values. Sequencing forwards the first failure
// unchanged, Or and Choice aggregate the failures of all alternatives into a
// KindMany error in the order they were tried, and repetition swallows the
// one failure that ends the loop.
//
// # Caller obligations
//
// The element parser given to Many, Many1, FoldMany0, FoldMany1, SepBy and
// SepBy1 must consume input on every success. A parser that can succeed
// without consuming anything, such as Optional(p) or Pure(v), loops forever.
// Building with the parsecdebug tag turns this into a panic for inputs that
// report their length.
//
// Recursive grammars are expressed with Lazy. Recursion depth follows the
// nesting depth of the input, so very deeply nested input can exhaust the
// goroutine stack.
package parse
