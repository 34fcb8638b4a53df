// Package text provides character-level parsers over input.String.
//
// Everything here is built from the primitives in package parse; the only
// parsers with their own Parse method are String and the number parsers,
// which report failures against the input they started from.
package text

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dhamidi/parsec/input"
	"github.com/dhamidi/parsec/parse"
)

// Char parses the rune c.
func Char(c rune) parse.Parser[rune, rune] {
	return parse.Token(c)
}

type stringParser struct {
	expected string
}

// String parses the exact text s.
func String(s string) parse.Parser[rune, string] {
	return stringParser{expected: s}
}

func (sp stringParser) Parse(in input.Input[rune]) (string, input.Input[rune], error) {
	cur := in
	for _, want := range sp.expected {
		got, rest, ok := cur.Uncons()
		if !ok {
			return "", in, parse.NewExpected(fmt.Sprintf("string '%s'", sp.expected), "end of input", in)
		}
		if got != want {
			return "", in, parse.NewExpected(fmt.Sprintf("string '%s'", sp.expected), fmt.Sprintf("character '%c'", got), in)
		}
		cur = rest
	}
	return sp.expected, cur, nil
}

// Alpha parses a letter.
func Alpha() parse.Parser[rune, rune] {
	return parse.Satisfy(unicode.IsLetter)
}

// Digit parses an ASCII decimal digit.
func Digit() parse.Parser[rune, rune] {
	return parse.Satisfy(isDigit)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Alphanumeric parses a letter or a number.
func Alphanumeric() parse.Parser[rune, rune] {
	return parse.Satisfy(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	})
}

// Space parses one whitespace rune.
func Space() parse.Parser[rune, rune] {
	return parse.Satisfy(unicode.IsSpace)
}

// Spaces parses zero or more whitespace runes.
func Spaces() parse.Parser[rune, string] {
	return parse.Map(parse.Many(Space()), runesToString)
}

// Spaces1 parses one or more whitespace runes.
func Spaces1() parse.Parser[rune, string] {
	return parse.Map(parse.Many1(Space()), runesToString)
}

func Newline() parse.Parser[rune, rune] {
	return Char('\n')
}

func Tab() parse.Parser[rune, rune] {
	return Char('\t')
}

// NotChar parses any rune except c.
func NotChar(c rune) parse.Parser[rune, rune] {
	return parse.Satisfy(func(r rune) bool { return r != c })
}

// OneOf parses any rune contained in chars.
func OneOf(chars string) parse.Parser[rune, rune] {
	return parse.Satisfy(func(r rune) bool { return strings.ContainsRune(chars, r) })
}

// NoneOf parses any rune not contained in chars.
func NoneOf(chars string) parse.Parser[rune, rune] {
	return parse.Satisfy(func(r rune) bool { return !strings.ContainsRune(chars, r) })
}

// Lexeme parses p and any whitespace after it.
func Lexeme[V any](p parse.Parser[rune, V]) parse.Parser[rune, V] {
	return parse.Skip(p, Spaces())
}

func runesToString(rs []rune) string {
	return string(rs)
}
