package ebnflex

import (
	"fmt"
	"slices"

	"github.com/dhamidi/parsec/input"
	"github.com/dhamidi/parsec/parse"
)

// Trivia lists the kinds Filter drops when called without explicit kinds.
var Trivia = []string{"WhiteSpace", "Comment", KindEOF}

// WithSkipKinds makes Tokenize drop tokens of the given kinds.
func WithSkipKinds(kinds ...string) Option {
	return func(l *Lexer) {
		l.skip = append(l.skip, kinds...)
	}
}

// Filter returns the tokens whose kind is not in kinds. With no kinds it
// drops Trivia.
func Filter(tokens []Token, kinds ...string) []Token {
	if len(kinds) == 0 {
		kinds = Trivia
	}
	var kept []Token
	for _, tok := range tokens {
		if !slices.Contains(kinds, tok.Kind) {
			kept = append(kept, tok)
		}
	}
	return kept
}

// Stream wraps tokens as parser input.
func Stream(tokens []Token) input.Input[Token] {
	return input.NewSlice(tokens)
}

type tokenMatcher struct {
	expected string
	match    func(Token) bool
}

// Kind parses one token of the given kind.
func Kind(kind string) parse.Parser[Token, Token] {
	return tokenMatcher{
		expected: kind,
		match:    func(tok Token) bool { return tok.Kind == kind },
	}
}

// Literal parses one token whose text is lit, whatever its kind.
func Literal(lit string) parse.Parser[Token, Token] {
	return tokenMatcher{
		expected: fmt.Sprintf("%q", lit),
		match:    func(tok Token) bool { return tok.Literal == lit },
	}
}

func (m tokenMatcher) Parse(in input.Input[Token]) (Token, input.Input[Token], error) {
	tok, rest, ok := in.Uncons()
	if !ok {
		return Token{}, in, parse.NewExpected(m.expected, "end of input", in)
	}
	if !m.match(tok) {
		return Token{}, in, parse.NewExpected(m.expected, fmt.Sprintf("%s %q", tok.Kind, tok.Literal), in)
	}
	return tok, rest, nil
}
