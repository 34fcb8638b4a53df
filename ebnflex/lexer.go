// Package ebnflex provides lexical scanning based on EBNF grammars and
// token-level parsers for the resulting streams.
//
// Productions whose names start with an uppercase ASCII letter are token
// kinds. The lexer picks the longest match among them at every position;
// ties go to the kind that sorts first.
package ebnflex

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parsec/input"
)

// Position represents a location in source code.
type Position struct {
	Filename string
	input.Position
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return p.Position.String()
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// Kinds produced by the lexer itself.
const (
	KindEOF   = "EOF"
	KindError = "ERROR"
)

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithFilename sets the filename reported in token positions.
func WithFilename(name string) Option {
	return func(l *Lexer) {
		l.filename = name
	}
}

// Lexer tokenizes input based on an EBNF grammar.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	input    []byte
	filename string
	skip     []string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int  // match length per production and offset, or noMatch
	visiting map[memoKey]bool // cycle detection
}

// NewLexer creates a lexer for the given grammar and input.
func NewLexer(grammar ebnf.Grammar, src []byte, opts ...Option) *Lexer {
	l := &Lexer{
		grammar:  grammar,
		input:    src,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
	for _, opt := range opts {
		opt(l)
	}

	for name, prod := range grammar {
		if prod.Expr != nil && isTokenKind(name) {
			l.kinds = append(l.kinds, name)
		}
	}
	sort.Strings(l.kinds)
	return l
}

func isTokenKind(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return ParseGrammar(filename, f)
}

// ParseGrammar reads an EBNF grammar from r.
func ParseGrammar(filename string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Position: input.Position{
			Offset: l.pos,
			Line:   l.line,
			Column: l.column,
		},
	}
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, n := utf8.DecodeRune(l.input[l.pos:])
	l.pos += n
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// NextToken returns the next token from the input. At the end of input it
// returns an EOF token together with io.EOF. Bytes no token kind matches
// come back one rune at a time as ERROR tokens.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: KindEOF, Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	startOffset := l.pos

	var bestKind string
	var bestLen int
	for _, name := range l.kinds {
		l.visiting = make(map[memoKey]bool)
		n := l.tryMatch(l.grammar[name].Expr, startOffset)
		if n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		r := l.advance()
		return Token{
			Kind:     KindError,
			Literal:  string(r),
			Position: startPos,
		}, nil
	}

	for l.pos < startOffset+bestLen {
		l.advance()
	}

	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[startOffset : startOffset+bestLen]),
		Position: startPos,
	}, nil
}

// noMatch is returned by the matchers when expr does not match. A result of
// 0 is a successful empty match.
const noMatch = -1

// tryMatch attempts to match an expression at the given offset.
// Returns the length of the match in bytes, or noMatch.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.tryMatchToken(e.String, offset)

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.tryMatch(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := l.tryMatch(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			// an empty body match would repeat forever
			n := l.tryMatch(e.Body, offset+total)
			if n <= 0 {
				break
			}
			total += n
		}
		return total

	case *ebnf.Option:
		return max(l.tryMatch(e.Body, offset), 0)

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)

	default:
		return noMatch
	}
}

// tryMatchName matches a named production with memoization and cycle detection.
func (l *Lexer) tryMatchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := l.memo[key]; ok {
		return result
	}

	// left recursion: give up on this path
	if l.visiting[key] {
		return noMatch
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = noMatch
		return noMatch
	}

	l.visiting[key] = true
	result := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = result
	return result
}

// tryMatchToken matches a literal string token.
func (l *Lexer) tryMatchToken(lit string, offset int) int {
	if bytes.HasPrefix(l.input[offset:], []byte(lit)) {
		return len(lit)
	}
	return noMatch
}

// tryMatchRange matches a single rune in a range such as "a" … "z".
func (l *Lexer) tryMatchRange(begin, end string, offset int) int {
	if offset >= len(l.input) {
		return noMatch
	}
	lo, n1 := utf8.DecodeRuneInString(begin)
	hi, n2 := utf8.DecodeRuneInString(end)
	if n1 != len(begin) || n2 != len(end) {
		return noMatch
	}
	r, n := utf8.DecodeRune(l.input[offset:])
	if r >= lo && r <= hi {
		return n
	}
	return noMatch
}

// Tokenize reads all tokens from input. The last token is EOF unless EOF
// is one of the kinds passed to WithSkipKinds.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if !slices.Contains(l.skip, tok.Kind) {
			tokens = append(tokens, tok)
		}
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
	}
}
