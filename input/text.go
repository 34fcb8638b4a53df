package input

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// String is an Input of runes over an immutable string.
type String struct {
	src string
	off int
}

// NewString returns an Input positioned at the start of s.
func NewString(s string) String {
	return String{src: s}
}

func (s String) Uncons() (rune, Input[rune], bool) {
	if s.off >= len(s.src) {
		return 0, nil, false
	}
	r, n := utf8.DecodeRuneInString(s.src[s.off:])
	return r, String{src: s.src, off: s.off + n}, true
}

// Len returns the number of bytes left.
func (s String) Len() (int, bool) {
	return len(s.src) - s.off, true
}

// Rest returns the text not yet consumed.
func (s String) Rest() string {
	return s.src[s.off:]
}

// Offset returns the byte offset into the original string.
func (s String) Offset() int {
	return s.off
}

// Equal reports whether both inputs have the same remaining text.
func (s String) Equal(other String) bool {
	return s.Rest() == other.Rest()
}

// Position computes the line and column of the cursor. Columns count runes.
func (s String) Position() Position {
	return positionOf(s.src[:s.off])
}

func (s String) String() string {
	return quotePreview(s.Rest())
}

// Bytes is an Input of bytes over an immutable byte slice.
// The slice must not be modified while any Bytes value refers to it.
type Bytes struct {
	src []byte
	off int
}

// NewBytes returns an Input positioned at the start of b.
func NewBytes(b []byte) Bytes {
	return Bytes{src: b}
}

func (b Bytes) Uncons() (byte, Input[byte], bool) {
	if b.off >= len(b.src) {
		return 0, nil, false
	}
	return b.src[b.off], Bytes{src: b.src, off: b.off + 1}, true
}

func (b Bytes) Len() (int, bool) {
	return len(b.src) - b.off, true
}

// Rest returns the bytes not yet consumed. Callers must not modify them.
func (b Bytes) Rest() []byte {
	return b.src[b.off:]
}

func (b Bytes) Offset() int {
	return b.off
}

func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b.Rest(), other.Rest())
}

func (b Bytes) Position() Position {
	return positionOf(string(b.src[:b.off]))
}

func (b Bytes) String() string {
	rest := b.Rest()
	if len(rest) > maxPreview {
		return fmt.Sprintf("%q...", rest[:maxPreview])
	}
	return fmt.Sprintf("%q", rest)
}

func positionOf(consumed string) Position {
	pos := Position{Offset: len(consumed), Line: 1, Column: 1}
	for _, r := range consumed {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}
