package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/parsec/input"
)

// Kind identifies which variant of Error a value is.
type Kind int

const (
	// KindUnexpectedEOF: the input ran out where an item was required.
	KindUnexpectedEOF Kind = iota
	// KindExpected: a concrete mismatch at Input.
	KindExpected
	// KindMessage: a semantic failure unrelated to the grammar's shape.
	KindMessage
	// KindMany: every alternative failed; Errors holds them in try order.
	KindMany
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "UnexpectedEOF"
	case KindExpected:
		return "Expected"
	case KindMessage:
		return "Message"
	case KindMany:
		return "Many"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the failure value produced by the parsers in this package.
//
// Errors are plain data. Input is the stream as it was at the point of
// failure and stays renderable after parsing is over.
type Error[T any] struct {
	Kind Kind

	// Expected and Found describe a KindExpected mismatch.
	// An empty Found means nothing was recorded.
	Expected string
	Found    string

	// Message is the text of a KindMessage failure.
	Message string

	Input input.Input[T]

	// Errors are the aggregated failures of a KindMany error.
	Errors []error
}

// NewUnexpectedEOF returns a KindUnexpectedEOF error.
func NewUnexpectedEOF[T any]() *Error[T] {
	return &Error[T]{Kind: KindUnexpectedEOF}
}

// NewExpected returns a KindExpected error.
func NewExpected[T any](expected, found string, in input.Input[T]) *Error[T] {
	return &Error[T]{Kind: KindExpected, Expected: expected, Found: found, Input: in}
}

// NewMessage returns a KindMessage error.
func NewMessage[T any](message string, in input.Input[T]) *Error[T] {
	return &Error[T]{Kind: KindMessage, Message: message, Input: in}
}

// NewMany aggregates errs, keeping their order.
func NewMany[T any](errs ...error) *Error[T] {
	return &Error[T]{Kind: KindMany, Errors: errs}
}

func (e *Error[T]) Error() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Error[T]) write(sb *strings.Builder) {
	switch e.Kind {
	case KindUnexpectedEOF:
		sb.WriteString("unexpected end of input")
	case KindExpected:
		sb.WriteString("expected ")
		sb.WriteString(e.Expected)
		if e.Found != "" {
			sb.WriteString(", found ")
			sb.WriteString(e.Found)
		}
		writeLocation(sb, e.Input)
	case KindMessage:
		sb.WriteString(e.Message)
		writeLocation(sb, e.Input)
	case KindMany:
		sb.WriteString("multiple errors: ")
		e.writeChildren(sb)
	default:
		sb.WriteString(e.Kind.String())
	}
}

func (e *Error[T]) writeChildren(sb *strings.Builder) {
	for i, err := range e.Errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		// nested aggregates render as their flattened children
		if nested, ok := err.(*Error[T]); ok && nested.Kind == KindMany {
			nested.writeChildren(sb)
			continue
		}
		sb.WriteString(err.Error())
	}
}

func writeLocation[T any](sb *strings.Builder, in input.Input[T]) {
	if in == nil {
		return
	}
	sb.WriteString(" at ")
	if p, ok := in.(input.Positioner); ok {
		sb.WriteString(p.Position().String())
		sb.WriteString(" ")
	}
	fmt.Fprint(sb, in)
}

// Unwrap exposes the children of a KindMany error to errors.Is and errors.As.
func (e *Error[T]) Unwrap() []error {
	if e.Kind != KindMany {
		return nil
	}
	return e.Errors
}

// describe renders an item the way diagnostics quote it.
func describe(v any) string {
	switch x := v.(type) {
	case rune:
		return strconv.QuoteRune(x)
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}
