package parse

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsec/input"
)

var traceLog = commonlog.GetLogger("parsec.trace")

type traceParser[T, V any] struct {
	p    Parser[T, V]
	name string
}

// Trace logs every attempt of p at debug level on the "parsec.trace"
// logger: where it started, and what it produced or why it failed.
// With debug logging disabled it adds nothing but the level check.
func Trace[T, V any](name string, p Parser[T, V]) Parser[T, V] {
	return traceParser[T, V]{p: p, name: name}
}

func (t traceParser[T, V]) Parse(in input.Input[T]) (V, input.Input[T], error) {
	if !traceLog.AllowLevel(commonlog.Debug) {
		return t.p.Parse(in)
	}

	traceLog.Debugf("%s: try at %v", t.name, in)
	v, rest, err := t.p.Parse(in)
	if err != nil {
		traceLog.Debugf("%s: fail: %v", t.name, err)
		return v, rest, err
	}
	traceLog.Debugf("%s: ok %v, rest %v", t.name, v, rest)
	return v, rest, nil
}
