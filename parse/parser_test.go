package parse

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/parsec/input"
)

func str(s string) input.Input[rune] {
	return input.NewString(s)
}

// expectOK fails the test unless p parses in to want with rest remaining.
func expectOK[V any](t *testing.T, p Parser[rune, V], in string, want V, rest string) {
	t.Helper()
	got, gotRest, err := p.Parse(str(in))
	if err != nil {
		t.Fatalf("parse %q: unexpected error: %v", in, err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("parse %q: value mismatch (-want +got):\n%s", in, diff)
	}
	if diff := cmp.Diff(str(rest), gotRest); diff != "" {
		t.Errorf("parse %q: rest mismatch (-want +got):\n%s", in, diff)
	}
}

// expectErr fails the test unless p fails on in with want, returning in
// itself as the rest.
func expectErr[V any](t *testing.T, p Parser[rune, V], in string, want error) {
	t.Helper()
	_, gotRest, err := p.Parse(str(in))
	if err == nil {
		t.Fatalf("parse %q: expected error, got success", in)
	}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Errorf("parse %q: error mismatch (-want +got):\n%s", in, diff)
	}
	if diff := cmp.Diff(str(in), gotRest); diff != "" {
		t.Errorf("parse %q: failure consumed input (-want +got):\n%s", in, diff)
	}
}

func expected(want, found, at string) error {
	return NewExpected(want, found, str(at))
}

func TestItem(t *testing.T) {
	expectOK(t, Item[rune](), "hello", 'h', "ello")
	expectErr(t, Item[rune](), "", NewUnexpectedEOF[rune]())
}

func TestSatisfy(t *testing.T) {
	expectOK(t, Satisfy(unicode.IsLetter), "hello", 'h', "ello")
	expectErr(t, Satisfy(unicode.IsDigit), "hello",
		expected("item satisfying predicate", "different item", "hello"))
	expectErr(t, Satisfy(unicode.IsDigit), "", NewUnexpectedEOF[rune]())
}

func TestToken(t *testing.T) {
	expectOK(t, Token('h'), "hello", 'h', "ello")
	expectErr(t, Token('x'), "hello", expected("'x'", "'h'", "hello"))
	expectErr(t, Token('x'), "", NewUnexpectedEOF[rune]())
}

func TestPureConsumesNothing(t *testing.T) {
	expectOK(t, Pure[rune](42), "hello", 42, "hello")
	expectOK(t, Empty[rune]("v"), "", "v", "")
}

func TestFail(t *testing.T) {
	expectErr(t, Fail[rune, rune]("test error"), "hello", NewMessage("test error", str("hello")))
}

func TestMap(t *testing.T) {
	expectOK(t, Map(Item[rune](), unicode.ToUpper), "hello", 'H', "ello")
	expectErr(t, Map(Token('x'), unicode.ToUpper), "hello", expected("'x'", "'h'", "hello"))
}

func TestMapComposition(t *testing.T) {
	f := func(r rune) int { return int(r) }
	g := func(n int) int { return n * 2 }

	chained := Map(Map(Item[rune](), f), g)
	fused := Map(Item[rune](), func(r rune) int { return g(f(r)) })

	for _, in := range []string{"a", "zz", ""} {
		v1, r1, e1 := chained.Parse(str(in))
		v2, r2, e2 := fused.Parse(str(in))
		if v1 != v2 || !cmp.Equal(r1, r2) || !cmp.Equal(e1, e2) {
			t.Errorf("%q: chained (%v, %v, %v) != fused (%v, %v, %v)", in, v1, r1, e1, v2, r2, e2)
		}
	}
}

func TestAnd(t *testing.T) {
	expectOK(t, And(Item[rune](), Item[rune]()), "hello", Pair[rune, rune]{'h', 'e'}, "llo")
	expectErr(t, And(Token('h'), Token('x')), "hello", expected("'x'", "'e'", "ello"))
}

func TestAndShortCircuits(t *testing.T) {
	called := false
	var right Parser[rune, rune] = Func[rune, rune](func(in input.Input[rune]) (rune, input.Input[rune], error) {
		called = true
		return Item[rune]().Parse(in)
	})

	expectErr(t, And(Token('x'), right), "hello", expected("'x'", "'h'", "hello"))
	if called {
		t.Error("right side was attempted after the left side failed")
	}
}

func TestSkip(t *testing.T) {
	expectOK(t, Skip(Item[rune](), Item[rune]()), "hello", 'h', "llo")
	expectErr(t, Skip(Item[rune](), Token('x')), "hello", expected("'x'", "'e'", "ello"))
}

func TestPrecededBy(t *testing.T) {
	expectOK(t, PrecededBy(Item[rune](), Item[rune]()), "hello", 'e', "llo")
	expectErr(t, PrecededBy(Item[rune](), Token('x')), "hello", expected("'x'", "'h'", "hello"))
}

func TestBindChoosesNextParser(t *testing.T) {
	// a digit n followed by exactly n items
	counted := Bind(Satisfy(unicode.IsDigit), func(d rune) Parser[rune, []rune] {
		n := int(d - '0')
		return Func[rune, []rune](func(in input.Input[rune]) ([]rune, input.Input[rune], error) {
			var out []rune
			for i := 0; i < n; i++ {
				r, rest, err := Item[rune]().Parse(in)
				if err != nil {
					return nil, in, err
				}
				out = append(out, r)
				in = rest
			}
			return out, in, nil
		})
	})

	expectOK(t, counted, "3abcd", []rune("abc"), "d")
	expectOK(t, counted, "0abc", nil, "abc")
	expectErr(t, counted, "3ab", NewUnexpectedEOF[rune]())
}

func TestOr(t *testing.T) {
	expectOK(t, Or(Token('h'), Token('x')), "hello", 'h', "ello")
	expectOK(t, Or(Token('x'), Token('h')), "hello", 'h', "ello")
	expectErr(t, Or(Token('x'), Token('y')), "hello", NewMany[rune](
		expected("'x'", "'h'", "hello"),
		expected("'y'", "'h'", "hello"),
	))
}

func TestOrDoesNotLeakPartialConsumption(t *testing.T) {
	// the left side consumes 'h' before failing on 'x'
	left := Map(And(Token('h'), Token('x')), func(p Pair[rune, rune]) string { return "hx" })
	right := Map(And(Token('h'), Token('e')), func(p Pair[rune, rune]) string { return "he" })

	for _, in := range []string{"hello", "hx", "abc", ""} {
		v1, r1, e1 := Or(Fail[rune, string]("never"), right).Parse(str(in))
		v2, r2, e2 := right.Parse(str(in))
		if v1 != v2 || !cmp.Equal(r1, r2) {
			t.Errorf("%q: Or(fail, q) = (%q, %v), q = (%q, %v)", in, v1, r1, v2, r2)
		}
		if (e1 == nil) != (e2 == nil) {
			t.Errorf("%q: Or(fail, q) error %v, q error %v", in, e1, e2)
		}
	}

	expectOK(t, Or(left, right), "hello", "he", "llo")
}

func TestOptional(t *testing.T) {
	expectOK(t, Optional(Token('h')), "hello", Some('h'), "ello")
	expectOK(t, Optional(Token('x')), "hello", None[rune](), "hello")
	expectOK(t, Optional(And(Token('h'), Token('x'))), "hello", None[Pair[rune, rune]](), "hello")
}

func TestMany(t *testing.T) {
	expectOK(t, Many(Token('l')), "lllhello", []rune("lll"), "hello")
	expectOK(t, Many(Token('x')), "hello", nil, "hello")
	expectOK(t, Many(Token('x')), "", nil, "")
	expectOK(t, Many(Item[rune]()), "abc", []rune("abc"), "")
}

func TestManyDropsPartialElement(t *testing.T) {
	ab := And(Token('a'), Token('b'))
	want := []Pair[rune, rune]{{'a', 'b'}, {'a', 'b'}}
	expectOK(t, Many(ab), "ababac", want, "ac")
}

func TestMany1(t *testing.T) {
	expectOK(t, Many1(Token('l')), "lllhello", []rune("lll"), "hello")
	// the first failure is propagated verbatim
	_, _, want := Token('x').Parse(str("hello"))
	expectErr(t, Many1(Token('x')), "hello", want)
}

func TestFoldMany(t *testing.T) {
	digit := Map(Satisfy(unicode.IsDigit), func(r rune) int { return int(r - '0') })
	number := func(acc, d int) int { return acc*10 + d }

	expectOK(t, FoldMany0(digit, 0, number), "123abc", 123, "abc")
	expectOK(t, FoldMany0(digit, 0, number), "abc", 0, "abc")
	expectOK(t, FoldMany1(digit, 0, number), "7", 7, "")
	expectErr(t, FoldMany1(digit, 0, number), "abc",
		expected("item satisfying predicate", "different item", "abc"))
}

func TestFoldManyStartsFromInitEachCall(t *testing.T) {
	count := FoldMany0(Token('a'), 0, func(n int, _ rune) int { return n + 1 })
	expectOK(t, count, "aaa", 3, "")
	expectOK(t, count, "aa", 2, "")
}

func TestBetween(t *testing.T) {
	expectOK(t, Between(Token('('), Item[rune](), Token(')')), "(x)", 'x', "")
	expectErr(t, Between(Token('('), Item[rune](), Token(')')), "(x]", expected("')'", "']'", "]"))
}

func TestChoice(t *testing.T) {
	p := Choice(Token('a'), Token('b'), Token('c'))
	expectOK(t, p, "b", 'b', "")

	expectErr(t, Choice(Token('x'), Token('y')), "hello", NewMany[rune](
		expected("'x'", "'h'", "hello"),
		expected("'y'", "'h'", "hello"),
	))
}

func TestChoiceErrorsAreFlat(t *testing.T) {
	_, _, err := Choice(Token('x'), Token('y'), Token('z')).Parse(str("a"))

	var perr *Error[rune]
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error[rune], got %T", err)
	}
	if perr.Kind != KindMany || len(perr.Errors) != 3 {
		t.Fatalf("expected flat Many with 3 children, got %v", perr)
	}
	for i, child := range perr.Errors {
		if child.(*Error[rune]).Kind != KindExpected {
			t.Errorf("child %d: expected KindExpected, got %v", i, child)
		}
	}
}

func TestChoiceEmpty(t *testing.T) {
	expectErr(t, Choice[rune, rune](), "a", NewMany[rune]())
}

func TestSepBy(t *testing.T) {
	p := SepBy(Item[rune](), Token(','))

	expectOK(t, p, "", nil, "")
	expectOK(t, p, "a", []rune("a"), "")
	expectOK(t, p, "a,b,c", []rune("abc"), "")
	// the dangling comma is left unconsumed
	expectOK(t, p, "a,", []rune("a"), ",")
}

func TestSepByMultiItemSeparator(t *testing.T) {
	comma := And(Token(','), Many(Token(' ')))
	p := SepBy(Satisfy(unicode.IsLetter), comma)

	expectOK(t, p, "a, b,  c", []rune("abc"), "")
	expectOK(t, p, "a, b, 1", []rune("ab"), ", 1")
	expectOK(t, p, "1, a", nil, "1, a")
}

func TestSepBy1(t *testing.T) {
	p := SepBy1(Item[rune](), Token(','))

	expectOK(t, p, "a,b,c", []rune("abc"), "")
	expectOK(t, p, "a,", []rune("a"), ",")
	expectErr(t, p, "", NewUnexpectedEOF[rune]())
}

func TestEOF(t *testing.T) {
	expectOK(t, EOF[rune](), "", struct{}{}, "")
	expectErr(t, EOF[rune](), "x", expected("end of input", "more input", "x"))
}

func TestRun(t *testing.T) {
	v, err := Run(Many(Token('a')), str("aaa"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(v) != "aaa" {
		t.Errorf("expected aaa, got %q", string(v))
	}

	if _, err := Run(Many(Token('a')), str("aab")); err == nil {
		t.Error("expected trailing input to be rejected")
	}
}

func TestMap2AndTuples(t *testing.T) {
	digit := Map(Satisfy(unicode.IsDigit), func(r rune) int { return int(r - '0') })

	expectOK(t, Map2(digit, digit, func(a, b int) int { return a + b }), "34x", 7, "x")
	expectOK(t, Map3(digit, digit, digit, func(a, b, c int) int { return a*100 + b*10 + c }), "123", 123, "")
	expectOK(t, Tuple2(digit, Item[rune]()), "1a", Pair[int, rune]{1, 'a'}, "")
	expectOK(t, Tuple3(digit, Item[rune](), digit), "1a2", Triple[int, rune, int]{1, 'a', 2}, "")
}

func TestLazyRecursion(t *testing.T) {
	// depth of balanced parentheses: "" -> 0, "(())" -> 2
	var nested Parser[rune, int]
	nested = Or(
		Map(Between(Token('('), Lazy(func() Parser[rune, int] { return nested }), Token(')')),
			func(d int) int { return d + 1 }),
		Pure[rune](0),
	)

	expectOK(t, nested, "((()))", 3, "")
	expectOK(t, nested, "(()x", 0, "(()x")
	expectOK(t, nested, "abc", 0, "abc")
}

func TestLabel(t *testing.T) {
	digits := Label(Many1(Satisfy(unicode.IsDigit)), "number")

	expectOK(t, digits, "12a", []rune("12"), "a")
	expectErr(t, digits, "abc", expected("number", "'a'", "abc"))
	expectErr(t, digits, "", expected("number", "end of input", ""))

	semantic := Label(Fail[rune, int]("too big"), "number")
	expectErr(t, semantic, "9", NewMessage("too big", str("9")))
}

func TestTracePassesThrough(t *testing.T) {
	p := Trace("letters", Many1(Satisfy(unicode.IsLetter)))

	expectOK(t, p, "ab1", []rune("ab"), "1")
	expectErr(t, p, "1", expected("item satisfying predicate", "different item", "1"))
}

func TestTraceWithDebugLogging(t *testing.T) {
	commonlog.Configure(2, nil)
	t.Cleanup(func() { commonlog.Configure(-4, nil) })

	if !traceLog.AllowLevel(commonlog.Debug) {
		t.Fatal("expected debug logging to be enabled")
	}

	p := Trace("letters", Many1(Satisfy(unicode.IsLetter)))
	expectOK(t, p, "ab1", []rune("ab"), "1")
	expectErr(t, p, "1", expected("item satisfying predicate", "different item", "1"))
}

func TestTokenOverSlice(t *testing.T) {
	in := input.NewSlice([]int{1, 1, 2})

	ones, rest, err := Many(Token(1)).Parse(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ones) != 2 {
		t.Errorf("expected 2 ones, got %v", ones)
	}
	if diff := cmp.Diff(input.Input[int](input.NewSlice([]int{2})), rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}

	_, _, err = Token(3).Parse(rest)
	if diff := cmp.Diff(error(NewExpected("3", "2", rest)), err); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenOverBytes(t *testing.T) {
	_, _, err := Token[byte]('x').Parse(input.NewBytes([]byte("hello")))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != `expected 120, found 104 at 1:1 "hello"` {
		t.Errorf("unexpected message %q", got)
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"eof", NewUnexpectedEOF[rune](), "unexpected end of input"},
		{"expected", expected("'x'", "'h'", "hello"), `expected 'x', found 'h' at 1:1 "hello"`},
		{"expected without found", expected("digit", "", "ab"), `expected digit at 1:1 "ab"`},
		{"message", NewMessage("invalid number", str("99")), `invalid number at 1:1 "99"`},
		{
			"many",
			NewMany[rune](expected("'x'", "'h'", "hi"), NewUnexpectedEOF[rune]()),
			`multiple errors: expected 'x', found 'h' at 1:1 "hi"; unexpected end of input`,
		},
		{
			"nested many is flattened",
			NewMany[rune](
				NewMany[rune](expected("'a'", "'c'", "c"), expected("'b'", "'c'", "c")),
				NewMessage("nope", str("c")),
			),
			`multiple errors: expected 'a', found 'c' at 1:1 "c"; expected 'b', found 'c' at 1:1 "c"; nope at 1:1 "c"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestErrorPositionAfterProgress(t *testing.T) {
	_, _, err := And(Many(Satisfy(func(r rune) bool { return r != 'x' })), Token('y')).Parse(str("ab\ncx"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `at 2:2 "x"`) {
		t.Errorf("expected position 2:2 in %q", err.Error())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	_, _, err := Or(Token('x'), Fail[rune, rune]("custom")).Parse(str("a"))
	wrapped := errors.Join(errors.New("context"), err)

	var perr *Error[rune]
	if !errors.As(wrapped, &perr) || perr.Kind != KindMany {
		t.Fatalf("expected to find the Many error, got %v", perr)
	}

	var found []Kind
	for _, child := range perr.Unwrap() {
		found = append(found, child.(*Error[rune]).Kind)
	}
	if diff := cmp.Diff([]Kind{KindExpected, KindMessage}, found); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}
