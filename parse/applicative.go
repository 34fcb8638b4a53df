package parse

// Map2 runs p1 and p2 in sequence and combines their values with f.
func Map2[T, A, B, R any](p1 Parser[T, A], p2 Parser[T, B], f func(A, B) R) Parser[T, R] {
	return Map(And(p1, p2), func(p Pair[A, B]) R {
		return f(p.First, p.Second)
	})
}

// Map3 runs p1, p2 and p3 in sequence and combines their values with f.
func Map3[T, A, B, C, R any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], f func(A, B, C) R) Parser[T, R] {
	return Map(And(And(p1, p2), p3), func(p Pair[Pair[A, B], C]) R {
		return f(p.First.First, p.First.Second, p.Second)
	})
}

func Tuple2[T, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Parser[T, Pair[A, B]] {
	return And(p1, p2)
}

func Tuple3[T, A, B, C any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C]) Parser[T, Triple[A, B, C]] {
	return Map3(p1, p2, p3, func(a A, b B, c C) Triple[A, B, C] {
		return Triple[A, B, C]{First: a, Second: b, Third: c}
	})
}
