// Package pipe threads a value left to right through single-argument
// functions, the shape produced by the ...With combinators of result,
// nullable and asyncresult.
//
//	s := pipe.Pipe3(
//		result.Ok[string](2),
//		result.MapWith[string](func(n int) int { return n * 2 }),
//		result.FilterWith(isEven, tooOdd),
//		result.MatchWith(strconv.Itoa, func(e string) string { return e }),
//	)
package pipe

func Pipe1[A, B any](a A, ab func(A) B) B {
	return ab(a)
}

func Pipe2[A, B, C any](a A, ab func(A) B, bc func(B) C) C {
	return bc(ab(a))
}

func Pipe3[A, B, C, D any](a A, ab func(A) B, bc func(B) C, cd func(C) D) D {
	return cd(bc(ab(a)))
}

func Pipe4[A, B, C, D, E any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E) E {
	return de(cd(bc(ab(a))))
}

func Pipe5[A, B, C, D, E, F any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, ef func(E) F) F {
	return ef(de(cd(bc(ab(a)))))
}

func Pipe6[A, B, C, D, E, F, G any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, ef func(E) F,
	fg func(F) G) G {
	return fg(ef(de(cd(bc(ab(a))))))
}

// Flow2 composes left to right without a starting value.
func Flow2[A, B, C any](ab func(A) B, bc func(B) C) func(A) C {
	return func(a A) C {
		return bc(ab(a))
	}
}

func Flow3[A, B, C, D any](ab func(A) B, bc func(B) C, cd func(C) D) func(A) D {
	return func(a A) D {
		return cd(bc(ab(a)))
	}
}

func Flow4[A, B, C, D, E any](ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E) func(A) E {
	return func(a A) E {
		return de(cd(bc(ab(a))))
	}
}
