// Package pipeable lets one combinator implementation serve two call styles:
// the eager form that takes every argument at once, and the bound form that
// takes only the trailing arguments and returns a function of the leading
// one, ready to drop into a left-to-right pipeline.
package pipeable

// Func2 is a combinator over a leading value A with one trailing argument.
type Func2[A, B, R any] func(a A, b B) R

// Bind fixes the trailing argument and returns a function awaiting the leading one.
func (f Func2[A, B, R]) Bind(b B) func(A) R {
	return func(a A) R {
		return f(a, b)
	}
}

// Func3 is a combinator over a leading value A with two trailing arguments.
type Func3[A, B, C, R any] func(a A, b B, c C) R

func (f Func3[A, B, C, R]) Bind(b B, c C) func(A) R {
	return func(a A) R {
		return f(a, b, c)
	}
}

// Func4 is a combinator over a leading value A with three trailing arguments.
type Func4[A, B, C, D, R any] func(a A, b B, c C, d D) R

func (f Func4[A, B, C, D, R]) Bind(b B, c C, d D) func(A) R {
	return func(a A) R {
		return f(a, b, c, d)
	}
}

// Func5 is a combinator over a leading value A with four trailing arguments.
type Func5[A, B, C, D, E, R any] func(a A, b B, c C, d D, e E) R

func (f Func5[A, B, C, D, E, R]) Bind(b B, c C, d D, e E) func(A) R {
	return func(a A) R {
		return f(a, b, c, d, e)
	}
}

// Bind2 binds the trailing argument of a plain binary function.
func Bind2[A, B, R any](f func(A, B) R, b B) func(A) R {
	return Func2[A, B, R](f).Bind(b)
}

// Bind3 binds the trailing arguments of a plain ternary function.
func Bind3[A, B, C, R any](f func(A, B, C) R, b B, c C) func(A) R {
	return Func3[A, B, C, R](f).Bind(b, c)
}

func Bind4[A, B, C, D, R any](f func(A, B, C, D) R, b B, c C, d D) func(A) R {
	return Func4[A, B, C, D, R](f).Bind(b, c, d)
}

func Bind5[A, B, C, D, E, R any](f func(A, B, C, D, E) R, b B, c C, d D, e E) func(A) R {
	return Func5[A, B, C, D, E, R](f).Bind(b, c, d, e)
}
