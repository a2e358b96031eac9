package result

// Map applies f to the Ok value. An Error is passed through with its payload
// untouched; only its value type changes.
func Map[E, A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	if r.IsOk() {
		return Ok[E](f(r.value))
	}
	return Error[B](r.err)
}

// MapError applies f to the Error payload and passes Ok through.
func MapError[E, A, E2 any](r Result[E, A], f func(E) E2) Result[E2, A] {
	if r.IsError() {
		return Error[A](f(r.err))
	}
	return Ok[E2](r.value)
}

// FlatMap returns f(value) for Ok and passes Error through. Both sides share
// one error type; use an interface such as error when they come from
// different sources.
func FlatMap[E, A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if r.IsOk() {
		return f(r.value)
	}
	return Error[B](r.err)
}

// Filter keeps an Ok whose value satisfies pred and turns any other Ok into
// Error(ifFiltered(value)). Error is passed through. Go has no type
// refinement, so a narrowing predicate does not narrow A; callers re-check
// the narrowed shape themselves.
func Filter[E, A any](r Result[E, A], pred func(A) bool, ifFiltered func(A) E) Result[E, A] {
	if !r.IsOk() {
		return r
	}
	if pred(r.value) {
		return r
	}
	return Error[A](ifFiltered(r.value))
}

// Exists is true only for an Ok whose value satisfies pred.
func Exists[E, A any](r Result[E, A], pred func(A) bool) bool {
	return r.IsOk() && pred(r.value)
}

// GetOrElse returns the Ok value, or calls fallback for Error.
func GetOrElse[E, A any](r Result[E, A], fallback func() A) A {
	if r.IsOk() {
		return r.value
	}
	return fallback()
}

// Match calls exactly one of the branches and returns its value.
func Match[E, A, B any](r Result[E, A], ifOk func(A) B, ifError func(E) B) B {
	if r.IsOk() {
		return ifOk(r.value)
	}
	return ifError(r.err)
}

// ToUndefined returns the Ok value, or the zero A for Error.
// Ok(zero) and Error both yield the zero A; use Get or ToNull to tell them apart.
func ToUndefined[E, A any](r Result[E, A]) A {
	if r.IsOk() {
		return r.value
	}
	var zero A
	return zero
}

// ToNull returns a pointer to a copy of the Ok value, or nil for Error.
func ToNull[E, A any](r Result[E, A]) *A {
	if r.IsOk() {
		v := r.value
		return &v
	}
	return nil
}
