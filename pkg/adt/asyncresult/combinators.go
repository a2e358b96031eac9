package asyncresult

// Map applies f to an Ok value. Error, Initial and Loading pass through.
func Map[E, A, B any](r AsyncResult[E, A], f func(A) B) AsyncResult[E, B] {
	if r.IsOk() {
		return Ok[E](f(r.value))
	}
	return passThrough[E, A, B](r)
}

// MapError applies f to an Error payload. Ok, Initial and Loading pass through.
func MapError[E, A, E2 any](r AsyncResult[E, A], f func(E) E2) AsyncResult[E2, A] {
	switch r.kind {
	case KindError:
		return Error[A](f(r.err))
	case KindOk:
		return Ok[E2](r.value)
	case KindLoading:
		return Loading[E2, A]()
	default:
		return Initial[E2, A]()
	}
}

// FlatMap returns f(value) for Ok; anything else passes through.
func FlatMap[E, A, B any](r AsyncResult[E, A], f func(A) AsyncResult[E, B]) AsyncResult[E, B] {
	if r.IsOk() {
		return f(r.value)
	}
	return passThrough[E, A, B](r)
}

// Filter turns an Ok whose value fails pred into Error(ifFiltered(value)).
// Every other snapshot, including a passing Ok, is returned as is.
func Filter[E, A any](r AsyncResult[E, A], pred func(A) bool, ifFiltered func(A) E) AsyncResult[E, A] {
	if !r.IsOk() || pred(r.value) {
		return r
	}
	return Error[A](ifFiltered(r.value))
}

// Exists is true only for an Ok whose value satisfies pred.
func Exists[E, A any](r AsyncResult[E, A], pred func(A) bool) bool {
	return r.IsOk() && pred(r.value)
}

// GetOrElse returns the Ok value, or calls fallback for any other snapshot.
func GetOrElse[E, A any](r AsyncResult[E, A], fallback func() A) A {
	if r.IsOk() {
		return r.value
	}
	return fallback()
}

// Match calls exactly one branch.
func Match[E, A, B any](r AsyncResult[E, A],
	ifInitial func() B,
	ifLoading func() B,
	ifOk func(A) B,
	ifError func(E) B) B {

	switch r.kind {
	case KindLoading:
		return ifLoading()
	case KindOk:
		return ifOk(r.value)
	case KindError:
		return ifError(r.err)
	default:
		return ifInitial()
	}
}

// MatchShort is Match with one branch for both Initial and Loading.
func MatchShort[E, A, B any](r AsyncResult[E, A],
	ifInitialOrLoading func() B,
	ifOk func(A) B,
	ifError func(E) B) B {
	return Match(r, ifInitialOrLoading, ifInitialOrLoading, ifOk, ifError)
}

// ToUndefined returns the Ok value, or the zero A for the other three states.
// Ok(zero) is indistinguishable here; use Get or ToNull to tell it apart.
func ToUndefined[E, A any](r AsyncResult[E, A]) A {
	if r.IsOk() {
		return r.value
	}
	var zero A
	return zero
}

// ToNull returns a pointer to a copy of the Ok value, or nil.
func ToNull[E, A any](r AsyncResult[E, A]) *A {
	if r.IsOk() {
		v := r.value
		return &v
	}
	return nil
}

func passThrough[E, A, B any](r AsyncResult[E, A]) AsyncResult[E, B] {
	return AsyncResult[E, B]{kind: r.kind, err: r.err}
}
