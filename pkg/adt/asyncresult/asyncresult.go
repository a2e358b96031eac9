package asyncresult

import "fmt"

// Kind is the active variant of an AsyncResult.
type Kind uint8

const (
	KindInitial Kind = iota
	KindLoading
	KindOk
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindInitial:
		return "Initial"
	case KindLoading:
		return "Loading"
	case KindOk:
		return "Ok"
	case KindError:
		return "Error"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// AsyncResult is one of Initial, Loading, Ok(value) or Error(err). The zero
// AsyncResult is Initial. Initial and Loading carry no payload, so any two
// Initial (or Loading) values of the same type are equal.
type AsyncResult[E, A any] struct {
	kind  Kind
	value A
	err   E
}

// Initial is the snapshot of an operation that has not started.
func Initial[E, A any]() AsyncResult[E, A] {
	return AsyncResult[E, A]{kind: KindInitial}
}

// Loading is the snapshot of an operation in flight.
func Loading[E, A any]() AsyncResult[E, A] {
	return AsyncResult[E, A]{kind: KindLoading}
}

// Ok builds a settled, successful snapshot: Ok[string](1).
func Ok[E, A any](value A) AsyncResult[E, A] {
	return AsyncResult[E, A]{
		kind:  KindOk,
		value: value,
	}
}

// Error builds a settled, failed snapshot: Error[int]("boom").
func Error[A, E any](err E) AsyncResult[E, A] {
	return AsyncResult[E, A]{
		kind: KindError,
		err:  err,
	}
}

// Of settles Go's (value, error) pair into Ok or Error.
func Of[A any](value A, err error) AsyncResult[error, A] {
	if err != nil {
		return Error[A](err)
	}
	return Ok[error](value)
}

func (r AsyncResult[E, A]) Kind() Kind {
	return r.kind
}

func (r AsyncResult[E, A]) IsInitial() bool {
	return r.kind == KindInitial
}

func (r AsyncResult[E, A]) IsLoading() bool {
	return r.kind == KindLoading
}

func (r AsyncResult[E, A]) IsOk() bool {
	return r.kind == KindOk
}

func (r AsyncResult[E, A]) IsError() bool {
	return r.kind == KindError
}

// IsPending reports Initial or Loading: no outcome yet.
func (r AsyncResult[E, A]) IsPending() bool {
	return r.kind == KindInitial || r.kind == KindLoading
}

// IsSettled reports Ok or Error.
func (r AsyncResult[E, A]) IsSettled() bool {
	return r.kind == KindOk || r.kind == KindError
}

// Get returns the Ok value and true, or the zero A and false.
func (r AsyncResult[E, A]) Get() (A, bool) {
	return r.value, r.kind == KindOk
}

// GetError returns the Error payload and true, or the zero E and false.
func (r AsyncResult[E, A]) GetError() (E, bool) {
	return r.err, r.kind == KindError
}

func (r AsyncResult[E, A]) String() string {
	switch r.kind {
	case KindOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case KindError:
		return fmt.Sprintf("Error(%v)", r.err)
	default:
		return r.kind.String()
	}
}

func IsInitial[E, A any](r AsyncResult[E, A]) bool {
	return r.IsInitial()
}

func IsLoading[E, A any](r AsyncResult[E, A]) bool {
	return r.IsLoading()
}

func IsOk[E, A any](r AsyncResult[E, A]) bool {
	return r.IsOk()
}

func IsError[E, A any](r AsyncResult[E, A]) bool {
	return r.IsError()
}
