package result

// Of builds a Result from Go's (value, error) pair: Error when err is
// non-nil, Ok otherwise.
func Of[A any](value A, err error) Result[error, A] {
	if err != nil {
		return Error[A](err)
	}
	return Ok[error](value)
}

// Unpack is the inverse of Of. An Error holding a nil error unpacks to
// (zero, nil); callers that build such Results have to check IsError.
func Unpack[A any](r Result[error, A]) (A, error) {
	if r.IsOk() {
		return r.value, nil
	}
	var zero A
	return zero, r.err
}
