package result

import (
	"errors"
	"fmt"

	"github.com/PalmZE/adt/pkg/adt/tuple"
	"github.com/hashicorp/go-multierror"
)

var errNilPayload = errors.New("error result without payload")

// CombineTuple returns Ok with every value, in input order, when all inputs
// are Ok. Otherwise it returns Error holding the zero E: which input failed,
// and with what, is deliberately not kept. Use CombineErrors when the
// payloads matter.
func CombineTuple[E, A any](first Result[E, A], rest ...Result[E, A]) Result[E, []A] {
	values := make([]A, 0, len(rest)+1)
	for _, r := range append([]Result[E, A]{first}, rest...) {
		if !r.IsOk() {
			return failedCombine[E, []A]()
		}
		values = append(values, r.value)
	}
	return Ok[E](values)
}

// CombineTuple2 is CombineTuple for two Results of different value types.
func CombineTuple2[E, A, B any](ra Result[E, A], rb Result[E, B]) Result[E, tuple.T2[A, B]] {
	if !ra.IsOk() || !rb.IsOk() {
		return failedCombine[E, tuple.T2[A, B]]()
	}
	return Ok[E](tuple.New2(ra.value, rb.value))
}

// CombineTuple3 is CombineTuple for three Results of different value types.
func CombineTuple3[E, A, B, C any](ra Result[E, A], rb Result[E, B], rc Result[E, C]) Result[E, tuple.T3[A, B, C]] {
	if !ra.IsOk() || !rb.IsOk() || !rc.IsOk() {
		return failedCombine[E, tuple.T3[A, B, C]]()
	}
	return Ok[E](tuple.New3(ra.value, rb.value, rc.value))
}

// CombineTuple4 is CombineTuple for four Results of different value types.
func CombineTuple4[E, A, B, C, D any](ra Result[E, A], rb Result[E, B], rc Result[E, C],
	rd Result[E, D]) Result[E, tuple.T4[A, B, C, D]] {
	if !ra.IsOk() || !rb.IsOk() || !rc.IsOk() || !rd.IsOk() {
		return failedCombine[E, tuple.T4[A, B, C, D]]()
	}
	return Ok[E](tuple.New4(ra.value, rb.value, rc.value, rd.value))
}

// CombineErrors returns Ok with every value when all inputs are Ok. Otherwise
// the Error holds a *multierror.Error with one entry per failed input,
// prefixed with its position. Each payload is wrapped whole, so a payload
// that is itself a *multierror.Error stays one entry and remains reachable
// through errors.Is and errors.As.
func CombineErrors[A any](first Result[error, A], rest ...Result[error, A]) Result[error, []A] {
	all := append([]Result[error, A]{first}, rest...)
	values := make([]A, 0, len(all))

	var merr *multierror.Error
	for i, r := range all {
		if r.IsOk() {
			values = append(values, r.value)
			continue
		}
		err := r.err
		if err == nil {
			err = errNilPayload
		}
		merr = multierror.Append(merr, fmt.Errorf("result %d: %w", i, err))
	}

	if merr != nil {
		return Error[[]A](merr.ErrorOrNil())
	}
	return Ok[error](values)
}

func failedCombine[E, A any]() Result[E, A] {
	var undefined E
	return Error[A](undefined)
}
