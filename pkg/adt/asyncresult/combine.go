package asyncresult

import (
	"errors"
	"fmt"

	"github.com/PalmZE/adt/pkg/adt/tuple"
	"github.com/hashicorp/go-multierror"
)

var errNilPayload = errors.New("error result without payload")

// worst folds kinds by priority Error > Loading > Initial > Ok.
func worst(kinds ...Kind) Kind {
	var hadError, hadLoading, hadInitial bool
	for _, k := range kinds {
		switch k {
		case KindError:
			hadError = true
		case KindLoading:
			hadLoading = true
		case KindInitial:
			hadInitial = true
		}
	}

	switch {
	case hadError:
		return KindError
	case hadLoading:
		return KindLoading
	case hadInitial:
		return KindInitial
	default:
		return KindOk
	}
}

// unsettled builds the non-Ok outcome of a combine. An Error carries the zero
// E: the original payloads are dropped.
func unsettled[E, A any](k Kind) AsyncResult[E, A] {
	return AsyncResult[E, A]{kind: k}
}

// CombineTuple returns Ok with all values, in input order, when every input
// is Ok. Otherwise the worst state wins: any Error gives Error(zero E), else
// any Loading gives Loading, else Initial. Error payloads are not kept; use
// CombineErrors for that.
func CombineTuple[E, A any](first AsyncResult[E, A], rest ...AsyncResult[E, A]) AsyncResult[E, []A] {
	all := append([]AsyncResult[E, A]{first}, rest...)
	kinds := make([]Kind, len(all))
	for i, r := range all {
		kinds[i] = r.kind
	}

	if k := worst(kinds...); k != KindOk {
		return unsettled[E, []A](k)
	}

	values := make([]A, len(all))
	for i, r := range all {
		values[i] = r.value
	}
	return Ok[E](values)
}

func CombineTuple2[E, A, B any](ra AsyncResult[E, A], rb AsyncResult[E, B]) AsyncResult[E, tuple.T2[A, B]] {
	if k := worst(ra.kind, rb.kind); k != KindOk {
		return unsettled[E, tuple.T2[A, B]](k)
	}
	return Ok[E](tuple.New2(ra.value, rb.value))
}

func CombineTuple3[E, A, B, C any](ra AsyncResult[E, A], rb AsyncResult[E, B],
	rc AsyncResult[E, C]) AsyncResult[E, tuple.T3[A, B, C]] {
	if k := worst(ra.kind, rb.kind, rc.kind); k != KindOk {
		return unsettled[E, tuple.T3[A, B, C]](k)
	}
	return Ok[E](tuple.New3(ra.value, rb.value, rc.value))
}

func CombineTuple4[E, A, B, C, D any](ra AsyncResult[E, A], rb AsyncResult[E, B],
	rc AsyncResult[E, C], rd AsyncResult[E, D]) AsyncResult[E, tuple.T4[A, B, C, D]] {
	if k := worst(ra.kind, rb.kind, rc.kind, rd.kind); k != KindOk {
		return unsettled[E, tuple.T4[A, B, C, D]](k)
	}
	return Ok[E](tuple.New4(ra.value, rb.value, rc.value, rd.value))
}

// CombineErrors follows the CombineTuple priority, but its Error holds a
// *multierror.Error with every failed payload prefixed by its position. Nested
// *multierror.Error payloads are kept as single entries.
func CombineErrors[A any](first AsyncResult[error, A], rest ...AsyncResult[error, A]) AsyncResult[error, []A] {
	all := append([]AsyncResult[error, A]{first}, rest...)

	var merr *multierror.Error
	for i, r := range all {
		if !r.IsError() {
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

	return CombineTuple(first, rest...)
}
