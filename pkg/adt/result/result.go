package result

import "fmt"

// Kind is the active variant of a Result.
type Kind uint8

const (
	KindError Kind = iota
	KindOk
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "Ok"
	case KindError:
		return "Error"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Result is Ok with a value of type A or Error with a payload of type E.
// Results are immutable; combinators always build new ones. The zero Result is
// an Error holding the zero E.
type Result[E, A any] struct {
	kind  Kind
	value A
	err   E
}

// Ok builds a successful Result. E usually has to be given explicitly:
// Ok[string](1).
func Ok[E, A any](value A) Result[E, A] {
	return Result[E, A]{
		kind:  KindOk,
		value: value,
	}
}

// Error builds a failed Result. A usually has to be given explicitly:
// Error[int]("boom").
func Error[A, E any](err E) Result[E, A] {
	return Result[E, A]{
		kind: KindError,
		err:  err,
	}
}

func (r Result[E, A]) Kind() Kind {
	return r.kind
}

func (r Result[E, A]) IsOk() bool {
	return r.kind == KindOk
}

func (r Result[E, A]) IsError() bool {
	return r.kind != KindOk
}

// Get returns the Ok value and true, or the zero A and false.
func (r Result[E, A]) Get() (A, bool) {
	return r.value, r.kind == KindOk
}

// GetError returns the Error payload and true, or the zero E and false.
func (r Result[E, A]) GetError() (E, bool) {
	return r.err, r.kind != KindOk
}

func (r Result[E, A]) String() string {
	if r.kind == KindOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Error(%v)", r.err)
}

// IsOk reports whether r is Ok. Usable wherever a predicate over Results is
// expected.
func IsOk[E, A any](r Result[E, A]) bool {
	return r.IsOk()
}

// IsError reports whether r is Error.
func IsError[E, A any](r Result[E, A]) bool {
	return r.IsError()
}
