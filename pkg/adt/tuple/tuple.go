// Package tuple holds the fixed-size heterogeneous products produced by the
// typed CombineTupleN helpers of result, nullable and asyncresult.
package tuple

// T2 is an ordered pair.
type T2[A, B any] struct {
	First  A
	Second B
}

// T3 is an ordered triple.
type T3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// T4 is an ordered quadruple.
type T4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func New2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{First: a, Second: b}
}

func New3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{First: a, Second: b, Third: c}
}

func New4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d}
}

// Unpack returns the elements in order.
func (t T2[A, B]) Unpack() (A, B) {
	return t.First, t.Second
}

// Unpack returns the elements in order.
func (t T3[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

// Unpack returns the elements in order.
func (t T4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.First, t.Second, t.Third, t.Fourth
}
