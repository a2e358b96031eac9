package nullable

import (
	"reflect"

	"github.com/PalmZE/adt/pkg/adt/tuple"
)

// Of returns nil when v is nil in either of Go's two senses, and a pointer to
// a copy of v otherwise. Zero values such as 0, "" or false are present.
func Of[A any](v A) *A {
	if IsNil(v) {
		return nil
	}
	return &v
}

// FromOk adapts the comma-ok idiom: present only when ok is true.
func FromOk[A any](v A, ok bool) *A {
	if !ok {
		return nil
	}
	return &v
}

// IsNil reports whether i is the nil interface or holds a nil of a nilable kind.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

func IsNonNullable[A any](n *A) bool {
	return n != nil
}

func IsNullOrUndefined[A any](n *A) bool {
	return n == nil
}

// Map applies f to a present value and returns a pointer to the result.
func Map[A, B any](n *A, f func(A) B) *B {
	if n == nil {
		return nil
	}
	b := f(*n)
	return &b
}

// Filter returns n itself when it is present and satisfies pred, nil otherwise.
func Filter[A any](n *A, pred func(A) bool) *A {
	if n != nil && pred(*n) {
		return n
	}
	return nil
}

func Exists[A any](n *A, pred func(A) bool) bool {
	return n != nil && pred(*n)
}

// GetOrElse dereferences n, or calls fallback when n is absent.
func GetOrElse[A any](n *A, fallback func() A) A {
	if n != nil {
		return *n
	}
	return fallback()
}

func Match[A, B any](n *A, ifPresent func(A) B, ifAbsent func() B) B {
	if n != nil {
		return ifPresent(*n)
	}
	return ifAbsent()
}

// ToUndefined dereferences n, yielding the zero A when n is absent.
// A present zero looks the same; check IsNil first when that matters.
func ToUndefined[A any](n *A) A {
	if n != nil {
		return *n
	}
	var zero A
	return zero
}

// ToNull returns n unchanged; an absent n is always the plain nil pointer.
func ToNull[A any](n *A) *A {
	if n == nil {
		return nil
	}
	return n
}

// CombineTuple returns the dereferenced values, in order, when every input is
// present, and nil as soon as one is absent.
func CombineTuple[A any](first *A, rest ...*A) *[]A {
	values := make([]A, 0, len(rest)+1)
	for _, n := range append([]*A{first}, rest...) {
		if n == nil {
			return nil
		}
		values = append(values, *n)
	}
	return &values
}

func CombineTuple2[A, B any](a *A, b *B) *tuple.T2[A, B] {
	if a == nil || b == nil {
		return nil
	}
	t := tuple.New2(*a, *b)
	return &t
}

func CombineTuple3[A, B, C any](a *A, b *B, c *C) *tuple.T3[A, B, C] {
	if a == nil || b == nil || c == nil {
		return nil
	}
	t := tuple.New3(*a, *b, *c)
	return &t
}

func CombineTuple4[A, B, C, D any](a *A, b *B, c *C, d *D) *tuple.T4[A, B, C, D] {
	if a == nil || b == nil || c == nil || d == nil {
		return nil
	}
	t := tuple.New4(*a, *b, *c, *d)
	return &t
}
