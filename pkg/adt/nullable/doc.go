// Package nullable treats a plain *A as "A or absent" and supplies the same
// combinators as package result, without a wrapper type. A nil pointer is the
// absent state; every non-nil pointer is present, whatever it points to.
// Nothing is flattened: a non-nil **A whose target is nil is still present.
//
// Go has two spellings of "nothing" where a value is expected: the untyped
// nil interface and a typed nil (a nil pointer, map, slice, chan, func or
// interface). Of folds both into the absent state.
package nullable
