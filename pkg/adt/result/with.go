package result

import "github.com/PalmZE/adt/pkg/adt/internal/pipeable"

// MapWith is Map with f bound: MapWith[E](f)(r) == Map(r, f).
func MapWith[E, A, B any](f func(A) B) func(Result[E, A]) Result[E, B] {
	return pipeable.Bind2(Map[E, A, B], f)
}

// MapErrorWith is MapError with f bound: MapErrorWith[A](f)(r) == MapError(r, f).
func MapErrorWith[A, E, E2 any](f func(E) E2) func(Result[E, A]) Result[E2, A] {
	return pipeable.Bind2(MapError[E, A, E2], f)
}

func FlatMapWith[E, A, B any](f func(A) Result[E, B]) func(Result[E, A]) Result[E, B] {
	return pipeable.Bind2(FlatMap[E, A, B], f)
}

func FilterWith[E, A any](pred func(A) bool, ifFiltered func(A) E) func(Result[E, A]) Result[E, A] {
	return pipeable.Bind3(Filter[E, A], pred, ifFiltered)
}

// ExistsWith needs E spelled out: ExistsWith[string](pred).
func ExistsWith[E, A any](pred func(A) bool) func(Result[E, A]) bool {
	return pipeable.Bind2(Exists[E, A], pred)
}

// GetOrElseWith needs E spelled out: GetOrElseWith[string](fallback).
func GetOrElseWith[E, A any](fallback func() A) func(Result[E, A]) A {
	return pipeable.Bind2(GetOrElse[E, A], fallback)
}

func MatchWith[E, A, B any](ifOk func(A) B, ifError func(E) B) func(Result[E, A]) B {
	return pipeable.Bind3(Match[E, A, B], ifOk, ifError)
}
