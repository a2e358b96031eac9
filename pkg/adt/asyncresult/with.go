package asyncresult

import "github.com/PalmZE/adt/pkg/adt/internal/pipeable"

// MapWith is Map with f bound: MapWith[E](f)(r) == Map(r, f).
func MapWith[E, A, B any](f func(A) B) func(AsyncResult[E, A]) AsyncResult[E, B] {
	return pipeable.Bind2(Map[E, A, B], f)
}

// MapErrorWith is MapError with f bound: MapErrorWith[A](f)(r) == MapError(r, f).
func MapErrorWith[A, E, E2 any](f func(E) E2) func(AsyncResult[E, A]) AsyncResult[E2, A] {
	return pipeable.Bind2(MapError[E, A, E2], f)
}

func FlatMapWith[E, A, B any](f func(A) AsyncResult[E, B]) func(AsyncResult[E, A]) AsyncResult[E, B] {
	return pipeable.Bind2(FlatMap[E, A, B], f)
}

func FilterWith[E, A any](pred func(A) bool, ifFiltered func(A) E) func(AsyncResult[E, A]) AsyncResult[E, A] {
	return pipeable.Bind3(Filter[E, A], pred, ifFiltered)
}

func ExistsWith[E, A any](pred func(A) bool) func(AsyncResult[E, A]) bool {
	return pipeable.Bind2(Exists[E, A], pred)
}

func GetOrElseWith[E, A any](fallback func() A) func(AsyncResult[E, A]) A {
	return pipeable.Bind2(GetOrElse[E, A], fallback)
}

func MatchWith[E, A, B any](ifInitial func() B, ifLoading func() B, ifOk func(A) B,
	ifError func(E) B) func(AsyncResult[E, A]) B {
	return pipeable.Bind5(Match[E, A, B], ifInitial, ifLoading, ifOk, ifError)
}

func MatchShortWith[E, A, B any](ifInitialOrLoading func() B, ifOk func(A) B,
	ifError func(E) B) func(AsyncResult[E, A]) B {
	return pipeable.Bind4(MatchShort[E, A, B], ifInitialOrLoading, ifOk, ifError)
}
