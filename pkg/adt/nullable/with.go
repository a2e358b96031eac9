package nullable

import "github.com/PalmZE/adt/pkg/adt/internal/pipeable"

func MapWith[A, B any](f func(A) B) func(*A) *B {
	return pipeable.Bind2(Map[A, B], f)
}

func FilterWith[A any](pred func(A) bool) func(*A) *A {
	return pipeable.Bind2(Filter[A], pred)
}

func ExistsWith[A any](pred func(A) bool) func(*A) bool {
	return pipeable.Bind2(Exists[A], pred)
}

func GetOrElseWith[A any](fallback func() A) func(*A) A {
	return pipeable.Bind2(GetOrElse[A], fallback)
}

func MatchWith[A, B any](ifPresent func(A) B, ifAbsent func() B) func(*A) B {
	return pipeable.Bind3(Match[A, B], ifPresent, ifAbsent)
}
