// Package result contains the two-state Result[E, A] outcome type and its
// combinators. A Result is either Ok, holding a value of type A, or Error,
// holding a failure payload of type E. Failure is always a value; nothing in
// this package panics or returns a Go error for a well-formed Result.
//
// Every combinator comes in two call styles:
// - eager: Map(r, f), Filter(r, pred, ifFiltered), Match(r, ifOk, ifError)
// - bound: MapWith(f), FilterWith(pred, ifFiltered), MatchWith(ifOk, ifError)
// return a func(Result[E, A]) ... for left-to-right pipelines (see package pipe).
//
// Key operations:
// - Ok/Error: construct a Result
// - Map/MapError/FlatMap: transform one side, pass the other through
// - Filter/Exists: test the Ok value with a predicate
// - GetOrElse/Match/ToUndefined/ToNull: leave the Result world
// - CombineTuple/CombineTuple2..4: all-or-nothing product of several Results
// - CombineErrors: like CombineTuple, but keeps every failure
// - Of/Unpack: bridge to Go's (value, error) convention
package result
