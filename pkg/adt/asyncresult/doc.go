// Package asyncresult models the last known state of an asynchronous
// operation as a four-state value: Initial (not started), Loading (in
// flight), Ok (succeeded with a value) or Error (failed with a payload).
//
// An AsyncResult is a snapshot, not a state machine: whoever runs the
// operation replaces the snapshot as it progresses, typically
// Initial -> Loading -> Ok|Error and back to Loading on refetch (see package
// tracker). Nothing here awaits, schedules or enforces transitions.
//
// The combinators mirror package result on the Ok and Error branches and
// always pass Initial and Loading through untouched. Each has an eager form
// and a bound ...With form for pipelines.
//
// Key operations:
// - Initial/Loading/Ok/Error: construct a snapshot
// - Map/MapError/FlatMap/Filter/Exists/GetOrElse: as in package result
// - Match: four-way dispatch; MatchShort merges Initial and Loading
// - CombineTuple: worst state wins, Error > Loading > Initial > Ok
// - CombineErrors: CombineTuple that keeps every failure
package asyncresult
