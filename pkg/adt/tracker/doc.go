// Package tracker is the producer side of an asyncresult.AsyncResult: it holds
// one snapshot and moves it through Initial -> Loading -> Ok|Error as an
// operation is started and completed, possibly many times over.
//
// Every Begin hands out a fresh Attempt. Only the current attempt may settle
// the snapshot; completions of superseded attempts are dropped, so a slow
// first request can never overwrite the result of a later refetch.
//
// A Tracker never starts goroutines. Run executes the work on the calling
// goroutine; callers that want concurrency call Begin and settle the attempt
// from wherever the work finishes.
package tracker
