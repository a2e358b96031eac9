package tracker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/PalmZE/adt/pkg/adt/asyncresult"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Attempt identifies one Begin call. The zero Attempt never matches.
type Attempt struct {
	id uuid.UUID
}

func (a Attempt) String() string {
	return a.id.String()
}

func (a Attempt) IsZero() bool {
	return a.id == uuid.Nil
}

// Tracker holds the current snapshot of one asynchronous operation. It is
// safe for concurrent use.
type Tracker[E, A any] struct {
	logger hclog.Logger

	mu        sync.Mutex
	state     asyncresult.AsyncResult[E, A]
	current   Attempt
	observers []func(prev, next asyncresult.AsyncResult[E, A])
}

// New returns a Tracker in the Initial state.
func New[E, A any](opt ...Option) (*Tracker[E, A], error) {
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, err
	}

	return &Tracker[E, A]{
		logger: opts.withLogger.Named(opts.withName),
		state:  asyncresult.Initial[E, A](),
	}, nil
}

// Snapshot returns the current state.
func (t *Tracker[E, A]) Snapshot() asyncresult.AsyncResult[E, A] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Current returns the attempt that may settle the snapshot, or the zero
// Attempt when nothing is in flight.
func (t *Tracker[E, A]) Current() Attempt {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// OnChange registers fn to be called after every accepted transition.
// Observers run on the goroutine that caused the transition, after the
// tracker's lock is released.
func (t *Tracker[E, A]) OnChange(fn func(prev, next asyncresult.AsyncResult[E, A])) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}

// Begin moves the snapshot to Loading and returns a new attempt. Any attempt
// handed out before becomes stale.
func (t *Tracker[E, A]) Begin() Attempt {
	a := Attempt{id: uuid.New()}
	t.transition(func() (asyncresult.AsyncResult[E, A], bool) {
		t.current = a
		return asyncresult.Loading[E, A](), true
	})
	t.logger.Trace("attempt started", "attempt", a)
	return a
}

// Resolve settles attempt a with Ok(value). It reports false, and changes
// nothing, when a is not the current attempt.
func (t *Tracker[E, A]) Resolve(a Attempt, value A) bool {
	_, ok := t.settle(a, asyncresult.Ok[E](value))
	return ok
}

// Reject settles attempt a with Error(err). It reports false, and changes
// nothing, when a is not the current attempt.
func (t *Tracker[E, A]) Reject(a Attempt, err E) bool {
	_, ok := t.settle(a, asyncresult.Error[A](err))
	return ok
}

// Reset returns to Initial and makes the current attempt stale.
func (t *Tracker[E, A]) Reset() {
	t.transition(func() (asyncresult.AsyncResult[E, A], bool) {
		t.current = Attempt{}
		return asyncresult.Initial[E, A](), true
	})
	t.logger.Trace("reset")
}

// settle installs next when a is the current attempt and returns it.
func (t *Tracker[E, A]) settle(a Attempt, next asyncresult.AsyncResult[E, A]) (asyncresult.AsyncResult[E, A], bool) {
	var current Attempt
	installed, accepted := t.transition(func() (asyncresult.AsyncResult[E, A], bool) {
		current = t.current
		if a.IsZero() || a != current {
			return asyncresult.AsyncResult[E, A]{}, false
		}
		t.current = Attempt{}
		return next, true
	})

	if !accepted {
		t.logger.Debug("dropping stale completion", "attempt", a, "current", current, "outcome", next.Kind())
		return installed, false
	}
	t.logger.Trace("attempt settled", "attempt", a, "outcome", next.Kind())
	return installed, true
}

// transition runs step under the lock and, when step accepts, installs the
// new state and notifies observers outside the lock. It returns the state it
// installed.
func (t *Tracker[E, A]) transition(step func() (asyncresult.AsyncResult[E, A], bool)) (asyncresult.AsyncResult[E, A], bool) {
	t.mu.Lock()
	next, ok := step()
	if !ok {
		t.mu.Unlock()
		return next, false
	}
	prev := t.state
	t.state = next
	observers := slices.Clone(t.observers)
	t.mu.Unlock()

	for _, fn := range observers {
		fn(prev, next)
	}
	return next, true
}

// Run begins an attempt, calls fn on the calling goroutine and settles the
// attempt with its outcome. A context that is already done fails the attempt
// with ctx.Err() without calling fn. If fn panics, the attempt is rejected
// with an error describing the panic and the panic is re-raised.
//
// Run returns the snapshot its own attempt installed, even when an observer
// or another goroutine has moved the tracker on since. When the attempt was
// superseded before it could settle, Run returns the tracker's current state.
func Run[A any](ctx context.Context, t *Tracker[error, A],
	fn func(ctx context.Context) (A, error)) asyncresult.AsyncResult[error, A] {

	a := t.Begin()

	if err := ctx.Err(); err != nil {
		t.logger.Debug("context done before start", "attempt", a, "error", err)
		return t.settleOrCurrent(a, asyncresult.Error[A](err))
	}

	done := false
	defer func() {
		if done {
			return
		}
		if r := recover(); r != nil {
			t.logger.Error("attempt panicked", "attempt", a, "panic", r)
			t.Reject(a, fmt.Errorf("%w: %v", ErrPanicked, r))
			panic(r)
		}
	}()

	v, err := fn(ctx)
	done = true

	switch {
	case err == nil:
		return t.settleOrCurrent(a, asyncresult.Ok[error](v))
	case IsCancellationError(err):
		t.logger.Debug("attempt cancelled", "attempt", a, "error", err)
	default:
		t.logger.Warn("attempt failed", "attempt", a, "error", err)
	}
	return t.settleOrCurrent(a, asyncresult.Error[A](err))
}

// ErrPanicked wraps the value recovered from a panicking Run function.
var ErrPanicked = errors.New("tracker: run function panicked")

func (t *Tracker[E, A]) settleOrCurrent(a Attempt, next asyncresult.AsyncResult[E, A]) asyncresult.AsyncResult[E, A] {
	if installed, ok := t.settle(a, next); ok {
		return installed
	}
	return t.Snapshot()
}

// IsCancellationError reports whether err stems from a cancelled or expired
// context.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
