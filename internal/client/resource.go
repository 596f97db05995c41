package client

import (
	"context"
	"sync"
)

// State is the lifecycle phase of a Resource.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is one observed Resource state. Data is valid only in
// StateSuccess, Err only in StateError.
type Snapshot[T any] struct {
	State State
	Data  T
	Err   error
}

// Resource holds the loading state around a fetch so views observe exactly
// one of idle/loading/success/error. When loads overlap, only the newest
// load's outcome is published; an older call resolving late is discarded.
// Fetch failures become the error state, they are never re-raised.
type Resource[T any] struct {
	mu   sync.Mutex
	gen  uint64
	snap Snapshot[T]
}

// NewResource creates a Resource in the idle state.
func NewResource[T any]() *Resource[T] {
	return &Resource[T]{}
}

// Load runs fetch and publishes its outcome, unless a newer Load started
// while fetch was in flight. It blocks until fetch returns; concurrent use
// is safe.
func (r *Resource[T]) Load(ctx context.Context, fetch func(ctx context.Context) (T, error)) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.snap = Snapshot[T]{State: StateLoading}
	r.mu.Unlock()

	data, err := fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		// A newer load superseded this one.
		return
	}
	if err != nil {
		r.snap = Snapshot[T]{State: StateError, Err: err}
		return
	}
	r.snap = Snapshot[T]{State: StateSuccess, Data: data}
}

// Snapshot returns the current observed state.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Reset returns the resource to idle, discarding any in-flight load's
// eventual result.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.snap = Snapshot[T]{}
}
