// Package lock serializes ledger mutations. Every mutation rewrites the whole
// application collection, so a single critical section guards the store.
package lock

import (
	"context"
	"errors"
)

// ErrNotHeld is returned when releasing a lock this holder no longer owns,
// for example after its TTL expired.
var ErrNotHeld = errors.New("lock not held")

// Locker hands out exclusive access to the application store.
// Acquire blocks until the lock is held or ctx is done; the returned release
// function must be called exactly once.
type Locker interface {
	Acquire(ctx context.Context) (release func(context.Context) error, err error)
}

// Local is an in-process Locker. A buffered channel is used instead of a
// sync.Mutex so waiting honours context cancellation.
type Local struct {
	sem chan struct{}
}

// NewLocal creates a Local locker.
func NewLocal() *Local {
	return &Local{sem: make(chan struct{}, 1)}
}

var _ Locker = (*Local)(nil)

func (l *Local) Acquire(ctx context.Context) (func(context.Context) error, error) {
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	released := false
	return func(context.Context) error {
		if released {
			return ErrNotHeld
		}
		released = true
		<-l.sem
		return nil
	}, nil
}
