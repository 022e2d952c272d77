// Package lock serializes work on a named resource across requests and, when
// Redis is configured, across processes.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotObtained = errors.New("lock not obtained")

// Locker hands out leases on keys. A lease expires on its own after ttl.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (Lease, error)
}

type Lease interface {
	Release(ctx context.Context) error
}

// Local is an in-process Locker used when no Redis is configured.
type Local struct {
	mu   sync.Mutex
	held map[string]*localLease
	wait time.Duration
}

// NewLocal returns a Local that waits up to wait for a busy key.
func NewLocal(wait time.Duration) *Local {
	return &Local{held: make(map[string]*localLease), wait: wait}
}

type localLease struct {
	owner   *Local
	key     string
	expires time.Time
}

func (l *Local) tryObtain(key string, ttl time.Duration) *localLease {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	if cur, ok := l.held[key]; ok && now.Before(cur.expires) {
		return nil
	}

	lease := &localLease{owner: l, key: key, expires: now.Add(ttl)}
	l.held[key] = lease

	return lease
}

func (l *Local) Obtain(ctx context.Context, key string, ttl time.Duration) (Lease, error) {
	deadline := time.Now().Add(l.wait)

	for {
		if lease := l.tryObtain(key, ttl); lease != nil {
			return lease, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrNotObtained
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (lease *localLease) Release(context.Context) error {
	l := lease.owner

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[lease.key] == lease {
		delete(l.held, lease.key)
	}

	return nil
}

// With runs fn while holding key.
func With(ctx context.Context, locker Locker, key string, ttl time.Duration, fn func() error) error {
	lease, err := locker.Obtain(ctx, key, ttl)
	if err != nil {
		return err
	}

	defer lease.Release(context.WithoutCancel(ctx))

	return fn()
}
