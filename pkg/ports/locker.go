package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker coordinates session access across replicas.
// A single-instance deployment does not need one; the session manager's
// in-process locks already serialize per-user access.
type DistributedLocker interface {
	// Lock acquires a lock for the given key (the user ID), blocking until
	// acquired or the context is canceled. The returned UnlockFunc MUST be
	// called to release it; the TTL bounds how long a crashed holder can
	// block others.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
