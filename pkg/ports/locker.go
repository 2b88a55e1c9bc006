package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a previously acquired distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker provides cross-replica concurrency control for session
// turns. The in-process lock map in session.Manager covers a single replica;
// a DistributedLocker extends the same guarantee across replicas.
type DistributedLocker interface {
	// Lock acquires an exclusive lock on key, waiting until available or
	// ctx is done. The returned UnlockFunc MUST be called to release it;
	// the ttl bounds how long a crashed holder can block others.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
