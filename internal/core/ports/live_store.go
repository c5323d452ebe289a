package ports

import (
	"context"
	"errors"
	"time"
)

var ErrLockNotAcquired = errors.New("lock not acquired")

type LiveStore interface {
	Locks() LockStore
	Tip() TipStore
}

type LockStore interface {
	// Lock blocks until the key is acquired, the ttl of a previous holder
	// expires or the context is done. The returned func releases the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

type TipStore interface {
	Get(ctx context.Context) (uint64, error)
	Set(ctx context.Context, height uint64) error
	Incr(ctx context.Context) (uint64, error)
}
