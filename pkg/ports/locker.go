package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lock obtained from a DistributedLocker.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker serializes access to one session's cursor across processes that share
// a CursorStore. The session manager takes it around every load, apply and save.
type DistributedLocker interface {
	// Lock blocks until the lock on key (a session ID) is held or ctx is done.
	// The lock expires after ttl if the holder never releases it.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
