package contracts

import (
	"context"
	"time"
)

// LockerService is a best-effort distributed mutex shared by every replica
// running the period worker. TryLock hands back the token Unlock expects.
type LockerService interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
}
