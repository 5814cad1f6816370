package contracts

import (
	"context"
	"time"
)

// RedisRepository stores JSON encoded values. Get reports a missing key as
// an empty string.
type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	TrySetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}
