package redis

import (
	"context"
	"errors"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository wraps a single node or cluster client. Values go in as
// JSON, so a plain string is stored with its quotes.
func NewRedisRepository(client redis.UniversalClient) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", nil
	case err != nil:
		return "", exceptions.ErrRedisGetNoData(err, key)
	}
	return data, nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := encode(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	payload, err := encode(value)
	if err != nil {
		return false, err
	}
	stored, err := r.client.SetNX(ctx, key, payload, ttl).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return stored, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func encode(value interface{}) ([]byte, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return payload, nil
}
