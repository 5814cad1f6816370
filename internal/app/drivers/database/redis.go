package database

import (
	"context"
	"fmt"
	"time"
	"timetable-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient dials Redis and pings it once. The caller decides whether
// an unreachable Redis is fatal; the timetable service runs without it.
func NewRedisClient(driverConfig *config.DriverConfig, logger *zap.Logger) (*redis.Client, error) {
	dialTimeout := time.Duration(driverConfig.Redis.DialTimeoutInSeconds) * time.Second
	rdb := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:    driverConfig.Redis.Password,
		DB:          driverConfig.Redis.DB,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", rdb.Options().Addr, err)
	}

	logger.Info("Successfully connected to Redis", zap.String("address", rdb.Options().Addr))
	return rdb, nil
}
