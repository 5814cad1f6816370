package config

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Bootstrap carries the process wide dependencies. Redis, Minio and
// RabbitMQ stay nil when their driver is disabled or unused.
type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Minio          *minio.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop stops the timetable cron jobs and waits for running ones.
	WorkerStop func()
}

// Shutdown stops the worker first so nothing publishes into a closed
// connection, then closes every driver. All close errors are returned joined.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped timetable worker")
	}

	var errs []error
	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing Redis")
		}
	}
	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing RabbitMQ")
		}
	}

	b.Logger.Info("Closing logger")
	// Sync on stdout returns EINVAL on some platforms; it is not a failure.
	_ = b.Logger.Sync()

	return errors.Join(errs...)
}
