package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/delivery/http/controllers"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/delivery/http/routers"
	"timetable-service/internal/app/drivers/database"
	"timetable-service/internal/app/drivers/logger"
	"timetable-service/internal/app/drivers/messaging"
	"timetable-service/internal/app/drivers/storage"
	"timetable-service/internal/app/services/core/schedule"
	"timetable-service/internal/app/services/shared/doccache"
	"timetable-service/internal/app/services/shared/locker"
	"timetable-service/internal/app/services/shared/publisher"
	"timetable-service/internal/app/services/shared/redis"
	documentStorage "timetable-service/internal/app/services/shared/storage"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if driverConfig.Redis.Enabled {
		redisClient, err := database.NewRedisClient(driverConfig, zapLogger)
		if err != nil {
			zapLogger.Warn("Redis unavailable; running without cache, lock and period memory", zap.Error(err))
		} else {
			bootstrap.Redis = redisClient
		}
	}
	if internalConfig.Timetable.Source == constvars.TimetableSourceMinio {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.Timetable.MinioBucketName)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %s", err.Error())
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error shutting down components: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	location, err := schedule.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Warn("Unknown APP_TIMEZONE; using the local zone",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
	}
	clock := schedule.NewSystemClock(location)

	source, err := documentStorage.NewDocumentSource(internalConfig, bootstrap.Minio, zapLogger)
	if err != nil {
		return err
	}

	var (
		redisRepository contracts.RedisRepository
		documentCache   contracts.DocumentCache
		lockerService   contracts.LockerService
	)
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		documentCache = doccache.NewRedisDocumentCache(
			redisRepository,
			time.Duration(internalConfig.Timetable.LastGoodCacheTTLInHours)*time.Hour,
			zapLogger,
		)
		lockerService = locker.NewLockService(redisRepository, zapLogger)
	}

	eventPublisher := publisher.NewLogPublisher(zapLogger)
	if bootstrap.RabbitMQ != nil {
		eventPublisher, err = publisher.NewEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.PeriodQueue, zapLogger)
		if err != nil {
			return err
		}
	}

	scheduleUsecase := schedule.NewScheduleUsecase(source, documentCache, redisRepository, clock, internalConfig, zapLogger)

	initialLoadCtx, cancel := context.WithTimeout(
		utils.WithRequestID(context.Background(), utils.GenerateWorkerRequestID("startup")),
		time.Duration(internalConfig.Timetable.InitialLoadTimeoutInSeconds)*time.Second,
	)
	defer cancel()
	_, err = scheduleUsecase.Reload(initialLoadCtx)
	if err != nil {
		zapLogger.Warn("Initial timetable load failed; serving from cache or waiting for the next refresh",
			zap.String(constvars.LoggingSourceKey, source.Name()),
			zap.Error(err),
		)
	}

	worker := schedule.NewWorker(zapLogger, internalConfig, lockerService, scheduleUsecase, eventPublisher)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	middlewares := middlewares.NewMiddlewares(zapLogger, internalConfig)
	scheduleController := controllers.NewScheduleController(zapLogger, scheduleUsecase)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, scheduleController)
	return nil
}
