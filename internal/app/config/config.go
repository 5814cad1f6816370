package config

import (
	"timetable-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", true),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),

			DialTimeoutInSeconds: utils.GetEnvInt("REDIS_DIAL_TIMEOUT_IN_SECONDS", 5),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			VHost:    utils.GetEnvString("RABBITMQ_VHOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			CORSAllowedOrigins:         utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			AdminAPIKeyHash:            utils.GetEnvString("APP_ADMIN_API_KEY_HASH", ""),
			AdminAPIKeyRateLimit:       utils.GetEnvInt("APP_ADMIN_API_KEY_RATE_LIMIT", 5),
		},
		Timetable: AppTimetable{
			Source:                      utils.GetEnvString("TIMETABLE_SOURCE", "file"),
			FilePath:                    utils.GetEnvString("TIMETABLE_FILE_PATH", "data/timetable.json"),
			URL:                         utils.GetEnvString("TIMETABLE_URL", ""),
			HTTPTimeoutInSeconds:        utils.GetEnvInt("TIMETABLE_HTTP_TIMEOUT_IN_SECONDS", 10),
			MinioBucketName:             utils.GetEnvString("TIMETABLE_MINIO_BUCKET_NAME", "timetable"),
			MinioObjectName:             utils.GetEnvString("TIMETABLE_MINIO_OBJECT_NAME", "timetable.json"),
			DefaultPolicy:               utils.GetEnvString("TIMETABLE_DEFAULT_POLICY", "merged"),
			RefreshCronSpec:             utils.GetEnvString("APP_TIMETABLE_REFRESH_CRON_SPEC", "@every 60s"),
			SlotRecomputeCronSpec:       utils.GetEnvString("APP_SLOT_RECOMPUTE_CRON_SPEC", "@every 60s"),
			LastGoodCacheTTLInHours:     utils.GetEnvInt("TIMETABLE_LAST_GOOD_CACHE_TTL_IN_HOURS", 168),
			LeaderLockTTLInSeconds:      utils.GetEnvInt("TIMETABLE_LEADER_LOCK_TTL_IN_SECONDS", 50),
			LastPeriodKeyTTLInHours:     utils.GetEnvInt("TIMETABLE_LAST_PERIOD_TTL_IN_HOURS", 24),
			InitialLoadTimeoutInSeconds: utils.GetEnvInt("TIMETABLE_INITIAL_LOAD_TIMEOUT_IN_SECONDS", 15),
		},
		RabbitMQ: AppRabbitMQ{
			PeriodQueue: utils.GetEnvString("APP_RABBITMQ_PERIOD_QUEUE", "timetable.period"),
		},
	}
}
