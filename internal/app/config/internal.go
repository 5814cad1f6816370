package config

type InternalConfig struct {
	App       App          `mapstructure:"app"`
	Timetable AppTimetable `mapstructure:"timetable"`
	RabbitMQ  AppRabbitMQ  `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	CORSAllowedOrigins         []string `mapstructure:"cors_allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
	// AdminAPIKeyHash is the bcrypt hash of the key accepted on admin endpoints
	AdminAPIKeyHash      string `mapstructure:"admin_api_key_hash"`
	AdminAPIKeyRateLimit int    `mapstructure:"admin_api_key_rate_limit"`
}

// AppTimetable configures where the timetable comes from and how often it is
// refreshed and re-evaluated.
type AppTimetable struct {
	// Source is one of file, http or minio
	Source               string `mapstructure:"source"`
	FilePath             string `mapstructure:"file_path"`
	URL                  string `mapstructure:"url"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds"`
	MinioBucketName      string `mapstructure:"minio_bucket_name"`
	MinioObjectName      string `mapstructure:"minio_object_name"`
	// DefaultPolicy is merged or parallel
	DefaultPolicy         string `mapstructure:"default_policy"`
	RefreshCronSpec       string `mapstructure:"refresh_cron_spec"`
	SlotRecomputeCronSpec string `mapstructure:"slot_recompute_cron_spec"`

	LastGoodCacheTTLInHours     int `mapstructure:"last_good_cache_ttl_in_hours"`
	LeaderLockTTLInSeconds      int `mapstructure:"leader_lock_ttl_in_seconds"`
	LastPeriodKeyTTLInHours     int `mapstructure:"last_period_key_ttl_in_hours"`
	InitialLoadTimeoutInSeconds int `mapstructure:"initial_load_timeout_in_seconds"`
}

type AppRabbitMQ struct {
	PeriodQueue string `mapstructure:"period_queue"`
}
