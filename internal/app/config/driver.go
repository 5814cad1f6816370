package config

// DriverConfig holds connection settings for the backing services. Redis
// and RabbitMQ are optional; MinIO is dialled only when the timetable
// source is minio.
type DriverConfig struct {
	Redis    Redis
	Logger   Logger
	RabbitMQ RabbitMQ
	Minio    Minio
}

type Redis struct {
	Enabled              bool
	Host                 string
	Port                 string
	Password             string
	DB                   int
	DialTimeoutInSeconds int
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type RabbitMQ struct {
	Enabled  bool
	Host     string
	Port     string
	VHost    string
	Username string
	Password string
}

type Minio struct {
	Host     string
	Port     string
	Username string
	Password string
	UseSSL   bool
}
