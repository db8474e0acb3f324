package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	HTTP     HTTPConfig
	Database DatabaseConfig
	SQLite   SQLiteConfig
	Postgres PostgresConfig
	Metrics  MetricsConfig
}

type HTTPConfig struct {
	Host              string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port              string        `env:"HTTP_PORT" env-default:"8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type DatabaseConfig struct {
	Driver             string        `env:"DATABASE_DRIVER" env-default:"sqlite"`
	PingTimeout        time.Duration `env:"DATABASE_PING_TIMEOUT" env-default:"10s"`
	AutoMigrate        bool          `env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
	SlowQueryThreshold time.Duration `env:"DATABASE_SLOW_QUERY_THRESHOLD" env-default:"200ms"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" env-default:"tasks.db"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
}

type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" env-default:"true"`
}
