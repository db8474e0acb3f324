// Package storage opens the gorm handle shared by the services and keeps
// the schema of the three tables in sync with the models.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-history/internal/config"
	"github.com/adanyl0v/go-task-history/internal/models"
)

type Options struct {
	Logger             zerolog.Logger
	SlowQueryThreshold time.Duration
}

func Open(cfg *config.Config, logger zerolog.Logger) (*gorm.DB, error) {
	opts := Options{
		Logger:             logger,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	}

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLite.Path, opts)
	case config.DriverPostgres:
		return OpenPostgres(cfg.Postgres, opts)
	default:
		return nil, fmt.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
}

// OpenSQLite opens the database at path with foreign key enforcement on.
// The pool is limited to one connection, so ":memory:" databases are
// shared by every query.
func OpenSQLite(path string, opts Options) (*gorm.DB, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_foreign_keys=1"

	db, err := gorm.Open(sqlite.Open(dsn), newGormConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func OpenPostgres(cfg config.PostgresConfig, opts Options) (*gorm.DB, error) {
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)

	return OpenPostgresURL(connURL, cfg.ConnectTimeout, opts)
}

func OpenPostgresURL(connURL string, connectTimeout time.Duration, opts Options) (*gorm.DB, error) {
	connCfg, err := pgx.ParseConfig(connURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	if connectTimeout > 0 {
		connCfg.ConnectTimeout = connectTimeout
	}

	sqlDB := stdlib.OpenDB(*connCfg)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), newGormConfig(opts))
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	return db, nil
}

func newGormConfig(opts Options) *gorm.Config {
	return &gorm.Config{
		Logger:         NewGormLogger(opts.Logger, opts.SlowQueryThreshold),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or alters the users, tasks and task_histories tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.TaskHistory{},
	)
}
