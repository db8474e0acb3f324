package app

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-history/internal/config"
	"github.com/adanyl0v/go-task-history/internal/storage"
)

func MustConnectDatabase(logger zerolog.Logger, cfg *config.Config) *gorm.DB {
	db, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Error().
			Err(err).
			Str("driver", cfg.Database.Driver).
			Msg("failed to open database")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.PingTimeout)
	defer cancel()

	err = storage.Ping(ctx, db)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to ping database")
		panic(err)
	}

	if cfg.Database.AutoMigrate {
		err = storage.Migrate(ctx, db)
		if err != nil {
			logger.Error().
				Err(err).
				Msg("failed to migrate database")
			panic(err)
		}
		logger.Info().Msg("migrated database")
	}

	event := logger.Info().Str("driver", cfg.Database.Driver)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		event = event.
			Str("host", cfg.Postgres.Host).
			Int("port", cfg.Postgres.Port)
	case config.DriverSQLite:
		event = event.Str("path", cfg.SQLite.Path)
	}
	event.Msg("connected to database")

	return db
}

func DisconnectDatabase(logger zerolog.Logger, db *gorm.DB) {
	err := storage.Close(db)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to disconnect from database")
		return
	}
	logger.Info().Msg("disconnected from database")
}
