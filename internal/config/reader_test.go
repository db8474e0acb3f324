package config

import (
	"testing"
	"time"
)

func TestEnvReaderDefaults(t *testing.T) {
	t.Setenv("ENV", EnvDev)

	cfg, err := NewEnvReader().Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if cfg.HTTP.Port != "8080" || cfg.HTTP.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected http config: %+v", cfg.HTTP)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.SQLite.Path != "tasks.db" {
		t.Fatalf("unexpected database config: %+v %+v", cfg.Database, cfg.SQLite)
	}
	if !cfg.Database.AutoMigrate || !cfg.Metrics.Enabled {
		t.Fatalf("expected auto migrate and metrics to default on: %+v", cfg)
	}
}

func TestEnvReaderPostgres(t *testing.T) {
	t.Setenv("ENV", EnvProd)
	t.Setenv("DATABASE_DRIVER", DriverPostgres)
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_USERNAME", "tasks")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DATABASE", "tasks")
	t.Setenv("POSTGRES_CONNECT_TIMEOUT", "3s")

	cfg, err := NewEnvReader().Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if cfg.Postgres.Host != "db" || cfg.Postgres.Port != 5432 || cfg.Postgres.ConnectTimeout != 3*time.Second {
		t.Fatalf("unexpected postgres config: %+v", cfg.Postgres)
	}
}

func TestEnvReaderRejectsInvalidConfig(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown env":      {"ENV": "staging"},
		"unknown driver":   {"ENV": EnvDev, "DATABASE_DRIVER": "mysql"},
		"postgres no host": {"ENV": EnvDev, "DATABASE_DRIVER": DriverPostgres, "POSTGRES_USERNAME": "u", "POSTGRES_DATABASE": "d"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := NewEnvReader().Read(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
