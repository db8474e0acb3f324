package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-history/internal/config"
	"github.com/adanyl0v/go-task-history/internal/storage/storagetest"
)

func TestRegisterRoutesWithMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := storagetest.NewSQLite(t)
	cfg := &config.Config{Env: config.EnvDev, Metrics: config.MetricsConfig{Enabled: true}}

	router := gin.New()
	mustRegisterRoutes(router, zerolog.Nop(), cfg, db)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"A"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Fatal("expected go runtime metrics")
	}
}

func TestRegisterRoutesWithoutMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := storagetest.NewSQLite(t)
	cfg := &config.Config{Env: config.EnvDev}

	router := gin.New()
	mustRegisterRoutes(router, zerolog.Nop(), cfg, db)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMustInitApplicationLoggerUnknownEnv(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustInitApplicationLogger(zerolog.Nop(), &config.Config{Env: "staging"})
}
