// Package storagetest provides migrated in-memory databases for tests.
package storagetest

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-history/internal/storage"
)

// NewSQLite returns a migrated in-memory sqlite database that is closed
// when the test ends.
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := storage.OpenSQLite(":memory:", storage.Options{Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := storage.Close(db); err != nil {
			t.Logf("failed to close sqlite: %v", err)
		}
	})

	err = storage.Migrate(context.Background(), db)
	if err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return db
}
