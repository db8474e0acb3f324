package storage_test

import (
	"context"
	"testing"

	"github.com/adanyl0v/go-task-history/internal/models"
	"github.com/adanyl0v/go-task-history/internal/storage"
	"github.com/adanyl0v/go-task-history/internal/storage/storagetest"
)

func TestMigrateCreatesTables(t *testing.T) {
	db := storagetest.NewSQLite(t)

	for _, model := range []any{&models.User{}, &models.Task{}, &models.TaskHistory{}} {
		if !db.Migrator().HasTable(model) {
			t.Fatalf("expected table for %T", model)
		}
	}
	if !db.Migrator().HasTable("task_histories") {
		t.Fatal("expected task_histories table")
	}

	// Migrating twice is a no-op.
	if err := storage.Migrate(context.Background(), db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestStatusCheckConstraint(t *testing.T) {
	db := storagetest.NewSQLite(t)

	user := &models.User{Name: "owner"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	err := db.Create(&models.Task{Title: "t", Status: "Unknown", UserID: user.ID}).Error
	if err == nil {
		t.Fatal("expected check constraint violation")
	}
	if !storage.IsCheckViolation(err) {
		t.Fatalf("expected check violation, got %v", err)
	}

	for _, status := range models.Statuses {
		if err := db.Create(&models.Task{Title: status, Status: status, UserID: user.ID}).Error; err != nil {
			t.Fatalf("status %q rejected: %v", status, err)
		}
	}
}

func TestTaskForeignKey(t *testing.T) {
	db := storagetest.NewSQLite(t)

	err := db.Create(&models.Task{Title: "orphan", Status: models.StatusPending, UserID: 42}).Error
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
	if !storage.IsForeignKeyViolation(err) {
		t.Fatalf("expected foreign key violation, got %v", err)
	}
}

func TestPing(t *testing.T) {
	db := storagetest.NewSQLite(t)

	if err := storage.Ping(context.Background(), db); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
