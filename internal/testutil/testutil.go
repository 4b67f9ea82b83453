// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/chronos-workspace/internal/auth"
)

// OpenDB opens an in-memory SQLite database and migrates the given models.
func OpenDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db pool: %v", err)
	}
	// :memory: databases are per connection.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("auto migrate: %v", err)
		}
	}
	return db
}

// WithUser returns a context carrying claims for id.
func WithUser(ctx context.Context, id uuid.UUID) context.Context {
	return auth.WithClaims(ctx, &auth.Claims{
		UserID: id.String(),
		Name:   "Test User",
		Email:  id.String()[:8] + "@example.com",
		Role:   "employee",
	})
}

// NewUser returns a fresh id and a context authenticated as it.
func NewUser(t *testing.T) (uuid.UUID, context.Context) {
	t.Helper()
	id := uuid.New()
	return id, WithUser(context.Background(), id)
}
