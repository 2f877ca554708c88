// Package dbtest opens isolated, seeded in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/angelmondragon/cornerstore-backend/pkg/db/models"
	"github.com/angelmondragon/cornerstore-backend/pkg/db/seed"
)

// OpenEmpty returns a migrated but empty database private to the test.
func OpenEmpty(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := conn.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return conn
}

// Open returns a migrated database loaded with the seed data.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	conn := OpenEmpty(t)
	if err := seed.Apply(context.Background(), conn); err != nil {
		t.Fatalf("seed sqlite: %v", err)
	}
	return conn
}
