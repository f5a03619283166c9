// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/clicker/internal/migrations"
	"github.com/sbilibin2017/clicker/internal/repositories"
)

// NewSQLiteDB opens a fresh in-memory SQLite database with the full schema
// applied. The database is closed when the test ends.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := repositories.Open(ctx, repositories.DriverSQLite, repositories.SQLiteDSN(":memory:"), 1, 1)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := migrations.Up(ctx, db); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}

	return db
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
