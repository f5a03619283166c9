package migrations_test

import (
	"context"
	"testing"

	"github.com/sbilibin2017/clicker/internal/migrations"
	"github.com/sbilibin2017/clicker/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	for _, dialect := range []string{migrations.DialectSQLite, migrations.DialectPostgres} {
		t.Run(dialect, func(t *testing.T) {
			list, err := migrations.Load(dialect)
			require.NoError(t, err)
			require.Len(t, list, 2)

			assert.Equal(t, 1, list[0].Version)
			assert.Equal(t, "init", list[0].Name)
			assert.Contains(t, list[0].SQL, "ON DELETE CASCADE")
			assert.Equal(t, 2, list[1].Version)
			assert.Equal(t, "seed_upgrades", list[1].Name)
		})
	}

	_, err := migrations.Load("oracle")
	assert.Error(t, err)
}

func TestDialectForDriver(t *testing.T) {
	tests := []struct {
		driver  string
		want    string
		wantErr bool
	}{
		{driver: "sqlite", want: migrations.DialectSQLite},
		{driver: "sqlite3", want: migrations.DialectSQLite},
		{driver: "pgx", want: migrations.DialectPostgres},
		{driver: "postgres", want: migrations.DialectPostgres},
		{driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := migrations.DialectForDriver(tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUp_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := repositories.Open(ctx, repositories.DriverSQLite, repositories.SQLiteDSN(":memory:"), 1, 1)
	require.NoError(t, err)
	defer db.Close()

	applied, err := migrations.Up(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	applied, err = migrations.Up(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 0, applied, "second run must be a no-op")

	versions, err := migrations.Applied(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true}, versions)

	var tables []string
	err = db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"game_saves", "schema_migrations", "upgrades", "user_upgrades", "users"}, tables)

	var upgrades int
	require.NoError(t, db.Get(&upgrades, "SELECT COUNT(*) FROM upgrades"))
	assert.Equal(t, 3, upgrades)
}
