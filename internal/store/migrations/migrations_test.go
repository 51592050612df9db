package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/nexuslink/nlink/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 3)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
	require.Equal(t, "components", all[0].Description)
}

func TestRunIdempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, migrations.Run(db))
	v1, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))
	v2, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.Equal(t, v1, v2)

	pending, err := migrations.Pending(db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestRunSeedsCatalog(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM components WHERE name = 'logger'").Scan(&n))
	require.Equal(t, 2, n)
}

func TestPendingOnFreshDatabase(t *testing.T) {
	db := openMemory(t)

	pending, err := migrations.Pending(db)
	require.NoError(t, err)

	all, err := migrations.Load()
	require.NoError(t, err)
	require.Len(t, pending, len(all))
}
