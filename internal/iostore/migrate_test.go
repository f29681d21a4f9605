package iostore

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/gamesgap/gamesgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NoneBackend(t *testing.T) {
	err := Migrate(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrate_SQLite(t *testing.T) {
	// Create a temporary database file for testing
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")

	// Run migration to latest version (should go to version 2)
	err := Migrate(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	// Verify migration was successful by checking the database file exists
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// Run migration again (should be a no-op)
	err = Migrate(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	// Run migration to a specific version (version 1)
	err = Migrate(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)

	// Rollback to version 0
	err = Migrate(schema.SQLiteBackend, dbPath, 0)
	assert.NoError(t, err)

	// Migrate back up to version 2
	err = Migrate(schema.SQLiteBackend, dbPath, 2)
	assert.NoError(t, err)
}

func TestMigrate_SQLiteInMemory(t *testing.T) {
	// Test with in-memory database
	err := Migrate(schema.SQLiteBackend, ":memory:", -1)
	require.NoError(t, err)
}

// TestMigrationSetsPerBackend verifies each backend ships a complete
// migration set in its own dialect.
func TestMigrationSetsPerBackend(t *testing.T) {
	wantFiles := []string{
		"000001_create_analysis_runs.up.sql",
		"000001_create_analysis_runs.down.sql",
		"000002_create_sport_summaries.up.sql",
		"000002_create_sport_summaries.down.sql",
	}

	for _, backend := range []schema.DatabaseBackend{
		schema.SQLiteBackend,
		schema.MySQLBackend,
		schema.PostgreSQLBackend,
	} {
		t.Run(string(backend), func(t *testing.T) {
			dir := "migrations/" + string(backend)
			for _, name := range wantFiles {
				_, err := fs.Stat(migrationsFS, dir+"/"+name)
				assert.NoError(t, err, "missing %s for %s", name, backend)
			}
		})
	}
}

// TestMigrationDialects verifies the DDL uses each backend's own keywords
// rather than SQLite syntax everywhere.
func TestMigrationDialects(t *testing.T) {
	readUp := func(backend schema.DatabaseBackend) string {
		data, err := fs.ReadFile(migrationsFS, "migrations/"+string(backend)+"/000001_create_analysis_runs.up.sql")
		require.NoError(t, err)
		return string(data)
	}

	sqliteDDL := readUp(schema.SQLiteBackend)
	assert.Contains(t, sqliteDDL, "AUTOINCREMENT")

	mysqlDDL := readUp(schema.MySQLBackend)
	assert.Contains(t, mysqlDDL, "AUTO_INCREMENT")
	assert.NotContains(t, mysqlDDL, "AUTOINCREMENT")
	assert.Contains(t, mysqlDDL, "DATETIME(6)")

	pgDDL := readUp(schema.PostgreSQLBackend)
	assert.Contains(t, pgDDL, "BIGSERIAL")
	assert.NotContains(t, pgDDL, "AUTOINCREMENT")
	assert.Contains(t, pgDDL, "TIMESTAMPTZ")
}
