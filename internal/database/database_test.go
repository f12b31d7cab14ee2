package database

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "voyager.db")

	db, err := Open(Config{Path: path})
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"generation_log", "replan_log", "migrations"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
	}

	// reopening must not re-apply anything
	db.Close()
	db, err = Open(Config{Path: path})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoadMigrationsOrdersAndSkips(t *testing.T) {
	files := fstest.MapFS{
		"010_later.sql": {Data: []byte("SELECT 1;")},
		"002_early.sql": {Data: []byte("SELECT 2;")},
		"notes.txt":     {Data: []byte("ignore me")},
		"bad_name.sql":  {Data: []byte("SELECT 3;")},
	}

	got, err := NewMigrationManager(nil, files).LoadMigrations()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Version)
	assert.Equal(t, "002_early", got[0].Name)
	assert.Equal(t, 10, got[1].Version)
}
