package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsTableExists(t *testing.T, d *sql.DB) {
	t.Helper()
	var tableName string
	err := d.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='items'").Scan(&tableName)
	require.NoError(t, err)
	assert.Equal(t, "items", tableName)
}

func TestOpen(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "shoptime.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	itemsTableExists(t, d)
}

func TestOpenTwiceIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoptime.db")

	first, err := Open(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO items (name, price) VALUES ('Scarf', '20.00')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, second.Close()) })

	var count int
	require.NoError(t, second.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpenForTesting_Isolated(t *testing.T) {
	a, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, a.Close()) })

	b, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, b.Close()) })

	itemsTableExists(t, a)
	itemsTableExists(t, b)

	_, err = a.Exec(`INSERT INTO items (name, price) VALUES ('Rug', '120.00')`)
	require.NoError(t, err)

	var count int
	require.NoError(t, b.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
	assert.Zero(t, count)
}

func TestSchemaRejectsNegativePrice(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	_, err = d.Exec(`INSERT INTO items (name, price) VALUES ('Scarf', '-1.00')`)
	assert.Error(t, err)
}

func TestSchemaRejectsEmptyName(t *testing.T) {
	d, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, d.Close()) })

	_, err = d.Exec(`INSERT INTO items (name, price) VALUES ('', '1.00')`)
	assert.Error(t, err)
}
