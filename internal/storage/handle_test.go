package storage_test

import (
	"path/filepath"
	"testing"

	"gudang/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_LazyOpenReturnsSameConnection(t *testing.T) {
	handle := storage.NewHandle(filepath.Join(t.TempDir(), "app.db"))
	defer handle.Close()

	db1, err := handle.DB()
	require.NoError(t, err)
	db2, err := handle.DB()
	require.NoError(t, err)

	assert.Same(t, db1, db2)
}

func TestHandle_CloseThenReopen(t *testing.T) {
	handle := storage.NewHandle(filepath.Join(t.TempDir(), "app.db"))

	db1, err := handle.DB()
	require.NoError(t, err)
	require.NoError(t, handle.Close())

	// A closed handle must come back with a fresh connection.
	db2, err := handle.DB()
	require.NoError(t, err)
	defer handle.Close()

	assert.NotSame(t, db1, db2)
	assert.NoError(t, db2.Exec("CREATE TABLE probe (id INTEGER)").Error)
}

func TestHandle_CloseWithoutOpenIsNoop(t *testing.T) {
	handle := storage.NewHandle(filepath.Join(t.TempDir(), "app.db"))
	assert.NoError(t, handle.Close())
}

func TestHandle_ForeignKeysEnabled(t *testing.T) {
	handle := storage.NewHandle(filepath.Join(t.TempDir(), "app.db"))
	defer handle.Close()

	db, err := handle.DB()
	require.NoError(t, err)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}
