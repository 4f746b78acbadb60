package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.db")

	db, err := OpenSQL("sqlite", path, true)
	require.NoError(t, err)

	wrapped := &Database{SQL: db}
	assert.NoError(t, wrapped.Close())
}

func TestOpenSQLUnknownDriver(t *testing.T) {
	_, err := OpenSQL("oracle", "whatever", true)
	assert.ErrorContains(t, err, "unsupported sql driver")
}
