package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rocketshoes-cart/pkg/cache"
	"rocketshoes-cart/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseCartStore runs the read/write contract every CartStore must honour.
func exerciseCartStore(t *testing.T, store CartStore) {
	t.Helper()
	ctx := context.Background()
	key := "@RocketShoes:cart:" + uuid.NewString()

	_, err := store.Read(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Write(ctx, key, []byte(`[{"id":1,"amount":2}]`)))
	got, err := store.Read(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"amount":2}]`, string(got))

	require.NoError(t, store.Write(ctx, key, []byte(`[]`)))
	got, err = store.Read(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got), "second write replaces the blob")
}

func TestMemoryStore(t *testing.T) {
	exerciseCartStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	blob := []byte(`[]`)
	require.NoError(t, store.Write(ctx, "k", blob))
	blob[0] = 'x'

	got, err := store.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestSQLiteCartStore(t *testing.T) {
	db, err := database.OpenSQL("sqlite", filepath.Join(t.TempDir(), "cart.db"), true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = (&database.Database{SQL: db}).Close() })
	require.NoError(t, AutoMigrate(db))

	exerciseCartStore(t, NewSQLCartStore(db))
}

func TestPostgresCartStore(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("set TEST_POSTGRES_DSN to run postgres integration tests")
	}
	db, err := database.OpenSQL("postgres", dsn, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = (&database.Database{SQL: db}).Close() })
	require.NoError(t, AutoMigrate(db))

	exerciseCartStore(t, NewSQLCartStore(db))
}

func TestRedisCartStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}
	c, err := cache.NewRedisCache(context.Background(), addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	exerciseCartStore(t, NewRedisCartStore(c))
}
