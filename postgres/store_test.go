package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/fwojciec/locmap/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore connects to the database named by LOCMAP_POSTGRES_DSN and
// skips the test if it is unset.
func openTestStore(t *testing.T) *postgres.Store {
	t.Helper()

	dsn := os.Getenv("LOCMAP_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("LOCMAP_POSTGRES_DSN not set")
	}

	db, err := postgres.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := postgres.NewStore(db)
	require.NoError(t, store.Flush(context.Background()))
	return store
}

// Tests share one table, so they run sequentially.
func TestStore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "main_0_abc", []byte(`["https://example.com/sitemap.xml"]`)))

		payload, ok, err := store.Get(ctx, "main_0_abc")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `["https://example.com/sitemap.xml"]`, string(payload))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "main_0_abc", []byte(`[]`)))

		payload, ok, err := store.Get(ctx, "main_0_abc")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[]`, string(payload))
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "main_0_abc"))

		has, err := store.Has(ctx, "main_0_abc")
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("flush", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "a", []byte("1")))
		require.NoError(t, store.Flush(ctx))

		_, ok, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMigrate_Idempotent(t *testing.T) {
	dsn := os.Getenv("LOCMAP_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("LOCMAP_POSTGRES_DSN not set")
	}

	db, err := postgres.Open(context.Background(), dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, postgres.Migrate(db))
}
