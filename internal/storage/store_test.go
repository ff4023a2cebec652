package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// roundTrip exercises the shared Store contract against an implementation.
func roundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "settings")
	require.True(t, IsNotFound(err))

	require.NoError(t, store.Set(ctx, "settings", []byte("v1")))
	data, err := store.Get(ctx, "settings")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), data)

	require.NoError(t, store.Set(ctx, "settings", []byte("v2")))
	data, err = store.Get(ctx, "settings")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), data)

	require.NoError(t, store.Delete(ctx, "settings"))
	_, err = store.Get(ctx, "settings")
	require.True(t, IsNotFound(err))

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "settings"))
}

func TestMemoryStore_Contract(t *testing.T) {
	store, err := NewMemoryStore(0)
	require.NoError(t, err)
	defer store.Close()

	roundTrip(t, store)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store, err := NewMemoryStore(0)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	first, err := store.Get(ctx, "k")
	require.NoError(t, err)
	first[0] = 'X'

	second, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), second)
}

func TestSQLiteStore_Contract(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	roundTrip(t, store)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "settings", []byte("warm")))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Get(ctx, "settings")
	require.NoError(t, err)
	require.Equal(t, []byte("warm"), data)
}

func TestMockStore_RecordsCallsAndInjectsFailures(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	roundTrip(t, store)
	calls := store.Calls()
	require.Equal(t, 4, calls.Get)
	require.Equal(t, 2, calls.Set)
	require.Equal(t, 2, calls.Delete)

	store.FailSet = errors.New("backend down")
	require.Error(t, store.Set(ctx, "k", nil))

	store.FailGet = errors.New("backend down")
	_, err := store.Get(ctx, "k")
	require.Error(t, err)
	require.False(t, IsNotFound(err))
}

func TestIsNotFound_OnlyMatchesSentinel(t *testing.T) {
	require.True(t, IsNotFound(ErrNotFound{Key: "k"}))
	require.False(t, IsNotFound(errors.New("other")))
	require.False(t, IsNotFound(nil))
}
