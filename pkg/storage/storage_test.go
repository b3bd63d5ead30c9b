package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func newDBStorageForTest(t *testing.T) ListStorage {
	t.Helper()
	bdb, err := bbolt.Open(filepath.Join(t.TempDir(), "storage.bolt"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, bdb.Close()) })
	return NewDBStorage(bdb, []byte("objects"))
}

func TestDBStorage_PutGetDel(t *testing.T) {
	ctx := context.Background()
	s := newDBStorageForTest(t)

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "a", []byte("hello")))
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)

	require.NoError(t, s.Del(ctx, "a"))
	_, err = s.Get(ctx, "a")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDBStorage_List(t *testing.T) {
	ctx := context.Background()
	s := newDBStorageForTest(t)
	require.NoError(t, s.Put(ctx, "a", []byte("1")))
	require.NoError(t, s.Put(ctx, "b", []byte("2")))

	seen := map[string][]byte{}
	require.NoError(t, s.List(ctx, func(id string, b []byte) error {
		seen[id] = append([]byte(nil), b...)
		return nil
	}))
	require.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, seen)
}

func TestCachedStorage_FillsCacheFromPermanent(t *testing.T) {
	ctx := context.Background()
	cache := newDBStorageForTest(t)
	permanent := newDBStorageForTest(t)

	require.NoError(t, permanent.Put(ctx, "a", []byte("payload")))

	cached, err := NewCachedStorage(cache, permanent, 1<<20)
	require.NoError(t, err)

	got, err := cached.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), got)

	// second read should be served from cache without error either way.
	got2, err := cached.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, got, got2)
}

func TestCachedStorage_PutThenDel(t *testing.T) {
	ctx := context.Background()
	cache := newDBStorageForTest(t)
	permanent := newDBStorageForTest(t)

	cached, err := NewCachedStorage(cache, permanent, 1<<20)
	require.NoError(t, err)

	require.NoError(t, cached.Put(ctx, "x", []byte("v")))
	got, err := cached.Get(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	require.NoError(t, cached.Del(ctx, "x"))
	_, err = permanent.Get(ctx, "x")
	require.ErrorIs(t, err, ErrNotFound)
}
