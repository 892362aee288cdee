//go:build unit

package localstore_test

import (
	"testing"

	"parkspot/internal/infra/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStore(t *testing.T) {
	store, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Set("user", []byte(`{"name":"demo"}`)))

		raw, ok := store.Get("user")
		require.True(t, ok)
		assert.Equal(t, `{"name":"demo"}`, string(raw))
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := store.Get("absent")
		assert.False(t, ok)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, store.Set("auth_token", []byte("tok")))
		require.NoError(t, store.Remove("auth_token"))
		require.NoError(t, store.Remove("auth_token"))

		_, ok := store.Get("auth_token")
		assert.False(t, ok)
	})
}

func TestMemoryStore(t *testing.T) {
	store := localstore.NewMemoryStore()

	t.Run("returned slices are copies", func(t *testing.T) {
		require.NoError(t, store.Set("k", []byte("abc")))

		raw, ok := store.Get("k")
		require.True(t, ok)
		raw[0] = 'x'

		again, ok := store.Get("k")
		require.True(t, ok)
		assert.Equal(t, "abc", string(again))
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("absent key yields default", func(t *testing.T) {
		store := localstore.NewMemoryStore()

		got := localstore.LoadOrDefault(store, "bookings", sample{Name: "fallback"})
		assert.Equal(t, "fallback", got.Name)
	})

	t.Run("malformed value yields default, not an error", func(t *testing.T) {
		store := localstore.NewMemoryStore()
		require.NoError(t, store.Set("bookings", []byte("{not json")))

		got := localstore.LoadOrDefault(store, "bookings", []sample{})
		assert.Empty(t, got)
	})

	t.Run("corrupt key does not affect other keys", func(t *testing.T) {
		store := localstore.NewMemoryStore()
		require.NoError(t, store.Set("user", []byte("garbage")))
		require.NoError(t, localstore.Save(store, "bookings", []sample{{Name: "kept", Count: 1}}))

		u := localstore.LoadOrDefault(store, "user", sample{})
		bs := localstore.LoadOrDefault(store, "bookings", []sample{})

		assert.Equal(t, sample{}, u)
		require.Len(t, bs, 1)
		assert.Equal(t, "kept", bs[0].Name)
	})

	t.Run("save then load", func(t *testing.T) {
		store := localstore.NewMemoryStore()
		require.NoError(t, localstore.Save(store, "k", sample{Name: "v", Count: 3}))

		got := localstore.LoadOrDefault(store, "k", sample{})
		assert.Equal(t, sample{Name: "v", Count: 3}, got)
	})
}
