//go:build unit

package repository_test

import (
	"errors"
	"testing"

	"parkspot/internal/domain/booking"
	"parkspot/internal/infra/localstore"
	"parkspot/internal/infra/repository"
	"parkspot/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore accepts reads but rejects every write.
type failingStore struct {
	inner localstore.Store
}

func (s *failingStore) Get(key string) ([]byte, bool) { return s.inner.Get(key) }
func (s *failingStore) Set(string, []byte) error      { return errors.New("disk full") }
func (s *failingStore) Remove(string) error           { return errors.New("disk full") }

func stored(id string, status booking.Status) *booking.Booking {
	b := builder.NewBookingBuilder()
	b.ID = id
	b.Status = status
	return b.BuildStored()
}

func TestBookingStore_Add(t *testing.T) {
	t.Run("add is idempotent on id", func(t *testing.T) {
		store := repository.NewBookingStore(localstore.NewMemoryStore())

		first := stored("booking-1", booking.StatusConfirmed)
		duplicate := stored("booking-1", booking.StatusCancelled)

		store.Add(first)
		store.Add(duplicate)

		require.Equal(t, 1, store.Len())
		got, ok := store.FindByID("booking-1")
		require.True(t, ok)
		assert.Equal(t, booking.StatusConfirmed, got.Status())
	})

	t.Run("stores a copy, not the caller's pointer", func(t *testing.T) {
		store := repository.NewBookingStore(localstore.NewMemoryStore())

		b := stored("booking-1", booking.StatusConfirmed)
		store.Add(b)
		require.NoError(t, b.Cancel())

		got, ok := store.FindByID("booking-1")
		require.True(t, ok)
		assert.Equal(t, booking.StatusConfirmed, got.Status())
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		store := repository.NewBookingStore(localstore.NewMemoryStore())

		store.Add(stored("booking-1", booking.StatusActive))
		store.Add(stored("booking-2", booking.StatusConfirmed))
		store.Add(stored("booking-3", booking.StatusPending))

		list := store.List()
		require.Len(t, list, 3)
		assert.Equal(t, "booking-1", list[0].ID())
		assert.Equal(t, "booking-2", list[1].ID())
		assert.Equal(t, "booking-3", list[2].ID())
	})
}

func TestBookingStore_Update(t *testing.T) {
	t.Run("cancellation flips status in place", func(t *testing.T) {
		store := repository.NewBookingStore(localstore.NewMemoryStore())
		store.Add(stored("booking-1", booking.StatusActive))

		store.Update("booking-1", func(b *booking.Booking) {
			require.NoError(t, b.Cancel())
		})

		got, ok := store.FindByID("booking-1")
		require.True(t, ok)
		assert.Equal(t, booking.StatusCancelled, got.Status())
		assert.Equal(t, 1, store.Len(), "cancellation must not remove the record")
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		store := repository.NewBookingStore(localstore.NewMemoryStore())
		store.Add(stored("booking-1", booking.StatusActive))

		store.Update("booking-absent", func(b *booking.Booking) {
			t.Fatal("transform must not run for a missing id")
		})

		assert.Equal(t, 1, store.Len())
	})
}

func TestBookingStore_Persistence(t *testing.T) {
	t.Run("round trip through the backing store", func(t *testing.T) {
		kv := localstore.NewMemoryStore()

		first := repository.NewBookingStore(kv)
		first.Add(stored("booking-1", booking.StatusActive))
		first.Add(stored("booking-2", booking.StatusCancelled))

		reloaded := repository.NewBookingStore(kv)
		list := reloaded.List()
		require.Len(t, list, 2)
		assert.Equal(t, "booking-1", list[0].ID())
		assert.Equal(t, booking.StatusActive, list[0].Status())
		assert.Equal(t, "booking-2", list[1].ID())
		assert.Equal(t, booking.StatusCancelled, list[1].Status())
	})

	t.Run("malformed persisted value loads as empty", func(t *testing.T) {
		kv := localstore.NewMemoryStore()
		require.NoError(t, kv.Set(repository.StorageKey, []byte("{broken")))

		store := repository.NewBookingStore(kv)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("write failure keeps memory authoritative", func(t *testing.T) {
		store := repository.NewBookingStore(&failingStore{inner: localstore.NewMemoryStore()})

		store.Add(stored("booking-1", booking.StatusActive))
		store.Update("booking-1", func(b *booking.Booking) {
			require.NoError(t, b.Cancel())
		})

		got, ok := store.FindByID("booking-1")
		require.True(t, ok)
		assert.Equal(t, booking.StatusCancelled, got.Status())
	})
}

func TestBookingStore_ListByUser(t *testing.T) {
	store := repository.NewBookingStore(localstore.NewMemoryStore())

	mine := builder.NewBookingBuilder()
	mine.ID = "booking-1"
	mine.UserID = "user-a"
	store.Add(mine.BuildStored())

	other := builder.NewBookingBuilder()
	other.ID = "booking-2"
	other.UserID = "user-b"
	store.Add(other.BuildStored())

	got := store.ListByUser("user-a")
	require.Len(t, got, 1)
	assert.Equal(t, "booking-1", got[0].ID())
}

func TestRecordRoundTrip(t *testing.T) {
	entity := builder.NewBookingBuilder().BuildStored()

	original := repository.ToRecord(entity)
	back := repository.ToRecord(repository.FromRecord(original))

	if diff := cmp.Diff(original, back); diff != "" {
		t.Errorf("record changed across reconstruction (-want +got):\n%s", diff)
	}
}
