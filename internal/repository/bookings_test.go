package repository

import (
	"testing"
	"time"

	"hoteldesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBooking(id string, roomNumber int, status string) *models.Booking {
	return &models.Booking{
		ID:           id,
		GuestName:    "Guest " + id,
		CheckInDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		Room:         models.Room{RoomType: "Single", RoomRate: 2500, RoomNumber: roomNumber},
		Status:       status,
	}
}

func TestBookingsInsertionOrder(t *testing.T) {
	repo := NewBookings(nil)
	repo.Add(makeBooking("a", 101, models.StatusBooked))
	repo.Add(makeBooking("b", 102, models.StatusBooked))
	repo.Add(makeBooking("c", 103, models.StatusBooked))

	all := repo.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)

	require.NoError(t, repo.Remove("b"))
	all = repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[1].ID)
}

func TestBookingsFind(t *testing.T) {
	repo := NewBookings(nil)
	repo.Add(makeBooking("a", 101, models.StatusBooked))

	found, err := repo.Find("a")
	require.NoError(t, err)
	assert.Equal(t, "Guest a", found.GuestName)

	_, err = repo.Find("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Remove("missing"), ErrNotFound)
}

func TestBookingsFindAll(t *testing.T) {
	repo := NewBookings(nil)
	repo.Add(makeBooking("a", 101, models.StatusBooked))
	repo.Add(makeBooking("b", 102, models.StatusCheckedIn))
	repo.Add(makeBooking("c", 103, models.StatusCheckedOut))

	active := repo.FindAll(func(b *models.Booking) bool { return b.Active() })
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "b", active[1].ID)
}

func TestBookingsSnapshotRoundTrip(t *testing.T) {
	repo := NewBookings(nil)
	repo.Add(makeBooking("a", 101, models.StatusBooked))
	repo.Add(makeBooking("b", 102, models.StatusCheckedIn))

	snapshot := repo.Snapshot()
	require.Len(t, snapshot, 2)

	restored := NewBookings(snapshot)
	assert.Equal(t, 2, restored.Len())
	found, err := restored.Find("b")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedIn, found.Status)

	// Snapshot holds copies: mutating the repo does not touch it.
	live, err := repo.Find("a")
	require.NoError(t, err)
	live.GuestName = "changed"
	assert.Equal(t, "Guest a", snapshot[0].GuestName)
}
