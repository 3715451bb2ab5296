package service

import (
	"testing"

	"hoteldesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(roomNumber int, roomType, status string) *models.Booking {
	return &models.Booking{
		Room:   models.Room{RoomType: roomType, RoomRate: 2500, RoomNumber: roomNumber},
		Status: status,
	}
}

func TestIsOccupied(t *testing.T) {
	bookings := []*models.Booking{
		booking(101, "Single", models.StatusBooked),
		booking(102, "Single", models.StatusCheckedIn),
		booking(103, "Single", models.StatusCheckedOut),
	}

	assert.True(t, IsOccupied(101, bookings), "booked counts as occupied")
	assert.True(t, IsOccupied(102, bookings), "checked-in counts as occupied")
	assert.False(t, IsOccupied(103, bookings), "checked-out frees the room")
	assert.False(t, IsOccupied(104, bookings), "no booking at all")
	assert.False(t, IsOccupied(101, nil))
}

func TestAvailableRoomsKeepsCatalogOrder(t *testing.T) {
	catalog := models.DefaultCatalog()
	bookings := []*models.Booking{
		booking(102, "Single", models.StatusCheckedIn),
	}

	singles := AvailableRooms("Single", catalog, bookings)
	require.Len(t, singles, 2)
	assert.Equal(t, 101, singles[0].RoomNumber)
	assert.Equal(t, 103, singles[1].RoomNumber)

	// A checked-out booking releases its room back into the pool.
	bookings[0].Status = models.StatusCheckedOut
	singles = AvailableRooms("Single", catalog, bookings)
	assert.Len(t, singles, 3)

	assert.Empty(t, AvailableRooms("Penthouse", catalog, bookings))
}
