package service

import "hoteldesk/internal/models"

// Availability is recomputed on demand from the current booking set. The
// catalog holds tens of rooms, so a scan beats any incremental bookkeeping
// and cannot go stale.

// IsOccupied reports whether any non-checked-out booking references the room.
func IsOccupied(roomNumber int, bookings []*models.Booking) bool {
	for _, b := range bookings {
		if b.Room.RoomNumber == roomNumber && b.Active() {
			return true
		}
	}
	return false
}

// AvailableRooms returns the free catalog rooms of the given type, in catalog
// order.
func AvailableRooms(roomType string, catalog []models.Room, bookings []*models.Booking) []models.Room {
	var out []models.Room
	for _, room := range catalog {
		if room.RoomType == roomType && !IsOccupied(room.RoomNumber, bookings) {
			out = append(out, room)
		}
	}
	return out
}
