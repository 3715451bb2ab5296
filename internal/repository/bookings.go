package repository

import (
	"errors"

	"hoteldesk/internal/models"
)

// ErrNotFound is returned when a referenced booking is not in the collection.
var ErrNotFound = errors.New("not found")

// Bookings is the in-memory booking collection. Insertion order is preserved
// for stable listings; the dataset is small enough that every lookup is a
// linear scan.
type Bookings struct {
	items []*models.Booking
}

// NewBookings builds the collection from a persisted snapshot.
func NewBookings(snapshot []models.Booking) *Bookings {
	repo := &Bookings{}
	for i := range snapshot {
		b := snapshot[i]
		repo.items = append(repo.items, &b)
	}
	return repo
}

// Add appends a booking.
func (r *Bookings) Add(b *models.Booking) {
	r.items = append(r.items, b)
}

// Remove deletes the booking with the given ID.
func (r *Bookings) Remove(id string) error {
	for i, b := range r.items {
		if b.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Find returns the booking with the given ID.
func (r *Bookings) Find(id string) (*models.Booking, error) {
	for _, b := range r.items {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrNotFound
}

// All returns the bookings in insertion order. The slice is a copy; the
// pointed-to bookings are live.
func (r *Bookings) All() []*models.Booking {
	return append([]*models.Booking(nil), r.items...)
}

// FindAll returns the bookings matching the predicate, in insertion order.
func (r *Bookings) FindAll(match func(*models.Booking) bool) []*models.Booking {
	var out []*models.Booking
	for _, b := range r.items {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}

// Len reports the number of bookings held.
func (r *Bookings) Len() int {
	return len(r.items)
}

// Snapshot copies the collection into the value form the store persists.
func (r *Bookings) Snapshot() []models.Booking {
	out := make([]models.Booking, 0, len(r.items))
	for _, b := range r.items {
		out = append(out, *b)
	}
	return out
}
