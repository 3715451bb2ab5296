package domain

import (
	"context"

	"hoteldesk/internal/models"
)

// Store is the persistence boundary. Each Save fully rewrites the backing
// collection with the in-memory snapshot.
type Store interface {
	LoadAccounts(ctx context.Context) ([]models.Account, error)
	SaveAccounts(ctx context.Context, accounts []models.Account) error
	LoadBookings(ctx context.Context) ([]models.Booking, error)
	SaveBookings(ctx context.Context, bookings []models.Booking) error
	LoadSalesRecords(ctx context.Context) ([]models.SalesRecord, error)
	SaveSalesRecords(ctx context.Context, records []models.SalesRecord) error
	Close() error
}

// EventPublisher fans domain events out to in-process subscribers.
type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}
