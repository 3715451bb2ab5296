package service

import (
	"hoteldesk/internal/models"
	"hoteldesk/internal/repository"

	"github.com/rs/zerolog"
)

// SalesService answers reporting queries over the append-only ledger. It
// never mutates records; only BookingService.CheckOut appends.
type SalesService struct {
	ledger *repository.SalesLedger
	logger *zerolog.Logger
}

func NewSalesService(ledger *repository.SalesLedger, logger *zerolog.Logger) *SalesService {
	return &SalesService{ledger: ledger, logger: logger}
}

// Search returns records matching the free-text query (guest name, room
// type, room number or ISO check-out date). Empty query returns everything.
func (s *SalesService) Search(query string) []models.SalesRecord {
	return s.ledger.Filter(query)
}

// TotalIncome sums the amount paid across the given records.
func (s *SalesService) TotalIncome(records []models.SalesRecord) float64 {
	return repository.Total(records)
}

// Count reports the total number of ledger records.
func (s *SalesService) Count() int {
	return s.ledger.Len()
}
