package repository

import (
	"strconv"
	"strings"

	"hoteldesk/internal/models"
)

// SalesLedger is the append-only record of completed stays. Records are never
// edited or removed once appended.
type SalesLedger struct {
	records []models.SalesRecord
}

// NewSalesLedger builds the ledger from a persisted snapshot.
func NewSalesLedger(snapshot []models.SalesRecord) *SalesLedger {
	return &SalesLedger{records: append([]models.SalesRecord(nil), snapshot...)}
}

// Append adds a record to the ledger.
func (l *SalesLedger) Append(record models.SalesRecord) {
	l.records = append(l.records, record)
}

// All returns every record in append order.
func (l *SalesLedger) All() []models.SalesRecord {
	return append([]models.SalesRecord(nil), l.records...)
}

// Len reports the number of records held.
func (l *SalesLedger) Len() int {
	return len(l.records)
}

// Filter returns records whose guest name, room type, room number or ISO
// check-out date contains the query, case-insensitively. An empty query
// matches everything.
func (l *SalesLedger) Filter(query string) []models.SalesRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return l.All()
	}

	var out []models.SalesRecord
	for _, r := range l.records {
		if strings.Contains(strings.ToLower(r.GuestName), query) ||
			strings.Contains(strings.ToLower(r.RoomType), query) ||
			strings.Contains(strconv.Itoa(r.RoomNumber), query) ||
			strings.Contains(r.CheckOutDate.Format(models.DateLayout), query) {
			out = append(out, r)
		}
	}
	return out
}

// Snapshot returns the persisted form of the ledger.
func (l *SalesLedger) Snapshot() []models.SalesRecord {
	return l.All()
}

// Total sums the amount paid across the given records.
func Total(records []models.SalesRecord) float64 {
	var sum float64
	for _, r := range records {
		sum += r.AmountPaid
	}
	return sum
}
