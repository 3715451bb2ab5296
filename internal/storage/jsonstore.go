package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hoteldesk/internal/models"
)

const (
	accountsFile = "accounts.json"
	bookingsFile = "bookings.json"
	salesFile    = "salesreport.json"
)

// JSONStore persists each collection as one JSON array per file. Every save
// rewrites the whole file; the dataset is small enough that durability beats
// cleverness.
type JSONStore struct {
	dir string
}

// OpenJSONStore prepares the storage directory.
func OpenJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

func (s *JSONStore) Close() error { return nil }

// Files returns the store file paths that exist on disk, for backup.
func (s *JSONStore) Files() []string {
	var out []string
	for _, name := range []string{accountsFile, bookingsFile, salesFile} {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			out = append(out, path)
		}
	}
	return out
}

func (s *JSONStore) LoadAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.load(accountsFile, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *JSONStore) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	return s.save(accountsFile, accounts)
}

func (s *JSONStore) LoadBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.load(bookingsFile, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *JSONStore) SaveBookings(ctx context.Context, bookings []models.Booking) error {
	return s.save(bookingsFile, bookings)
}

func (s *JSONStore) LoadSalesRecords(ctx context.Context) ([]models.SalesRecord, error) {
	var records []models.SalesRecord
	if err := s.load(salesFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *JSONStore) SaveSalesRecords(ctx context.Context, records []models.SalesRecord) error {
	return s.save(salesFile, records)
}

// load decodes one array file. A missing file is an empty collection.
func (s *JSONStore) load(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// save rewrites the file through a temp file so a crash mid-write cannot
// truncate the previous snapshot.
func (s *JSONStore) save(name string, in interface{}) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
