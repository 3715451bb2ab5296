package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"hoteldesk/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is the alternative persistence driver. It keeps the same
// full-rewrite contract as the JSON files: each Save replaces the table
// contents with the in-memory snapshot inside one transaction.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            username TEXT PRIMARY KEY COLLATE NOCASE,
            password TEXT NOT NULL,
            role TEXT NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT 1
        )`,
		`CREATE TABLE IF NOT EXISTS bookings (
            position INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL,
            guest_name TEXT NOT NULL,
            phone TEXT,
            check_in_date TEXT NOT NULL,
            check_out_date TEXT NOT NULL,
            room_type TEXT NOT NULL,
            room_rate REAL NOT NULL,
            room_number INTEGER NOT NULL,
            status TEXT NOT NULL DEFAULT 'booked',
            booked_by TEXT,
            checked_in_by TEXT,
            checked_out_by TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS sales_records (
            position INTEGER PRIMARY KEY AUTOINCREMENT,
            guest_name TEXT NOT NULL,
            room_number INTEGER NOT NULL,
            room_type TEXT NOT NULL,
            check_out_date TEXT NOT NULL,
            amount_paid REAL NOT NULL
        )`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) LoadAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, password, role, is_active FROM accounts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.Username, &a.Password, &a.Role, &a.IsActive); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (s *SQLiteStore) SaveAccounts(ctx context.Context, accounts []models.Account) error {
	return s.rewrite(ctx, "accounts", func(tx *sql.Tx) error {
		for _, a := range accounts {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO accounts (username, password, role, is_active) VALUES (?, ?, ?, ?)`,
				a.Username, a.Password, a.Role, a.IsActive)
			if err != nil {
				return fmt.Errorf("insert account: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadBookings(ctx context.Context) ([]models.Booking, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, guest_name, phone, check_in_date, check_out_date,
            room_type, room_rate, room_number, status, booked_by, checked_in_by, checked_out_by
        FROM bookings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var checkIn, checkOut string
		err := rows.Scan(&b.ID, &b.GuestName, &b.Phone, &checkIn, &checkOut,
			&b.Room.RoomType, &b.Room.RoomRate, &b.Room.RoomNumber,
			&b.Status, &b.BookedBy, &b.CheckedInBy, &b.CheckedOutBy)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		if b.CheckInDate, err = models.ParseDate(checkIn); err != nil {
			return nil, fmt.Errorf("booking %s: %w", b.ID, err)
		}
		if b.CheckOutDate, err = models.ParseDate(checkOut); err != nil {
			return nil, fmt.Errorf("booking %s: %w", b.ID, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *SQLiteStore) SaveBookings(ctx context.Context, bookings []models.Booking) error {
	return s.rewrite(ctx, "bookings", func(tx *sql.Tx) error {
		for _, b := range bookings {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO bookings (id, guest_name, phone, check_in_date, check_out_date,
                    room_type, room_rate, room_number, status, booked_by, checked_in_by, checked_out_by)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				b.ID, b.GuestName, b.Phone,
				b.CheckInDate.Format(models.DateLayout), b.CheckOutDate.Format(models.DateLayout),
				b.Room.RoomType, b.Room.RoomRate, b.Room.RoomNumber,
				b.Status, b.BookedBy, b.CheckedInBy, b.CheckedOutBy)
			if err != nil {
				return fmt.Errorf("insert booking: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadSalesRecords(ctx context.Context) ([]models.SalesRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT guest_name, room_number, room_type, check_out_date, amount_paid
        FROM sales_records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load sales records: %w", err)
	}
	defer rows.Close()

	var records []models.SalesRecord
	for rows.Next() {
		var r models.SalesRecord
		var checkOut string
		if err := rows.Scan(&r.GuestName, &r.RoomNumber, &r.RoomType, &checkOut, &r.AmountPaid); err != nil {
			return nil, fmt.Errorf("scan sales record: %w", err)
		}
		if r.CheckOutDate, err = models.ParseDate(checkOut); err != nil {
			return nil, fmt.Errorf("sales record for %s: %w", r.GuestName, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) SaveSalesRecords(ctx context.Context, records []models.SalesRecord) error {
	return s.rewrite(ctx, "sales_records", func(tx *sql.Tx) error {
		for _, r := range records {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO sales_records (guest_name, room_number, room_type, check_out_date, amount_paid)
                 VALUES (?, ?, ?, ?, ?)`,
				r.GuestName, r.RoomNumber, r.RoomType,
				r.CheckOutDate.Format(models.DateLayout), r.AmountPaid)
			if err != nil {
				return fmt.Errorf("insert sales record: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) rewrite(ctx context.Context, table string, insert func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return err
	}
	return tx.Commit()
}
