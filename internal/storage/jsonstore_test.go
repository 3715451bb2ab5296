package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hoteldesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestJSONStoreEmptyOnFreshDir(t *testing.T) {
	store, err := OpenJSONStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	accounts, err := store.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	bookings, err := store.LoadBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	records, err := store.LoadSalesRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, store.Files())
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store, err := OpenJSONStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	accounts := []models.Account{
		{Username: "owner", Password: "pw", Role: models.RoleOwner, IsActive: true},
		{Username: "desk1", Password: "pw", Role: models.RoleStaff, IsActive: false},
	}
	bookings := []models.Booking{
		{
			ID:           "b-1",
			GuestName:    "Ana Cruz",
			Phone:        "0917",
			CheckInDate:  day("2024-01-10"),
			CheckOutDate: day("2024-01-13"),
			Room:         models.Room{RoomType: "Single", RoomRate: 2500, RoomNumber: 101},
			Status:       models.StatusCheckedIn,
			BookedBy:     "desk1",
			CheckedInBy:  "desk1",
		},
	}
	records := []models.SalesRecord{
		{GuestName: "Ben", RoomNumber: 201, RoomType: "Double", CheckOutDate: day("2024-01-12"), AmountPaid: 10000},
	}

	require.NoError(t, store.SaveAccounts(ctx, accounts))
	require.NoError(t, store.SaveBookings(ctx, bookings))
	require.NoError(t, store.SaveSalesRecords(ctx, records))

	gotAccounts, err := store.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, accounts, gotAccounts)

	gotBookings, err := store.LoadBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, bookings, gotBookings)

	gotRecords, err := store.LoadSalesRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, gotRecords)

	assert.Len(t, store.Files(), 3)
}

func TestJSONStoreSaveOverwrites(t *testing.T) {
	store, err := OpenJSONStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.SaveAccounts(ctx, []models.Account{
		{Username: "a", Role: models.RoleStaff, IsActive: true},
		{Username: "b", Role: models.RoleStaff, IsActive: true},
	}))
	require.NoError(t, store.SaveAccounts(ctx, []models.Account{
		{Username: "a", Role: models.RoleStaff, IsActive: true},
	}))

	accounts, err := store.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestJSONStoreReadsLegacyFiles(t *testing.T) {
	dir := t.TempDir()
	legacy := `[
      {
        "name": "Old Guest",
        "phoneNumber": "555",
        "checkInDate": "2024-01-10T00:00:00",
        "checkOutDate": "2024-01-12T00:00:00",
        "roomType": {"roomType": "Suite", "roomRate": 8000, "roomNumber": 301},
        "roomNumber": 301,
        "isCheckedIn": false,
        "isCheckedOut": true,
        "bookedBy": "owner",
        "checkedInBy": "",
        "checkedOutBy": "owner"
      }
    ]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bookings.json"), []byte(legacy), 0o644))

	store, err := OpenJSONStore(dir)
	require.NoError(t, err)
	defer store.Close()

	bookings, err := store.LoadBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.StatusCheckedOut, bookings[0].Status)
	assert.Equal(t, day("2024-01-10"), bookings[0].CheckInDate)
	assert.Equal(t, 8000.0, bookings[0].Room.RoomRate)
}

func TestJSONStoreRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts.json"), []byte("{not json"), 0o644))

	store, err := OpenJSONStore(dir)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.LoadAccounts(context.Background())
	assert.Error(t, err)
}
