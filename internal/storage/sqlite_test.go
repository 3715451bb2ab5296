package storage

import (
	"context"
	"path/filepath"
	"testing"

	"hoteldesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "hoteldesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreEmptyOnFreshDatabase(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	accounts, err := store.LoadAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	bookings, err := store.LoadBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	accounts := []models.Account{
		{Username: "owner", Password: "pw", Role: models.RoleOwner, IsActive: true},
		{Username: "desk1", Password: "pw", Role: models.RoleStaff, IsActive: true},
	}
	bookings := []models.Booking{
		{
			ID:           "b-1",
			GuestName:    "Ana Cruz",
			Phone:        "0917",
			CheckInDate:  day("2024-01-10"),
			CheckOutDate: day("2024-01-13"),
			Room:         models.Room{RoomType: "Single", RoomRate: 2500, RoomNumber: 101},
			Status:       models.StatusBooked,
			BookedBy:     "desk1",
		},
		{
			ID:           "b-2",
			GuestName:    "Ben Reyes",
			CheckInDate:  day("2024-01-11"),
			CheckOutDate: day("2024-01-12"),
			Room:         models.Room{RoomType: "Double", RoomRate: 5000, RoomNumber: 201},
			Status:       models.StatusCheckedOut,
			BookedBy:     "owner",
			CheckedInBy:  "desk1",
			CheckedOutBy: "desk1",
		},
	}
	records := []models.SalesRecord{
		{GuestName: "Ben Reyes", RoomNumber: 201, RoomType: "Double", CheckOutDate: day("2024-01-12"), AmountPaid: 5000},
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
}

func TestSQLiteStoreSaveReplacesSnapshot(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	first := []models.Booking{
		{ID: "b-1", GuestName: "Ana", CheckInDate: day("2024-01-10"), CheckOutDate: day("2024-01-11"),
			Room: models.Room{RoomType: "Single", RoomRate: 2500, RoomNumber: 101}, Status: models.StatusBooked},
		{ID: "b-2", GuestName: "Ben", CheckInDate: day("2024-01-10"), CheckOutDate: day("2024-01-11"),
			Room: models.Room{RoomType: "Single", RoomRate: 2500, RoomNumber: 102}, Status: models.StatusBooked},
	}
	require.NoError(t, store.SaveBookings(ctx, first))
	require.NoError(t, store.SaveBookings(ctx, first[1:]))

	bookings, err := store.LoadBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b-2", bookings[0].ID)
}
