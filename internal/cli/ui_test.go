package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"hoteldesk/internal/models"
	"hoteldesk/internal/repository"
	"hoteldesk/internal/service"
	"hoteldesk/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	ui       *UI
	bookings *service.BookingService
	out      *bytes.Buffer
}

// newHarness wires the real services over a throwaway store and feeds the UI
// a scripted operator session.
func newHarness(t *testing.T, script []string) *harness {
	t.Helper()

	store, err := storage.OpenJSONStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := zerolog.Nop()
	accounts := service.NewAccountService(nil, store, nil, &logger)
	require.NoError(t, accounts.EnsureOwner(context.Background()))

	repo := repository.NewBookings(nil)
	ledger := repository.NewSalesLedger(nil)
	bookings := service.NewBookingService(repo, ledger, store, nil, models.DefaultCatalog(), &logger)
	sales := service.NewSalesService(ledger, &logger)

	out := &bytes.Buffer{}
	in := bufio.NewReader(strings.NewReader(strings.Join(script, "\n") + "\n"))
	ui := NewUI(bookings, sales, accounts, t.TempDir(), in, out, &logger)

	return &harness{ui: ui, bookings: bookings, out: out}
}

func TestOwnerBooksAndChecksOutGuest(t *testing.T) {
	h := newHarness(t, []string{
		"1",                // log in
		"owner", "119964",  // owner credentials
		"3",                // staff menu
		"1",                // book a room
		"Ana Cruz", "0917", // guest details
		"2024-01-10", "2024-01-13",
		"1", "1", // Single, room 101
		"3",  // check-in
		"1",  // first booking
		"4",  // check-out
		"1",  // first guest
		"",   // keep the check-out date
		"0",  // back to owner menu
		"4",  // view sales reports
		"",   // blank search, all records
		"0",  // log out
		"0",  // quit
	})

	require.NoError(t, h.ui.Run(context.Background()))

	output := h.out.String()
	assert.Contains(t, output, "Room booked successfully.")
	assert.Contains(t, output, "Ana Cruz has been checked in.")
	assert.Contains(t, output, "=== Check-Out Summary ===")
	assert.Contains(t, output, "Total income: 7500.00")

	all := h.bookings.All()
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusCheckedOut, all[0].Status)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	h := newHarness(t, []string{
		"1",
		"owner", "wrong",
		"0",
	})

	require.NoError(t, h.ui.Run(context.Background()))
	assert.Contains(t, h.out.String(), errorMessage(service.ErrInvalidCredentials))
}

func TestOwnerCreatesStaffAccountAndStaffLogsIn(t *testing.T) {
	h := newHarness(t, []string{
		"1",
		"owner", "119964",
		"1", // create staff account
		"desk1", "secret",
		"0", // log out
		"1",
		"desk1", "secret",
		"0", // back from staff menu
		"0", // quit
	})

	require.NoError(t, h.ui.Run(context.Background()))

	output := h.out.String()
	assert.Contains(t, output, "Desk staff account created.")
	assert.Contains(t, output, "=== BOOKING MENU (desk1) ===")
}

func TestBookRoomRejectsBadDateOrder(t *testing.T) {
	h := newHarness(t, []string{
		"1",
		"owner", "119964",
		"3",
		"1",
		"Ben Reyes", "555",
		"2024-01-13", "2024-01-10",
		"0",
		"0",
		"0",
	})

	require.NoError(t, h.ui.Run(context.Background()))

	assert.Contains(t, h.out.String(), errorMessage(service.ErrInvalidDateRange))
	assert.Empty(t, h.bookings.All())
}
