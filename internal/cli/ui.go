package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"hoteldesk/internal/export"
	"hoteldesk/internal/models"
	"hoteldesk/internal/service"

	"github.com/rs/zerolog"
)

// UI drives the front desk from a line-oriented terminal: numbered menus,
// one prompt per field. It is the only caller of the service layer.
type UI struct {
	bookings   *service.BookingService
	sales      *service.SalesService
	accounts   *service.AccountService
	exportPath string
	in         *bufio.Reader
	out        io.Writer
	logger     *zerolog.Logger

	operator *models.Account
}

func NewUI(bookings *service.BookingService, sales *service.SalesService, accounts *service.AccountService, exportPath string, in *bufio.Reader, out io.Writer, logger *zerolog.Logger) *UI {
	return &UI{
		bookings:   bookings,
		sales:      sales,
		accounts:   accounts,
		exportPath: exportPath,
		in:         in,
		out:        out,
		logger:     logger,
	}
}

// Run loops login sessions until the operator quits or input ends.
func (ui *UI) Run(ctx context.Context) error {
	fmt.Fprintln(ui.out, "=== HOTEL MANAGEMENT SYSTEM ===")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintln(ui.out, "\n1) Log in")
		fmt.Fprintln(ui.out, "0) Quit")
		switch ui.choose() {
		case 1:
			if err := ui.login(ctx); err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		default:
			return nil
		}
	}
}

func (ui *UI) login(ctx context.Context) error {
	username, err := ui.prompt("Username")
	if err != nil {
		return err
	}
	password, err := ui.prompt("Password")
	if err != nil {
		return err
	}

	account, authErr := ui.accounts.Authenticate(username, password)
	if authErr != nil {
		fmt.Fprintln(ui.out, errorMessage(authErr))
		return nil
	}

	ui.operator = account
	ui.logger.Info().Str("username", account.Username).Str("role", account.Role).Msg("operator logged in")

	if account.IsOwner() {
		return ui.ownerMenu(ctx)
	}
	return ui.staffMenu(ctx)
}

func (ui *UI) ownerMenu(ctx context.Context) error {
	for {
		fmt.Fprintf(ui.out, "\n=== OWNER MENU (%s) ===\n", ui.operator.Username)
		fmt.Fprintln(ui.out, "1) Create desk staff account")
		fmt.Fprintln(ui.out, "2) Manage accounts")
		fmt.Fprintln(ui.out, "3) Manage bookings (staff menu)")
		fmt.Fprintln(ui.out, "4) View sales reports")
		fmt.Fprintln(ui.out, "5) Export sales report to Excel")
		fmt.Fprintln(ui.out, "0) Log out")

		switch ui.choose() {
		case 1:
			ui.createStaffAccount(ctx)
		case 2:
			ui.manageAccounts(ctx)
		case 3:
			if err := ui.staffMenu(ctx); err != nil {
				return err
			}
		case 4:
			ui.viewSalesReports()
		case 5:
			ui.exportSales()
		default:
			ui.operator = nil
			return nil
		}
	}
}

func (ui *UI) staffMenu(ctx context.Context) error {
	for {
		fmt.Fprintf(ui.out, "\n=== BOOKING MENU (%s) ===\n", ui.operator.Username)
		fmt.Fprintln(ui.out, "1) Book a room")
		fmt.Fprintln(ui.out, "2) Edit / cancel booking")
		fmt.Fprintln(ui.out, "3) Check-in guest")
		fmt.Fprintln(ui.out, "4) Check-out guest")
		fmt.Fprintln(ui.out, "5) View all bookings")
		fmt.Fprintln(ui.out, "6) Reset my password")
		fmt.Fprintln(ui.out, "0) Back")

		switch ui.choose() {
		case 1:
			ui.bookRoom(ctx)
		case 2:
			ui.editOrCancelBooking(ctx)
		case 3:
			ui.checkIn(ctx)
		case 4:
			ui.checkOut(ctx)
		case 5:
			ui.viewAllBookings()
		case 6:
			ui.resetOwnPassword(ctx)
		default:
			if !ui.operator.IsOwner() {
				ui.operator = nil
			}
			return nil
		}
	}
}

func (ui *UI) bookRoom(ctx context.Context) {
	name, err := ui.prompt("Guest name")
	if err != nil {
		return
	}
	phone, err := ui.prompt("Phone number")
	if err != nil {
		return
	}
	checkIn, ok := ui.promptDate("Check-in date (yyyy-mm-dd)")
	if !ok {
		return
	}
	checkOut, ok := ui.promptDate("Check-out date (yyyy-mm-dd)")
	if !ok {
		return
	}
	if !checkOut.After(checkIn) {
		fmt.Fprintln(ui.out, errorMessage(service.ErrInvalidDateRange))
		return
	}

	roomType, ok := ui.selectRoomType()
	if !ok {
		return
	}

	available := ui.bookings.AvailableRooms(roomType)
	if len(available) == 0 {
		fmt.Fprintf(ui.out, "No available %s rooms.\n", roomType)
		return
	}

	fmt.Fprintf(ui.out, "Available %s rooms:\n", roomType)
	for i, room := range available {
		fmt.Fprintf(ui.out, "%d) Room %d - %.2f/night\n", i+1, room.RoomNumber, room.RoomRate)
	}
	fmt.Fprintln(ui.out, "0) Cancel")
	choice := ui.choose()
	if choice < 1 || choice > len(available) {
		return
	}

	booking, err := ui.bookings.Create(ctx, name, phone, checkIn, checkOut, available[choice-1].RoomNumber, ui.operator.Username)
	if err != nil {
		fmt.Fprintln(ui.out, errorMessage(err))
		return
	}

	fmt.Fprintln(ui.out, "Room booked successfully.")
	ui.printBooking(booking)
}

func (ui *UI) editOrCancelBooking(ctx context.Context) {
	booking, ok := ui.selectBooking(ui.bookings.All(), "Select booking to modify")
	if !ok {
		return
	}

	fmt.Fprintln(ui.out, "\n1) Edit information")
	fmt.Fprintln(ui.out, "2) Change room")
	fmt.Fprintln(ui.out, "3) Delete booking")
	fmt.Fprintln(ui.out, "0) Cancel")

	switch ui.choose() {
	case 1:
		ui.editBookingInfo(ctx, booking)
	case 2:
		ui.changeBookingRoom(ctx, booking)
	case 3:
		confirm, err := ui.prompt("Delete this booking? (y/n)")
		if err != nil || strings.ToLower(strings.TrimSpace(confirm)) != "y" {
			fmt.Fprintln(ui.out, "Action canceled.")
			return
		}
		if err := ui.bookings.Delete(ctx, booking.ID, ui.operator.Username); err != nil {
			fmt.Fprintln(ui.out, errorMessage(err))
			return
		}
		fmt.Fprintln(ui.out, "Booking deleted.")
	}
}

// editBookingInfo prompts per field; empty input keeps the old value.
func (ui *UI) editBookingInfo(ctx context.Context, booking *models.Booking) {
	var fields service.EditFields

	if v, err := ui.prompt(fmt.Sprintf("Name (%s)", booking.GuestName)); err == nil && strings.TrimSpace(v) != "" {
		name := strings.TrimSpace(v)
		fields.GuestName = &name
	}
	if v, err := ui.prompt(fmt.Sprintf("Phone (%s)", booking.Phone)); err == nil && strings.TrimSpace(v) != "" {
		phone := strings.TrimSpace(v)
		fields.Phone = &phone
	}
	if v, err := ui.prompt(fmt.Sprintf("Check-in (%s)", booking.CheckInDate.Format(models.DateLayout))); err == nil && strings.TrimSpace(v) != "" {
		if t, err := models.ParseDate(strings.TrimSpace(v)); err == nil {
			fields.CheckInDate = &t
		} else {
			fmt.Fprintln(ui.out, "Invalid date, check-in kept.")
		}
	}
	if v, err := ui.prompt(fmt.Sprintf("Check-out (%s)", booking.CheckOutDate.Format(models.DateLayout))); err == nil && strings.TrimSpace(v) != "" {
		if t, err := models.ParseDate(strings.TrimSpace(v)); err == nil {
			fields.CheckOutDate = &t
		} else {
			fmt.Fprintln(ui.out, "Invalid date, check-out kept.")
		}
	}

	if err := ui.bookings.EditDetails(ctx, booking.ID, fields, ui.operator.Username); err != nil {
		fmt.Fprintln(ui.out, errorMessage(err))
		return
	}
	fmt.Fprintln(ui.out, "Booking updated.")
}

func (ui *UI) changeBookingRoom(ctx context.Context, booking *models.Booking) {
	available := ui.bookings.AvailableRooms(booking.Room.RoomType)
	if len(available) == 0 {
		fmt.Fprintln(ui.out, "No other available rooms of the same type.")
		return
	}

	fmt.Fprintln(ui.out, "Available rooms of the same type:")
	for i, room := range available {
		fmt.Fprintf(ui.out, "%d) Room %d - %.2f/night\n", i+1, room.RoomNumber, room.RoomRate)
	}
	fmt.Fprintln(ui.out, "0) Cancel")
	choice := ui.choose()
	if choice < 1 || choice > len(available) {
		return
	}

	if err := ui.bookings.ChangeRoom(ctx, booking.ID, available[choice-1].RoomNumber, ui.operator.Username); err != nil {
		fmt.Fprintln(ui.out, errorMessage(err))
		return
	}
	fmt.Fprintln(ui.out, "Room changed.")
}

func (ui *UI) checkIn(ctx context.Context) {
	booking, ok := ui.selectBooking(ui.bookings.AwaitingCheckIn(), "Select guest to check in")
	if !ok {
		fmt.Fprintln(ui.out, "No bookings available for check-in.")
		return
	}

	if err := ui.bookings.CheckIn(ctx, booking.ID, ui.operator.Username); err != nil {
		fmt.Fprintln(ui.out, errorMessage(err))
		return
	}
	fmt.Fprintf(ui.out, "%s has been checked in.\n", booking.GuestName)
}

func (ui *UI) checkOut(ctx context.Context) {
	booking, ok := ui.selectBooking(ui.bookings.InHouse(), "Select guest to check out")
	if !ok {
		fmt.Fprintln(ui.out, "No guests available for check-out.")
		return
	}

	var newCheckOut *time.Time
	v, err := ui.prompt(fmt.Sprintf("New check-out date (current %s, enter to keep)", booking.CheckOutDate.Format(models.DateLayout)))
	if err == nil && strings.TrimSpace(v) != "" {
		t, parseErr := models.ParseDate(strings.TrimSpace(v))
		if parseErr != nil {
			fmt.Fprintln(ui.out, "Invalid date. Check-out canceled.")
			return
		}
		newCheckOut = &t
	}

	record, err := ui.bookings.CheckOut(ctx, booking.ID, ui.operator.Username, newCheckOut)
	if err != nil {
		fmt.Fprintln(ui.out, errorMessage(err))
		return
	}

	fmt.Fprintln(ui.out, "\n=== Check-Out Summary ===")
	fmt.Fprintf(ui.out, "Guest: %s\n", record.GuestName)
	fmt.Fprintf(ui.out, "Room: %s (%d)\n", record.RoomType, record.RoomNumber)
	fmt.Fprintf(ui.out, "Stay duration: %d night(s)\n", booking.StayDuration())
	fmt.Fprintf(ui.out, "Total amount: %.2f\n", record.AmountPaid)
	fmt.Fprintln(ui.out, "Payment received. Thank you!")
}

func (ui *UI) viewAllBookings() {
	booking, ok := ui.selectBooking(ui.bookings.All(), "All bookings")
	if !ok {
		fmt.Fprintln(ui.out, "No bookings found.")
		return
	}
	ui.printBooking(booking)
}

func (ui *UI) viewSalesReports() {
	if ui.sales.Count() == 0 {
		fmt.Fprintln(ui.out, "No sales reports found.")
		return
	}

	query, err := ui.prompt("Search by guest, room type, room number or date (blank for all)")
	if err != nil {
		return
	}

	records := ui.sales.Search(query)
	if len(records) == 0 {
		fmt.Fprintln(ui.out, "No matching sales reports found.")
		return
	}

	fmt.Fprintf(ui.out, "\n%-20s %-10s %-15s %-15s %15s\n", "Guest Name", "Room", "Room Type", "Check-Out", "Amount Paid")
	fmt.Fprintln(ui.out, strings.Repeat("-", 80))
	for _, r := range records {
		fmt.Fprintf(ui.out, "%-20s %-10d %-15s %-15s %15.2f\n",
			r.GuestName, r.RoomNumber, r.RoomType, r.CheckOutDate.Format(models.DateLayout), r.AmountPaid)
	}
	fmt.Fprintln(ui.out, strings.Repeat("=", 80))
	fmt.Fprintf(ui.out, "Total income: %.2f\n", ui.sales.TotalIncome(records))
}

func (ui *UI) exportSales() {
	records := ui.sales.Search("")
	if len(records) == 0 {
		fmt.Fprintln(ui.out, "No sales reports to export.")
		return
	}

	path, err := export.SalesToExcel(ui.exportPath, records)
	if err != nil {
		ui.logger.Error().Err(err).Msg("sales export failed")
		fmt.Fprintln(ui.out, "Export failed. Check the log.")
		return
	}
	fmt.Fprintf(ui.out, "Sales report exported to %s\n", path)
}

func (ui *UI) createStaffAccount(ctx context.Context) {
	username, err := ui.prompt("New staff username")
	if err != nil {
		return
	}
	password, err := ui.prompt("New staff password")
	if err != nil {
		return
	}
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		fmt.Fprintln(ui.out, "Username and password must not be empty.")
		return
	}

	if err := ui.accounts.CreateStaff(ctx, strings.TrimSpace(username), password, ui.operator.Username); err != nil {
		fmt.Fprintln(ui.out, errorMessage(err))
		return
	}
	fmt.Fprintln(ui.out, "Desk staff account created.")
}

func (ui *UI) manageAccounts(ctx context.Context) {
	accounts := ui.accounts.All()
	if len(accounts) == 0 {
		fmt.Fprintln(ui.out, "No accounts found.")
		return
	}

	fmt.Fprintln(ui.out, "\nAccounts:")
	for i, a := range accounts {
		status := "active"
		if !a.IsActive {
			status = "deactivated"
		}
		fmt.Fprintf(ui.out, "%d) %s - %s (%s)\n", i+1, a.Username, a.Role, status)
	}
	fmt.Fprintln(ui.out, "0) Back")
	choice := ui.choose()
	if choice < 1 || choice > len(accounts) {
		return
	}
	selected := accounts[choice-1]

	fmt.Fprintf(ui.out, "\n1) Reset password for %s\n", selected.Username)
	if selected.IsActive {
		fmt.Fprintf(ui.out, "2) Deactivate account for %s\n", selected.Username)
	} else {
		fmt.Fprintf(ui.out, "2) Activate account for %s\n", selected.Username)
	}
	fmt.Fprintln(ui.out, "0) Back")

	switch ui.choose() {
	case 1:
		password, err := ui.prompt("New password")
		if err != nil || strings.TrimSpace(password) == "" {
			fmt.Fprintln(ui.out, "Password reset canceled.")
			return
		}
		if err := ui.accounts.ResetPassword(ctx, selected.Username, password); err != nil {
			fmt.Fprintln(ui.out, errorMessage(err))
			return
		}
		fmt.Fprintf(ui.out, "Password for %s has been reset.\n", selected.Username)
	case 2:
		confirm, err := ui.prompt(fmt.Sprintf("Change status of %s? (y/n)", selected.Username))
		if err != nil || strings.ToLower(strings.TrimSpace(confirm)) != "y" {
			fmt.Fprintln(ui.out, "Action canceled.")
			return
		}
		if err := ui.accounts.SetActive(ctx, selected.Username, !selected.IsActive); err != nil {
			fmt.Fprintln(ui.out, errorMessage(err))
			return
		}
		fmt.Fprintf(ui.out, "Account %s updated.\n", selected.Username)
	}
}

func (ui *UI) resetOwnPassword(ctx context.Context) {
	password, err := ui.prompt("Enter new password")
	if err != nil || strings.TrimSpace(password) == "" {
		fmt.Fprintln(ui.out, "Password change canceled.")
		return
	}
	if err := ui.accounts.ResetPassword(ctx, ui.operator.Username, password); err != nil {
		fmt.Fprintln(ui.out, errorMessage(err))
		return
	}
	fmt.Fprintln(ui.out, "Your password has been reset.")
}

func (ui *UI) selectRoomType() (string, bool) {
	types := ui.bookings.RoomTypes()
	fmt.Fprintln(ui.out, "Select room type:")
	for i, t := range types {
		fmt.Fprintf(ui.out, "%d) %s\n", i+1, t)
	}
	fmt.Fprintln(ui.out, "0) Cancel")
	choice := ui.choose()
	if choice < 1 || choice > len(types) {
		return "", false
	}
	return types[choice-1], true
}

func (ui *UI) selectBooking(bookings []*models.Booking, title string) (*models.Booking, bool) {
	if len(bookings) == 0 {
		return nil, false
	}

	fmt.Fprintf(ui.out, "\n%s:\n", title)
	fmt.Fprintf(ui.out, "   %-20s  %-25s  %-15s\n", "Guest Name", "Room Info", "Status")
	fmt.Fprintln(ui.out, "   "+strings.Repeat("-", 60))
	for i, b := range bookings {
		fmt.Fprintf(ui.out, "%d) %s\n", i+1, b.Summary())
	}
	fmt.Fprintln(ui.out, "0) Cancel")
	choice := ui.choose()
	if choice < 1 || choice > len(bookings) {
		return nil, false
	}
	return bookings[choice-1], true
}

func (ui *UI) printBooking(b *models.Booking) {
	fmt.Fprintln(ui.out, "\n===== BOOKING DETAILS =====")
	fmt.Fprintf(ui.out, "Name: %s\n", b.GuestName)
	fmt.Fprintf(ui.out, "Phone number: %s\n", b.Phone)
	fmt.Fprintf(ui.out, "Check-in date: %s\n", b.CheckInDate.Format(models.DateLayout))
	fmt.Fprintf(ui.out, "Check-out date: %s\n", b.CheckOutDate.Format(models.DateLayout))
	fmt.Fprintf(ui.out, "Room number: %d\n", b.Room.RoomNumber)
	fmt.Fprintf(ui.out, "Room type: %s\n", b.Room.RoomType)
	fmt.Fprintf(ui.out, "Rate per night: %.2f\n", b.Room.RoomRate)
	fmt.Fprintf(ui.out, "Stay duration: %d nights\n", b.StayDuration())
	fmt.Fprintf(ui.out, "Total cost: %.2f\n", b.TotalCost())
	fmt.Fprintf(ui.out, "Booked by: %s\n", b.BookedBy)
	if b.CheckedInBy != "" {
		fmt.Fprintf(ui.out, "Checked in by: %s\n", b.CheckedInBy)
	}
	if b.CheckedOutBy != "" {
		fmt.Fprintf(ui.out, "Checked out by: %s\n", b.CheckedOutBy)
	}
	fmt.Fprintln(ui.out, "===========================")
}

func (ui *UI) prompt(label string) (string, error) {
	fmt.Fprintf(ui.out, "%s: ", label)
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (ui *UI) promptDate(label string) (time.Time, bool) {
	v, err := ui.prompt(label)
	if err != nil {
		return time.Time{}, false
	}
	t, err := models.ParseDate(strings.TrimSpace(v))
	if err != nil {
		fmt.Fprintln(ui.out, "Invalid date format.")
		return time.Time{}, false
	}
	return t, true
}

// choose reads a menu selection; anything unparsable counts as 0.
func (ui *UI) choose() int {
	line, err := ui.prompt(">")
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0
	}
	return n
}
