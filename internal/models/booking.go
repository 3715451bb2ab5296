package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Booking tracks one guest reservation through its lifecycle. Status is the
// single source of truth in memory; the legacy two-flag encoding only exists
// in the store files.
type Booking struct {
	ID           string
	GuestName    string
	Phone        string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Room         Room
	Status       string
	BookedBy     string
	CheckedInBy  string
	CheckedOutBy string
}

// StayDuration returns the billable nights, never less than one.
func (b *Booking) StayDuration() int {
	nights := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// TotalCost is always recomputed from the current room rate.
func (b *Booking) TotalCost() float64 {
	return float64(b.StayDuration()) * b.Room.RoomRate
}

// Active reports whether the booking still occupies its room.
func (b *Booking) Active() bool {
	return b.Status != StatusCheckedOut
}

// Summary renders the one-line listing used by selection menus.
func (b *Booking) Summary() string {
	var status string
	switch b.Status {
	case StatusCheckedOut:
		status = "Checked-Out"
	case StatusCheckedIn:
		status = "Checked-In"
	default:
		status = "Booked"
	}
	roomInfo := fmt.Sprintf("Room %d (%s)", b.Room.RoomNumber, b.Room.RoomType)
	return fmt.Sprintf("%-20s  %-25s  %-15s", b.GuestName, roomInfo, status)
}

// bookingJSON is the persisted shape: the legacy file format keeps the two
// boolean status flags and duplicates the room number next to the room object.
type bookingJSON struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	PhoneNumber  string   `json:"phoneNumber"`
	CheckInDate  jsonDate `json:"checkInDate"`
	CheckOutDate jsonDate `json:"checkOutDate"`
	RoomType     Room     `json:"roomType"`
	RoomNumber   int      `json:"roomNumber"`
	IsCheckedIn  bool     `json:"isCheckedIn"`
	IsCheckedOut bool     `json:"isCheckedOut"`
	BookedBy     string   `json:"bookedBy"`
	CheckedInBy  string   `json:"checkedInBy"`
	CheckedOutBy string   `json:"checkedOutBy"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookingJSON{
		ID:           b.ID,
		Name:         b.GuestName,
		PhoneNumber:  b.Phone,
		CheckInDate:  jsonDate(b.CheckInDate),
		CheckOutDate: jsonDate(b.CheckOutDate),
		RoomType:     b.Room,
		RoomNumber:   b.Room.RoomNumber,
		IsCheckedIn:  b.Status == StatusCheckedIn || b.Status == StatusCheckedOut,
		IsCheckedOut: b.Status == StatusCheckedOut,
		BookedBy:     b.BookedBy,
		CheckedInBy:  b.CheckedInBy,
		CheckedOutBy: b.CheckedOutBy,
	})
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw bookingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = raw.ID
	b.GuestName = raw.Name
	b.Phone = raw.PhoneNumber
	b.CheckInDate = time.Time(raw.CheckInDate)
	b.CheckOutDate = time.Time(raw.CheckOutDate)
	b.Room = raw.RoomType
	if b.Room.RoomNumber == 0 {
		b.Room.RoomNumber = raw.RoomNumber
	}

	// A checked-out flag wins over the checked-in flag, so the file
	// combination {isCheckedIn:false, isCheckedOut:true} decodes to a
	// plain checked-out booking.
	switch {
	case raw.IsCheckedOut:
		b.Status = StatusCheckedOut
	case raw.IsCheckedIn:
		b.Status = StatusCheckedIn
	default:
		b.Status = StatusBooked
	}

	b.BookedBy = raw.BookedBy
	b.CheckedInBy = raw.CheckedInBy
	b.CheckedOutBy = raw.CheckedOutBy
	return nil
}

// jsonDate persists as yyyy-mm-dd but accepts RFC3339 timestamps written by
// older versions of the system.
type jsonDate time.Time

func (d jsonDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateLayout))
}

func (d *jsonDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = jsonDate(t)
	return nil
}

// ParseDate parses a calendar day in yyyy-mm-dd or RFC3339 form.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want yyyy-mm-dd", s)
}
