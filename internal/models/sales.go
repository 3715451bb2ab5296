package models

import (
	"encoding/json"
	"time"
)

// SalesRecord is the immutable revenue snapshot written once per check-out.
type SalesRecord struct {
	GuestName    string
	RoomNumber   int
	RoomType     string
	CheckOutDate time.Time
	AmountPaid   float64
}

type salesRecordJSON struct {
	GuestName    string   `json:"guestName"`
	RoomNumber   int      `json:"roomNumber"`
	RoomType     string   `json:"roomType"`
	CheckOutDate jsonDate `json:"checkOutDate"`
	AmountPaid   float64  `json:"amountPaid"`
}

func (r SalesRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(salesRecordJSON{
		GuestName:    r.GuestName,
		RoomNumber:   r.RoomNumber,
		RoomType:     r.RoomType,
		CheckOutDate: jsonDate(r.CheckOutDate),
		AmountPaid:   r.AmountPaid,
	})
}

func (r *SalesRecord) UnmarshalJSON(data []byte) error {
	var raw salesRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.GuestName = raw.GuestName
	r.RoomNumber = raw.RoomNumber
	r.RoomType = raw.RoomType
	r.CheckOutDate = time.Time(raw.CheckOutDate)
	r.AmountPaid = raw.AmountPaid
	return nil
}
