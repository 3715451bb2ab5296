package service

import (
	"context"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/events"
	"hoteldesk/internal/metrics"
	"hoteldesk/internal/models"
	"hoteldesk/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BookingService owns the booking lifecycle: every status transition passes
// through here, and every mutation is flushed to the store before returning.
type BookingService struct {
	repo     *repository.Bookings
	ledger   *repository.SalesLedger
	store    domain.Store
	eventBus domain.EventPublisher
	catalog  []models.Room
	logger   *zerolog.Logger
}

func NewBookingService(repo *repository.Bookings, ledger *repository.SalesLedger, store domain.Store, eventBus domain.EventPublisher, catalog []models.Room, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		repo:     repo,
		ledger:   ledger,
		store:    store,
		eventBus: eventBus,
		catalog:  catalog,
		logger:   logger,
	}
}

// EditFields carries the optional updates for EditDetails. Nil fields are
// left untouched.
type EditFields struct {
	GuestName    *string
	Phone        *string
	CheckInDate  *time.Time
	CheckOutDate *time.Time
}

// Create validates and stores a new booking with status booked.
func (s *BookingService) Create(ctx context.Context, guestName, phone string, checkIn, checkOut time.Time, roomNumber int, actor string) (*models.Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	room, ok := models.FindRoom(s.catalog, roomNumber)
	if !ok {
		return nil, ErrUnknownRoom
	}
	if IsOccupied(roomNumber, s.repo.All()) {
		return nil, ErrRoomUnavailable
	}

	booking := &models.Booking{
		ID:           uuid.NewString(),
		GuestName:    guestName,
		Phone:        phone,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Room:         room,
		Status:       models.StatusBooked,
		BookedBy:     actor,
	}

	s.repo.Add(booking)
	if err := s.saveBookings(ctx); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	s.publishEvent(events.EventBookingCreated, booking, actor, 0)
	return booking, nil
}

// CheckIn moves a booked guest into the room.
func (s *BookingService) CheckIn(ctx context.Context, id string, actor string) error {
	booking, err := s.find(id)
	if err != nil {
		return err
	}
	if booking.Status != models.StatusBooked {
		return ErrInvalidTransition
	}

	booking.Status = models.StatusCheckedIn
	booking.CheckedInBy = actor
	if err := s.saveBookings(ctx); err != nil {
		return err
	}

	metrics.IncCheckIn()
	s.publishEvent(events.EventBookingCheckedIn, booking, actor, 0)
	return nil
}

// CheckOut completes a stay. When newCheckOut is non-nil the stay is billed
// to that date instead of the booked one. The status transition and the
// sales record are one unit: all validation happens before the first
// mutation, so the caller never sees a half-finished check-out.
func (s *BookingService) CheckOut(ctx context.Context, id string, actor string, newCheckOut *time.Time) (models.SalesRecord, error) {
	booking, err := s.find(id)
	if err != nil {
		return models.SalesRecord{}, err
	}
	if booking.Status != models.StatusCheckedIn {
		return models.SalesRecord{}, ErrInvalidTransition
	}
	if newCheckOut != nil && !newCheckOut.After(booking.CheckInDate) {
		return models.SalesRecord{}, ErrInvalidDateRange
	}

	if newCheckOut != nil {
		booking.CheckOutDate = *newCheckOut
	}
	booking.Status = models.StatusCheckedOut
	booking.CheckedOutBy = actor

	record := models.SalesRecord{
		GuestName:    booking.GuestName,
		RoomNumber:   booking.Room.RoomNumber,
		RoomType:     booking.Room.RoomType,
		CheckOutDate: booking.CheckOutDate,
		AmountPaid:   booking.TotalCost(),
	}
	s.ledger.Append(record)

	if err := s.saveBookings(ctx); err != nil {
		return models.SalesRecord{}, err
	}
	if err := s.store.SaveSalesRecords(ctx, s.ledger.Snapshot()); err != nil {
		return models.SalesRecord{}, err
	}

	metrics.IncCheckOut(record.AmountPaid)
	s.publishEvent(events.EventBookingCheckedOut, booking, actor, record.AmountPaid)
	return record, nil
}

// EditDetails applies the supplied fields in a fixed order: name, phone,
// check-in, check-out. Each field is validated independently; a check-out
// date not after the (possibly just-updated) check-in is rejected while the
// already-applied fields stand.
func (s *BookingService) EditDetails(ctx context.Context, id string, fields EditFields, actor string) error {
	booking, err := s.find(id)
	if err != nil {
		return err
	}
	if booking.Status == models.StatusCheckedOut {
		return ErrInvalidTransition
	}

	if fields.GuestName != nil {
		booking.GuestName = *fields.GuestName
	}
	if fields.Phone != nil {
		booking.Phone = *fields.Phone
	}
	if fields.CheckInDate != nil {
		booking.CheckInDate = *fields.CheckInDate
	}

	var editErr error
	if fields.CheckOutDate != nil {
		if fields.CheckOutDate.After(booking.CheckInDate) {
			booking.CheckOutDate = *fields.CheckOutDate
		} else {
			editErr = ErrInvalidDateRange
		}
	}

	if err := s.saveBookings(ctx); err != nil {
		return err
	}

	s.publishEvent(events.EventBookingUpdated, booking, actor, 0)
	return editErr
}

// ChangeRoom moves the booking to another room of any type. The target must
// not be held by a different active booking.
func (s *BookingService) ChangeRoom(ctx context.Context, id string, newRoomNumber int, actor string) error {
	booking, err := s.find(id)
	if err != nil {
		return err
	}
	if booking.Status == models.StatusCheckedOut {
		return ErrInvalidTransition
	}

	room, ok := models.FindRoom(s.catalog, newRoomNumber)
	if !ok {
		return ErrUnknownRoom
	}

	others := s.repo.FindAll(func(b *models.Booking) bool { return b.ID != id })
	if IsOccupied(newRoomNumber, others) {
		return ErrRoomUnavailable
	}

	booking.Room = room
	if err := s.saveBookings(ctx); err != nil {
		return err
	}

	s.publishEvent(events.EventBookingRoomChanged, booking, actor, 0)
	return nil
}

// Delete removes a booking that has not completed its stay. Checked-out
// bookings are history and stay in the repository.
func (s *BookingService) Delete(ctx context.Context, id string, actor string) error {
	booking, err := s.find(id)
	if err != nil {
		return err
	}
	if booking.Status == models.StatusCheckedOut {
		return ErrInvalidTransition
	}

	if err := s.repo.Remove(id); err != nil {
		return ErrNotFound
	}
	if err := s.saveBookings(ctx); err != nil {
		return err
	}

	s.publishEvent(events.EventBookingCanceled, booking, actor, 0)
	return nil
}

// All returns every booking in insertion order.
func (s *BookingService) All() []*models.Booking {
	return s.repo.All()
}

// Get returns a booking by ID.
func (s *BookingService) Get(id string) (*models.Booking, error) {
	return s.find(id)
}

// AwaitingCheckIn lists bookings that have not been checked in yet.
func (s *BookingService) AwaitingCheckIn() []*models.Booking {
	return s.repo.FindAll(func(b *models.Booking) bool { return b.Status == models.StatusBooked })
}

// InHouse lists guests currently checked in.
func (s *BookingService) InHouse() []*models.Booking {
	return s.repo.FindAll(func(b *models.Booking) bool { return b.Status == models.StatusCheckedIn })
}

// RoomTypes returns the catalog's room types in catalog order.
func (s *BookingService) RoomTypes() []string {
	return models.RoomTypes(s.catalog)
}

// AvailableRooms lists free rooms of the given type in catalog order.
func (s *BookingService) AvailableRooms(roomType string) []models.Room {
	return AvailableRooms(roomType, s.catalog, s.repo.All())
}

// RoomOccupied reports whether the room currently has an active booking.
func (s *BookingService) RoomOccupied(roomNumber int) bool {
	return IsOccupied(roomNumber, s.repo.All())
}

func (s *BookingService) find(id string) (*models.Booking, error) {
	booking, err := s.repo.Find(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return booking, nil
}

func (s *BookingService) saveBookings(ctx context.Context) error {
	if err := s.store.SaveBookings(ctx, s.repo.Snapshot()); err != nil {
		s.logger.Error().Err(err).Msg("save bookings")
		return err
	}
	return nil
}

func (s *BookingService) publishEvent(eventType string, booking *models.Booking, actor string, amount float64) {
	if s.eventBus == nil {
		return
	}

	payload := events.BookingEventPayload{
		BookingID:    booking.ID,
		GuestName:    booking.GuestName,
		RoomNumber:   booking.Room.RoomNumber,
		RoomType:     booking.Room.RoomType,
		Status:       booking.Status,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		Actor:        actor,
		AmountPaid:   amount,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Str("booking_id", booking.ID).Msg("publish event error")
	}
}
