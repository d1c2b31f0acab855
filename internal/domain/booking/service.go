package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain/tour"
	"github.com/roamio/roamio-api/internal/pkg/reservations"
)

// ReservationsClient interface for mocking in tests.
type ReservationsClient interface {
	Submit(ctx context.Context, p reservations.BookingPayload) (*reservations.BookingResult, error)
}

// TourSource resolves tours for the booking flow
type TourSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*tour.TourPackage, error)
}

// Service runs the booking flow server-side: slot lookup, selector
// validation, then hand-off to the reservations backend.
type Service struct {
	tours      TourSource
	client     ReservationsClient
	now        func() time.Time
	loc        *time.Location
	defaultCap int
}

// NewService creates booking service
func NewService(tours TourSource, client ReservationsClient) *Service {
	return &Service{tours: tours, client: client, now: time.Now, loc: time.Local, defaultCap: DefaultGuestCap}
}

// WithClock overrides the clock and location used for past-date checks
func (s *Service) WithClock(now func() time.Time, loc *time.Location) *Service {
	s.now = now
	s.loc = loc
	return s
}

// WithDefaultCap overrides the pre-selection guest-count ceiling
func (s *Service) WithDefaultCap(n int) *Service {
	if n >= 1 {
		s.defaultCap = n
	}
	return s
}

// VisibleSlots returns the departure picker view for one tour
func (s *Service) VisibleSlots(ctx context.Context, tourID uuid.UUID, monthFilter string) (*SlotListResponse, error) {
	t, err := s.tours.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	avail := NewAvailability(t.BookingSlots).WithClock(s.now, s.loc).WithDefaultCap(s.defaultCap)
	visible := avail.VisibleSlots(monthFilter)

	slots := make([]SlotInfo, len(visible))
	for i, slot := range visible {
		slots[i] = SlotInfo{
			StartDate:      slot.StartDate,
			EndDate:        slot.EndDate,
			AvailableSlots: slot.AvailableSlots,
			SoldOut:        IsSoldOut(slot),
		}
	}

	return &SlotListResponse{
		Slots:     slots,
		Months:    avail.AvailableMonths(),
		MaxGuests: s.defaultCap,
	}, nil
}

// CreateBooking validates the submission through the selector state machine
// and relays the resulting request to the reservations backend. The backend
// owns persistence and the capacity decrement; this service only validates.
func (s *Service) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingResponse, error) {
	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, tour.ErrTourNotFound
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, s.loc)
	if err != nil {
		return nil, ErrSlotNotFound
	}

	t, err := s.tours.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	avail := NewAvailability(t.BookingSlots).WithClock(s.now, s.loc).WithDefaultCap(s.defaultCap)
	slot, ok := s.findSlot(t.BookingSlots, startDate)
	if !ok {
		return nil, ErrSlotNotFound
	}

	sel := NewSelector(t, avail)
	if err := sel.SelectSlot(slot); err != nil {
		return nil, err
	}
	if err := sel.SetNumGuests(len(req.Guests)); err != nil {
		return nil, err
	}
	if err := sel.BeginGuestDetails(); err != nil {
		return nil, err
	}
	for i, g := range req.Guests {
		if err := sel.SetGuest(i, Guest{Name: g.Name, Age: g.Age}); err != nil {
			return nil, err
		}
	}

	bookingReq, err := sel.Submit()
	if err != nil {
		return nil, err
	}

	result, err := s.client.Submit(ctx, toPayload(bookingReq))
	if err != nil {
		sel.Resolve(false)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	if !result.Success {
		sel.Resolve(false)
		if result.Error != nil {
			return nil, fmt.Errorf("%w: %s - %s", ErrSubmissionFailed, result.Error.Code, result.Error.Message)
		}
		return nil, ErrSubmissionFailed
	}

	sel.Resolve(true)
	sel.Reset()

	return &BookingResponse{
		Reference:   result.Reference,
		Status:      result.Status,
		TotalAmount: bookingReq.TotalAmount,
	}, nil
}

// findSlot matches a departure slot by calendar day
func (s *Service) findSlot(slots []tour.DepartureSlot, startDate time.Time) (tour.DepartureSlot, bool) {
	want := startOfDay(startDate, s.loc)
	for _, slot := range slots {
		if startOfDay(slot.StartDate, s.loc).Equal(want) {
			return slot, true
		}
	}
	return tour.DepartureSlot{}, false
}

func toPayload(r *Request) reservations.BookingPayload {
	guests := make([]reservations.GuestPayload, len(r.Guests))
	for i, g := range r.Guests {
		guests[i] = reservations.GuestPayload{Name: g.Name, Age: g.Age}
	}
	return reservations.BookingPayload{
		TourID:      r.TourID.String(),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		NumGuests:   r.NumGuests,
		Guests:      guests,
		TotalAmount: r.TotalAmount,
	}
}
