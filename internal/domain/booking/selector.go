package booking

import (
	"github.com/roamio/roamio-api/internal/domain/tour"
)

// FlowState is the stage of one booking-selection flow
type FlowState int

const (
	StateNoDateSelected FlowState = iota
	StateDateSelected
	StateAwaitingGuestDetails
	StateSubmitted
)

// Selector drives one booking flow for a single tour: pick a departure
// slot, pick a guest count bounded by that slot's capacity, collect guest
// details and emit a Request. Every validation failure is a sentinel-error
// notice that blocks the transition and leaves existing selections intact.
type Selector struct {
	pkg       *tour.TourPackage
	avail     Availability
	slot      *tour.DepartureSlot
	numGuests int
	guests    []Guest
	state     FlowState
	inFlight  bool
}

// NewSelector starts a flow against one tour with one guest selected
func NewSelector(pkg *tour.TourPackage, avail Availability) *Selector {
	return &Selector{
		pkg:       pkg,
		avail:     avail,
		numGuests: 1,
		state:     StateNoDateSelected,
	}
}

func (s *Selector) State() FlowState { return s.state }

func (s *Selector) NumGuests() int { return s.numGuests }

// SelectedSlot returns the chosen slot, nil before a date is picked
func (s *Selector) SelectedSlot() *tour.DepartureSlot { return s.slot }

// Guests returns the collected guest entries
func (s *Selector) Guests() []Guest { return s.guests }

// SelectSlot transitions to DateSelected. Past and sold-out departures are
// rejected with no state change. Switching slots re-caps the guest count
// against the new slot's capacity only.
func (s *Selector) SelectSlot(slot tour.DepartureSlot) error {
	if s.avail.isPast(slot) {
		return ErrSlotDeparted
	}
	if IsSoldOut(slot) {
		return ErrSlotSoldOut
	}

	chosen := slot
	s.slot = &chosen
	s.state = StateDateSelected

	if s.numGuests > chosen.AvailableSlots {
		s.numGuests = chosen.AvailableSlots
	}
	return nil
}

// IncrementGuests raises the guest count by one, bounded by the chosen
// slot's capacity (or the availability's default cap before a date is
// picked). Over-cap
// attempts leave the count unchanged.
func (s *Selector) IncrementGuests() error {
	limit := s.avail.MaxSelectableGuests(s.slot)
	if s.numGuests+1 > limit {
		return &CapacityExceededError{Available: limit}
	}
	s.numGuests++
	return nil
}

// DecrementGuests lowers the guest count, stopping at a floor of 1
func (s *Selector) DecrementGuests() {
	if s.numGuests > 1 {
		s.numGuests--
	}
}

// SetNumGuests sets the guest count directly, re-validating against the
// current cap
func (s *Selector) SetNumGuests(n int) error {
	if n < 1 {
		return ErrNoGuests
	}
	if limit := s.avail.MaxSelectableGuests(s.slot); n > limit {
		return &CapacityExceededError{Available: limit}
	}
	s.numGuests = n
	return nil
}

// BeginGuestDetails enters AwaitingGuestDetails, initializing one empty
// entry per guest. Requires a selected departure date.
func (s *Selector) BeginGuestDetails() error {
	if s.slot == nil {
		return ErrNoDateSelected
	}
	if len(s.guests) != s.numGuests {
		s.guests = make([]Guest, s.numGuests)
	}
	s.state = StateAwaitingGuestDetails
	return nil
}

// SetGuest fills one guest entry
func (s *Selector) SetGuest(index int, g Guest) error {
	if s.state != StateAwaitingGuestDetails {
		return ErrNoDateSelected
	}
	if index < 0 || index >= len(s.guests) {
		return ErrIncompleteGuests
	}
	s.guests[index] = g
	return nil
}

// Submit validates the collected details and emits a fresh Request with
// the discounted total. The flow stays guarded against a duplicate submit
// until Resolve is called; capacity is not re-checked here — the
// reservations backend owns the decrement.
func (s *Selector) Submit() (*Request, error) {
	if s.slot == nil {
		return nil, ErrNoDateSelected
	}
	if s.state != StateAwaitingGuestDetails {
		return nil, ErrIncompleteGuests
	}
	if s.inFlight {
		return nil, ErrSubmissionInFlight
	}
	for _, g := range s.guests {
		if !g.Complete() {
			return nil, ErrIncompleteGuests
		}
	}

	guests := make([]Guest, len(s.guests))
	copy(guests, s.guests)

	s.inFlight = true
	return &Request{
		TourID:      s.pkg.ID,
		StartDate:   s.slot.StartDate,
		EndDate:     s.slot.EndDate,
		NumGuests:   s.numGuests,
		Guests:      guests,
		TotalAmount: tour.TotalPrice(s.pkg.Price, s.numGuests),
	}, nil
}

// Resolve records the reservations backend's verdict. Success finishes the
// flow; failure keeps the guest details so the user can retry without
// re-entering them.
func (s *Selector) Resolve(success bool) {
	s.inFlight = false
	if success {
		s.state = StateSubmitted
	}
}

// Reset returns a finished flow to its initial state
func (s *Selector) Reset() {
	s.slot = nil
	s.numGuests = 1
	s.guests = nil
	s.state = StateNoDateSelected
	s.inFlight = false
}
