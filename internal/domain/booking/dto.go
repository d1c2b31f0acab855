package booking

import "time"

// GuestRequest is one traveller in a booking submission
type GuestRequest struct {
	Name string `json:"name" validate:"required"`
	Age  int    `json:"age" validate:"required,gt=0"`
}

// CreateBookingRequest is the booking submission body. StartDate selects
// the departure slot by calendar day.
type CreateBookingRequest struct {
	TourID    string         `json:"tour_id" validate:"required,uuid"`
	StartDate string         `json:"start_date" validate:"required"`
	Guests    []GuestRequest `json:"guests" validate:"required,min=1,dive"`
}

// BookingResponse reports the confirmed booking
type BookingResponse struct {
	Reference   string  `json:"reference"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
}

// SlotInfo is one selectable (or visibly sold-out) departure
type SlotInfo struct {
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	AvailableSlots int       `json:"available_slots"`
	SoldOut        bool      `json:"sold_out"`
}

// SlotListResponse is the departure picker view: visible slots for the
// month filter plus the month options themselves
type SlotListResponse struct {
	Slots     []SlotInfo `json:"slots"`
	Months    []string   `json:"months"`
	MaxGuests int        `json:"max_guests"`
}
