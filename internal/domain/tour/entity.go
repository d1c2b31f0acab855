package tour

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Price holds the pricing formula for a package. Discount is a fraction
// (0.15 means 15% off), never a percentage integer.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Discount float64 `json:"discount"`
}

// DepartureSlot is one bookable departure of a package with its own
// remaining capacity. AvailableSlots == 0 means sold out.
type DepartureSlot struct {
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	AvailableSlots int       `json:"available_slots"`
}

// ItineraryDay describes one day of a package itinerary
type ItineraryDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// TourPackage represents one bookable product
type TourPackage struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	DurationLabel string    `db:"duration_label" json:"duration_label"`
	Rating        float64   `db:"rating" json:"rating"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`

	// JSONB columns — raw DB storage
	PriceRaw        []byte `db:"price" json:"-"`
	TagsRaw         []byte `db:"tags" json:"-"`
	DestinationsRaw []byte `db:"destinations" json:"-"`
	ItineraryRaw    []byte `db:"itinerary" json:"-"`
	BookingSlotsRaw []byte `db:"booking_slots" json:"-"`

	// Parsed structs — populated after scanning
	Price        Price           `db:"-" json:"price"`
	Tags         []string        `db:"-" json:"tags"`
	Destinations []string        `db:"-" json:"destinations"`
	Itinerary    []ItineraryDay  `db:"-" json:"itinerary"`
	BookingSlots []DepartureSlot `db:"-" json:"booking_slots"`
}

// ParseJSONB parses the raw JSONB fields into typed structs. Must be called
// after DB scan. Malformed columns degrade to zero values, matching the
// tolerance policy for catalog entries.
func (t *TourPackage) ParseJSONB() {
	if len(t.PriceRaw) > 0 {
		_ = json.Unmarshal(t.PriceRaw, &t.Price)
	}
	if len(t.TagsRaw) > 0 {
		_ = json.Unmarshal(t.TagsRaw, &t.Tags)
	}
	if len(t.DestinationsRaw) > 0 {
		_ = json.Unmarshal(t.DestinationsRaw, &t.Destinations)
	}
	if len(t.ItineraryRaw) > 0 {
		_ = json.Unmarshal(t.ItineraryRaw, &t.Itinerary)
	}
	if len(t.BookingSlotsRaw) > 0 {
		_ = json.Unmarshal(t.BookingSlotsRaw, &t.BookingSlots)
	}
}
