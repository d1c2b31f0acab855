package tour

import (
	"time"

	"github.com/google/uuid"
)

// SummaryResponse is the catalog-card view of a package
type SummaryResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	DurationLabel  string    `json:"duration_label"`
	Price          Price     `json:"price"`
	PerPersonPrice float64   `json:"per_person_price"`
	Rating         float64   `json:"rating"`
	Destinations   []string  `json:"destinations"`
}

// SummaryResponseFromEntity converts entity to summary response
func SummaryResponseFromEntity(t *TourPackage) *SummaryResponse {
	return &SummaryResponse{
		ID:             t.ID,
		Title:          t.Title,
		DurationLabel:  t.DurationLabel,
		Price:          t.Price,
		PerPersonPrice: PerPersonPrice(t.Price),
		Rating:         t.Rating,
		Destinations:   t.Destinations,
	}
}

// SlotResponse is the API view of a departure slot
type SlotResponse struct {
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	AvailableSlots int       `json:"available_slots"`
	SoldOut        bool      `json:"sold_out"`
}

// DetailResponse is the full package view
type DetailResponse struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	DurationLabel  string         `json:"duration_label"`
	Price          Price          `json:"price"`
	PerPersonPrice float64        `json:"per_person_price"`
	Rating         float64        `json:"rating"`
	Tags           []string       `json:"tags"`
	Destinations   []string       `json:"destinations"`
	Itinerary      []ItineraryDay `json:"itinerary"`
	BookingSlots   []SlotResponse `json:"booking_slots"`
}

// DetailResponseFromEntity converts entity to detail response
func DetailResponseFromEntity(t *TourPackage) *DetailResponse {
	slots := make([]SlotResponse, len(t.BookingSlots))
	for i, s := range t.BookingSlots {
		slots[i] = SlotResponse{
			StartDate:      s.StartDate,
			EndDate:        s.EndDate,
			AvailableSlots: s.AvailableSlots,
			SoldOut:        s.AvailableSlots == 0,
		}
	}
	return &DetailResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		DurationLabel:  t.DurationLabel,
		Price:          t.Price,
		PerPersonPrice: PerPersonPrice(t.Price),
		Rating:         t.Rating,
		Tags:           t.Tags,
		Destinations:   t.Destinations,
		Itinerary:      t.Itinerary,
		BookingSlots:   slots,
	}
}
