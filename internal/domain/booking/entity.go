package booking

import (
	"time"

	"github.com/google/uuid"
)

// Guest holds one traveller's details. Both fields are mandatory at
// submission time.
type Guest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Complete reports whether the guest entry is ready for submission
func (g Guest) Complete() bool {
	return g.Name != "" && g.Age > 0
}

// Request is the payload handed to the external reservations backend.
// Built fresh for each submission attempt and never mutated afterwards.
type Request struct {
	TourID      uuid.UUID `json:"tour_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	NumGuests   int       `json:"num_guests"`
	Guests      []Guest   `json:"guests"`
	TotalAmount float64   `json:"total_amount"`
}
