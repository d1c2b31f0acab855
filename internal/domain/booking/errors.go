package booking

import (
	"errors"
	"fmt"
)

var (
	ErrNoDateSelected     = errors.New("please select a departure date")
	ErrSlotSoldOut        = errors.New("this departure is sold out")
	ErrSlotDeparted       = errors.New("this departure date has passed")
	ErrSlotNotFound       = errors.New("no departure slot matches the requested date")
	ErrIncompleteGuests   = errors.New("please fill all guest details")
	ErrNoGuests           = errors.New("at least one guest is required")
	ErrSubmissionInFlight = errors.New("a booking submission is already in progress")
	ErrSubmissionFailed   = errors.New("the reservations backend rejected the booking")
)

// CapacityExceededError reports a guest count over the chosen slot's
// remaining capacity. The guest count is left unchanged, not clamped.
type CapacityExceededError struct {
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("only %d slots available for this date", e.Available)
}
