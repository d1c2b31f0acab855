package booking

import (
	"time"

	"github.com/roamio/roamio-api/internal/domain/tour"
)

// DefaultGuestCap bounds guest-count increments before a departure slot is
// chosen. Tunable reference behavior, not a capacity invariant.
const DefaultGuestCap = 10

// AllMonths is the sentinel month filter matching every month
const AllMonths = "All"

// Availability answers sold-out / past-date / capacity questions for one
// slot list. Date comparisons truncate to midnight in a single explicit
// location so month bucketing stays deterministic.
type Availability struct {
	slots      []tour.DepartureSlot
	now        func() time.Time
	loc        *time.Location
	defaultCap int
}

// NewAvailability creates an availability view over a tour's slot list
func NewAvailability(slots []tour.DepartureSlot) Availability {
	return Availability{slots: slots, now: time.Now, loc: time.Local, defaultCap: DefaultGuestCap}
}

// WithClock overrides the clock and location. Used by tests and by
// deployments that pin a timezone policy.
func (a Availability) WithClock(now func() time.Time, loc *time.Location) Availability {
	a.now = now
	a.loc = loc
	return a
}

// WithDefaultCap overrides the pre-selection guest-count ceiling
// (DEFAULT_GUEST_CAP in config). Values below 1 keep the current cap.
func (a Availability) WithDefaultCap(n int) Availability {
	if n >= 1 {
		a.defaultCap = n
	}
	return a
}

// VisibleSlots returns the slots still open for selection: departures
// strictly before today-at-midnight are dropped entirely (one starting
// today stays), and a non-"All" monthFilter keeps only matching start
// months. Source order is preserved; sold-out slots stay visible.
func (a Availability) VisibleSlots(monthFilter string) []tour.DepartureSlot {
	visible := make([]tour.DepartureSlot, 0, len(a.slots))
	for _, s := range a.slots {
		if a.isPast(s) {
			continue
		}
		if monthFilter != "" && monthFilter != AllMonths && a.monthName(s) != monthFilter {
			continue
		}
		visible = append(visible, s)
	}
	return visible
}

// AvailableMonths lists the distinct start months of future slots in
// first-encountered order, preceded by the "All" sentinel. Past slots
// never contribute a month.
func (a Availability) AvailableMonths() []string {
	months := []string{AllMonths}
	seen := make(map[string]struct{})
	for _, s := range a.slots {
		if a.isPast(s) {
			continue
		}
		name := a.monthName(s)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		months = append(months, name)
	}
	return months
}

// IsSoldOut reports whether the slot has no remaining capacity. Sold-out
// slots remain visible but must never be selected.
func IsSoldOut(s tour.DepartureSlot) bool {
	return s.AvailableSlots == 0
}

// MaxSelectableGuests returns the guest-count ceiling: the chosen slot's
// remaining capacity, or the configured default cap when no slot is
// chosen yet.
func (a Availability) MaxSelectableGuests(s *tour.DepartureSlot) int {
	if s == nil {
		return a.defaultCap
	}
	return s.AvailableSlots
}

func (a Availability) isPast(s tour.DepartureSlot) bool {
	today := startOfDay(a.now(), a.loc)
	return startOfDay(s.StartDate, a.loc).Before(today)
}

func (a Availability) monthName(s tour.DepartureSlot) string {
	return s.StartDate.In(a.loc).Month().String()
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
