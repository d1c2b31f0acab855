package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/domain/tour"
)

func testPackage(slots ...tour.DepartureSlot) *tour.TourPackage {
	return &tour.TourPackage{
		ID:            uuid.New(),
		Title:         "Goa Beach Escape",
		DurationLabel: "4 Days 3 Nights",
		Price:         tour.Price{Amount: 20000, Currency: "INR", Discount: 0.1},
		Rating:        4.2,
		BookingSlots:  slots,
	}
}

func newTestSelector(slots ...tour.DepartureSlot) *Selector {
	pkg := testPackage(slots...)
	avail := NewAvailability(pkg.BookingSlots).WithClock(fixedClock(), time.UTC)
	return NewSelector(pkg, avail)
}

func TestSelectSlotSoldOutRejected(t *testing.T) {
	soldOut := slotOn(2026, time.September, 10, 0)
	sel := newTestSelector(soldOut)

	if err := sel.SelectSlot(soldOut); err != ErrSlotSoldOut {
		t.Fatalf("expected ErrSlotSoldOut, got %v", err)
	}
	if sel.State() != StateNoDateSelected {
		t.Fatal("rejected selection must not change state")
	}
}

func TestSelectSlotPastRejected(t *testing.T) {
	past := slotOn(2026, time.August, 10, 5)
	sel := newTestSelector(past)

	if err := sel.SelectSlot(past); err != ErrSlotDeparted {
		t.Fatalf("expected ErrSlotDeparted, got %v", err)
	}
}

func TestIncrementCappedByDefaultBeforeDatePicked(t *testing.T) {
	sel := newTestSelector()

	for i := 1; i < DefaultGuestCap; i++ {
		if err := sel.IncrementGuests(); err != nil {
			t.Fatalf("increment %d failed: %v", i, err)
		}
	}
	err := sel.IncrementGuests()
	var capErr *CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityExceededError, got %v", err)
	}
	if sel.NumGuests() != DefaultGuestCap {
		t.Fatalf("guest count changed on rejection: %d", sel.NumGuests())
	}
}

func TestIncrementHonorsConfiguredDefaultCap(t *testing.T) {
	pkg := testPackage()
	avail := NewAvailability(pkg.BookingSlots).WithClock(fixedClock(), time.UTC).WithDefaultCap(3)
	sel := NewSelector(pkg, avail)

	if err := sel.IncrementGuests(); err != nil {
		t.Fatalf("increment to 2 failed: %v", err)
	}
	if err := sel.IncrementGuests(); err != nil {
		t.Fatalf("increment to 3 failed: %v", err)
	}

	err := sel.IncrementGuests()
	var capErr *CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityExceededError, got %v", err)
	}
	if capErr.Available != 3 {
		t.Fatalf("expected available=3, got %d", capErr.Available)
	}
	if sel.NumGuests() != 3 {
		t.Fatalf("guest count changed on rejection: %d", sel.NumGuests())
	}
}

func TestIncrementCappedBySlotCapacity(t *testing.T) {
	slot := slotOn(2026, time.September, 10, 2)
	sel := newTestSelector(slot)

	if err := sel.SelectSlot(slot); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if err := sel.IncrementGuests(); err != nil {
		t.Fatalf("increment to 2 failed: %v", err)
	}

	err := sel.IncrementGuests()
	var capErr *CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapacityExceededError, got %v", err)
	}
	if capErr.Available != 2 {
		t.Fatalf("expected available=2, got %d", capErr.Available)
	}
	if sel.NumGuests() != 2 {
		t.Fatalf("guest count must stay 2, got %d", sel.NumGuests())
	}
}

func TestDecrementStopsAtOne(t *testing.T) {
	sel := newTestSelector()
	sel.DecrementGuests()
	if sel.NumGuests() != 1 {
		t.Fatalf("expected floor of 1, got %d", sel.NumGuests())
	}
}

func TestSwitchingSlotsRecaps(t *testing.T) {
	roomy := slotOn(2026, time.September, 10, 5)
	tight := slotOn(2026, time.October, 10, 2)
	sel := newTestSelector(roomy, tight)

	if err := sel.SelectSlot(roomy); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if err := sel.SetNumGuests(4); err != nil {
		t.Fatalf("set guests failed: %v", err)
	}

	if err := sel.SelectSlot(tight); err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if sel.NumGuests() != 2 {
		t.Fatalf("guest count must re-cap to the new slot, got %d", sel.NumGuests())
	}
	if err := sel.SetNumGuests(3); err == nil {
		t.Fatal("old slot's capacity must not carry over")
	}
}

func TestBeginGuestDetailsRequiresDate(t *testing.T) {
	sel := newTestSelector()
	if err := sel.BeginGuestDetails(); err != ErrNoDateSelected {
		t.Fatalf("expected ErrNoDateSelected, got %v", err)
	}
}

func TestSubmitIncompleteGuestsRejected(t *testing.T) {
	slot := slotOn(2026, time.September, 10, 4)
	sel := newTestSelector(slot)

	if err := sel.SelectSlot(slot); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if err := sel.SetNumGuests(2); err != nil {
		t.Fatalf("set guests failed: %v", err)
	}
	if err := sel.BeginGuestDetails(); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := sel.SetGuest(0, Guest{Name: "Asha", Age: 29}); err != nil {
		t.Fatalf("set guest failed: %v", err)
	}

	if _, err := sel.Submit(); err != ErrIncompleteGuests {
		t.Fatalf("expected ErrIncompleteGuests, got %v", err)
	}
	if sel.State() != StateAwaitingGuestDetails {
		t.Fatal("failed submit must keep the flow awaiting details")
	}
}

func TestSubmitBuildsRequestWithDiscountedTotal(t *testing.T) {
	slot := slotOn(2026, time.September, 10, 2)
	sel := newTestSelector(slot)

	if err := sel.SelectSlot(slot); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if err := sel.SetNumGuests(2); err != nil {
		t.Fatalf("set guests failed: %v", err)
	}
	if err := sel.BeginGuestDetails(); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	sel.SetGuest(0, Guest{Name: "Asha", Age: 29})
	sel.SetGuest(1, Guest{Name: "Ravi", Age: 31})

	req, err := sel.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if req.TotalAmount != 36000 {
		t.Fatalf("expected total 36000, got %v", req.TotalAmount)
	}
	if req.NumGuests != 2 || len(req.Guests) != 2 {
		t.Fatalf("unexpected guest counts: %d / %d", req.NumGuests, len(req.Guests))
	}
	if !req.StartDate.Equal(slot.StartDate) || !req.EndDate.Equal(slot.EndDate) {
		t.Fatal("request must carry the selected slot's dates")
	}
}

func TestDuplicateSubmitGuarded(t *testing.T) {
	slot := slotOn(2026, time.September, 10, 2)
	sel := newTestSelector(slot)
	sel.SelectSlot(slot)
	sel.BeginGuestDetails()
	sel.SetGuest(0, Guest{Name: "Asha", Age: 29})

	if _, err := sel.Submit(); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := sel.Submit(); err != ErrSubmissionInFlight {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}
}

func TestResolveFailurePreservesGuestsForRetry(t *testing.T) {
	slot := slotOn(2026, time.September, 10, 2)
	sel := newTestSelector(slot)
	sel.SelectSlot(slot)
	sel.BeginGuestDetails()
	sel.SetGuest(0, Guest{Name: "Asha", Age: 29})

	if _, err := sel.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	sel.Resolve(false)

	if sel.State() != StateAwaitingGuestDetails {
		t.Fatal("failed submission must keep the flow awaiting details")
	}
	if got := sel.Guests(); len(got) != 1 || got[0].Name != "Asha" {
		t.Fatal("guest details must survive a failed submission")
	}
	if _, err := sel.Submit(); err != nil {
		t.Fatalf("retry must be possible, got %v", err)
	}
}

func TestResolveSuccessFinishesFlow(t *testing.T) {
	slot := slotOn(2026, time.September, 10, 2)
	sel := newTestSelector(slot)
	sel.SelectSlot(slot)
	sel.BeginGuestDetails()
	sel.SetGuest(0, Guest{Name: "Asha", Age: 29})

	if _, err := sel.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	sel.Resolve(true)
	if sel.State() != StateSubmitted {
		t.Fatal("expected Submitted state")
	}

	sel.Reset()
	if sel.State() != StateNoDateSelected || sel.NumGuests() != 1 {
		t.Fatal("reset must return the flow to its initial state")
	}
}
