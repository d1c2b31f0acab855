package booking

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/roamio/roamio-api/internal/pkg/reservations"
)

func TestCreateBookingHandlerValidation(t *testing.T) {
	h := NewHandler(newTestService(testPackage(), &clientStub{}))

	body := `{"tour_id":"not-a-uuid","start_date":"","guests":[]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
}

func TestCreateBookingHandlerCapacityExceeded(t *testing.T) {
	pkg := testPackage(slotOn(2026, time.September, 10, 1))
	h := NewHandler(newTestService(pkg, &clientStub{}))

	body := `{"tour_id":"` + pkg.ID.String() + `","start_date":"2026-09-10","guests":[{"name":"A","age":20},{"name":"B","age":22}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "CAPACITY_EXCEEDED") {
		t.Fatalf("expected CAPACITY_EXCEEDED code, got %s", rr.Body.String())
	}
}

func TestCreateBookingHandlerBackendFailure(t *testing.T) {
	pkg := testPackage(slotOn(2026, time.September, 10, 4))
	client := &clientStub{result: &reservations.BookingResult{Success: false}}
	h := NewHandler(newTestService(pkg, client))

	body := `{"tour_id":"` + pkg.ID.String() + `","start_date":"2026-09-10","guests":[{"name":"Asha","age":29}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestCreateBookingHandlerSuccess(t *testing.T) {
	pkg := testPackage(slotOn(2026, time.September, 10, 4))
	client := &clientStub{result: &reservations.BookingResult{Success: true, Reference: "BK-9", Status: "confirmed"}}
	h := NewHandler(newTestService(pkg, client))

	body := `{"tour_id":"` + pkg.ID.String() + `","start_date":"2026-09-10","guests":[{"name":"Asha","age":29}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "BK-9") {
		t.Fatalf("expected reference in body, got %s", rr.Body.String())
	}
}
