package reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSubmitSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/bookings" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"reference":"BK-7","status":"confirmed"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123", 2*time.Second)
	result, err := c.Submit(context.Background(), BookingPayload{TourID: "t-1", NumGuests: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.Success || result.Reference != "BK-7" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestSubmitBackendRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"error":{"code":"SOLD_OUT","message":"no capacity left"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 2*time.Second)
	result, err := c.Submit(context.Background(), BookingPayload{TourID: "t-1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure discriminant")
	}
	if result.Error == nil || result.Error.Code != "SOLD_OUT" {
		t.Fatalf("expected error payload, got %+v", result.Error)
	}
}

func TestSubmitMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 2*time.Second)
	if _, err := c.Submit(context.Background(), BookingPayload{}); err == nil {
		t.Fatal("expected error for malformed response body")
	}
}

func TestSubmitEmptyBaseURL(t *testing.T) {
	c := NewClient("", "", 0)
	if _, err := c.Submit(context.Background(), BookingPayload{}); err == nil {
		t.Fatal("expected config error")
	}
}
