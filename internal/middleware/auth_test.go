package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/roamio/roamio-api/internal/pkg/jwt"
)

func newTestJWT() *jwt.Service {
	return jwt.NewService("test-secret", 15*time.Minute)
}

func TestAuthAcceptsGeneratedToken(t *testing.T) {
	svc := newTestJWT()
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	var gotID uuid.UUID
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/favourites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != userID {
		t.Fatalf("expected user id %s in context, got %s", userID, gotID)
	}
}

func TestAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	svc := newTestJWT()
	handler := Auth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a valid token")
	}))

	for _, header := range []string{"", "Bearer", "Bearer not-a-token", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/favourites", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	svc := newTestJWT()

	var gotID uuid.UUID
	handler := OptionalAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/tours", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != uuid.Nil {
		t.Fatalf("anonymous request must carry no user id, got %s", gotID)
	}
}

func TestOptionalAuthAttachesUserWhenTokenValid(t *testing.T) {
	svc := newTestJWT()
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	var gotID uuid.UUID
	handler := OptionalAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = GetUserID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/tours", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if gotID != userID {
		t.Fatalf("expected user id %s in context, got %s", userID, gotID)
	}
}
