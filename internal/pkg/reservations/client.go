package reservations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is the HTTP client for the external reservations backend, the
// system that persists bookings and owns slot-capacity decrements.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// BookingPayload is the wire form of a booking submission
type BookingPayload struct {
	TourID      string         `json:"tour_id"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	NumGuests   int            `json:"num_guests"`
	Guests      []GuestPayload `json:"guests"`
	TotalAmount float64        `json:"total_amount"`
}

// GuestPayload is one traveller on the wire
type GuestPayload struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// BookingResult carries the success/failure discriminant plus the
// reference the backend assigned. Nothing else in the response is parsed.
type BookingResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Error     *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewClient creates a reservations client
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Submit posts a booking to the reservations backend
func (c *Client) Submit(ctx context.Context, p BookingPayload) (*BookingResult, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("reservations request error: client is nil")
	}
	if strings.TrimSpace(c.baseURL) == "" {
		return nil, fmt.Errorf("reservations config error: base_url is empty")
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("reservations request error: %w", err)
	}

	url := c.baseURL + "/api/v1/bookings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("reservations request error: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyRequestError(ctx, err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("reservations http error: status=%d body=<failed to read body: %v>", resp.StatusCode, readErr)
	}

	var result BookingResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("reservations response error: status=%d body=%s", resp.StatusCode, truncate(body, 500))
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		result.Success = false
	}

	return &result, nil
}

func classifyRequestError(ctx context.Context, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("reservations timeout: %w", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("reservations network error: %w", err)
	}
	return fmt.Errorf("reservations request error: %w", err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(b []byte, max int) string {
	if len(b) > max {
		return string(b[:max]) + "...<truncated>"
	}
	return string(b)
}
