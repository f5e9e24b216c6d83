// Package guestapi is the HTTP client for the guest dashboard API. It backs
// profilesync.Sync and the terminal dashboard.
package guestapi

import (
	"errors"
	"fmt"

	"github.com/janisto/guest-dashboard/internal/platform/timeutil"
	"github.com/janisto/guest-dashboard/internal/profilesync"
)

// Client errors
var (
	ErrNotFound          = errors.New("guest api resource not found")
	ErrUpstream          = errors.New("guest api upstream error")
	ErrMalformedProfile  = profilesync.ErrMalformedProfile
	ErrMalformedResponse = errors.New("malformed guest api response")
	ErrTooManyPages      = errors.New("guest api pagination did not terminate")
)

// UpstreamErrorKind classifies non-200 responses.
type UpstreamErrorKind string

const (
	UpstreamErrorKindNotFound UpstreamErrorKind = "not_found"
	UpstreamErrorKindUpstream UpstreamErrorKind = "upstream"
)

// UpstreamError carries the response status for a non-200 answer.
type UpstreamError struct {
	Kind   UpstreamErrorKind
	Status int
	cause  error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "guest api upstream error"
	}
	if e.cause == nil {
		return fmt.Sprintf("guest api upstream error (kind=%s status=%d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("guest api upstream error (kind=%s status=%d): %v", e.Kind, e.Status, e.cause)
}

// Unwrap enables errors.Is/As against sentinel errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Booking is a reservation as returned by the bookings endpoints.
type Booking struct {
	ID       string        `json:"id"`
	Property string        `json:"property"`
	Location string        `json:"location"`
	CheckIn  timeutil.Date `json:"checkIn"`
	CheckOut timeutil.Date `json:"checkOut"`
	Nights   int           `json:"nights"`
	Total    int           `json:"total"`
	Image    string        `json:"image"`
	Status   string        `json:"status"`
	Rating   int           `json:"rating,omitempty"`
	Reviewed bool          `json:"reviewed"`
}

// Favorite is a saved property.
type Favorite struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Price    int     `json:"price"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image"`
}

type listBody[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
