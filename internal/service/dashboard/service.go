// Package dashboard serves the read-only trip lists shown next to the
// guest profile: upcoming stays, past stays and saved properties.
package dashboard

import (
	"context"

	"github.com/janisto/guest-dashboard/internal/platform/timeutil"
)

// BookingStatus is the lifecycle state of a reservation.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"
)

// Booking is a reservation made by the guest.
type Booking struct {
	ID       string
	Property string
	Location string
	CheckIn  timeutil.Date
	CheckOut timeutil.Date
	Total    int // whole currency units
	ImageURL string
	Status   BookingStatus
	Rating   int // 0 when the guest has not rated the stay
	Reviewed bool
}

// Nights is the length of the stay.
func (b Booking) Nights() int {
	return b.CheckIn.NightsUntil(b.CheckOut)
}

// Favorite is a property the guest saved.
type Favorite struct {
	ID            string
	Title         string
	Location      string
	PricePerNight int
	Rating        float64
	ImageURL      string
}

// Service lists the guest's trips. Results are ordered for display.
type Service interface {
	Upcoming(ctx context.Context, userID string) ([]Booking, error)
	Past(ctx context.Context, userID string) ([]Booking, error)
	Favorites(ctx context.Context, userID string) ([]Favorite, error)
}
