package dashboard

import (
	"context"
	"slices"

	"github.com/janisto/guest-dashboard/internal/platform/timeutil"
)

// Catalog is a fixed in-memory Service. Every guest sees the same trips.
type Catalog struct {
	upcoming  []Booking
	past      []Booking
	favorites []Favorite
}

// NewCatalog builds a Catalog from the given lists.
func NewCatalog(upcoming, past []Booking, favorites []Favorite) *Catalog {
	return &Catalog{
		upcoming:  slices.Clone(upcoming),
		past:      slices.Clone(past),
		favorites: slices.Clone(favorites),
	}
}

// NewSampleCatalog returns the trips the dashboard ships with.
func NewSampleCatalog() *Catalog {
	return NewCatalog(
		[]Booking{
			{
				ID:       "1",
				Property: "Royal Varanasi Retreat",
				Location: "Varanasi, Uttar Pradesh",
				CheckIn:  timeutil.MustDate("2025-11-15"),
				CheckOut: timeutil.MustDate("2025-11-18"),
				Total:    4100,
				ImageURL: "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800",
				Status:   StatusConfirmed,
			},
			{
				ID:       "2",
				Property: "Beachfront Villa",
				Location: "Miami, FL",
				CheckIn:  timeutil.MustDate("2025-12-01"),
				CheckOut: timeutil.MustDate("2025-12-05"),
				Total:    14500,
				ImageURL: "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800",
				Status:   StatusPending,
			},
		},
		[]Booking{
			{
				ID:       "3",
				Property: "Mountain Cabin Retreat",
				Location: "Aspen, CO",
				CheckIn:  timeutil.MustDate("2025-09-10"),
				CheckOut: timeutil.MustDate("2025-09-15"),
				Total:    10500,
				ImageURL: "https://images.unsplash.com/photo-1542718610-a1d656d1884c?w=800",
				Status:   StatusCompleted,
				Rating:   5,
				Reviewed: true,
			},
		},
		[]Favorite{
			{
				ID:            "4",
				Title:         "Modern Loft Studio",
				Location:      "Los Angeles, CA",
				PricePerNight: 4500,
				Rating:        4.9,
				ImageURL:      "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=400",
			},
			{
				ID:            "2",
				Title:         "Sabarmati Riverside Loft",
				Location:      "Ahmedabad, Gujarat, India",
				PricePerNight: 1400,
				Rating:        4.7,
				ImageURL:      "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=400",
			},
		},
	)
}

func (c *Catalog) Upcoming(ctx context.Context, _ string) ([]Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(c.upcoming), nil
}

func (c *Catalog) Past(ctx context.Context, _ string) ([]Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(c.past), nil
}

func (c *Catalog) Favorites(ctx context.Context, _ string) ([]Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(c.favorites), nil
}

// Compile-time interface check
var _ Service = (*Catalog)(nil)
