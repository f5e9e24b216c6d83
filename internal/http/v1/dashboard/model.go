package dashboard

import (
	"github.com/janisto/guest-dashboard/internal/platform/timeutil"
	dashsvc "github.com/janisto/guest-dashboard/internal/service/dashboard"
)

// Booking is a reservation shown on the dashboard.
type Booking struct {
	ID       string        `json:"id"                 doc:"Booking identifier"           example:"1"`
	Property string        `json:"property"           doc:"Property name"                example:"Royal Varanasi Retreat"`
	Location string        `json:"location"           doc:"Property location"            example:"Varanasi, Uttar Pradesh"`
	CheckIn  timeutil.Date `json:"checkIn"            doc:"Check-in day"                 example:"2025-11-15"`
	CheckOut timeutil.Date `json:"checkOut"           doc:"Check-out day"                example:"2025-11-18"`
	Nights   int           `json:"nights"             doc:"Length of stay"               example:"3"`
	Total    int           `json:"total"              doc:"Total price"                  example:"4100"`
	Image    string        `json:"image"              doc:"Property image URL"`
	Status   string        `json:"status"             doc:"Reservation status"           enum:"confirmed,pending,completed"`
	Rating   int           `json:"rating,omitempty"   doc:"Guest rating, 1-5"            example:"5"`
	Reviewed bool          `json:"reviewed"           doc:"Whether the guest left a review"`
}

// Favorite is a property the guest saved.
type Favorite struct {
	ID       string  `json:"id"       doc:"Property identifier" example:"4"`
	Title    string  `json:"title"    doc:"Listing title"       example:"Modern Loft Studio"`
	Location string  `json:"location" doc:"Property location"   example:"Los Angeles, CA"`
	Price    int     `json:"price"    doc:"Price per night"     example:"4500"`
	Rating   float64 `json:"rating"   doc:"Average rating"      example:"4.9"`
	Image    string  `json:"image"    doc:"Property image URL"`
}

func toHTTPBooking(b dashsvc.Booking) Booking {
	return Booking{
		ID:       b.ID,
		Property: b.Property,
		Location: b.Location,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Nights:   b.Nights(),
		Total:    b.Total,
		Image:    b.ImageURL,
		Status:   string(b.Status),
		Rating:   b.Rating,
		Reviewed: b.Reviewed,
	}
}

func toHTTPFavorite(f dashsvc.Favorite) Favorite {
	return Favorite{
		ID:       f.ID,
		Title:    f.Title,
		Location: f.Location,
		Price:    f.PricePerNight,
		Rating:   f.Rating,
		Image:    f.ImageURL,
	}
}
