// Package dashboard serves the guest's trip lists.
package dashboard

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/guest-dashboard/internal/platform/logging"
	"github.com/janisto/guest-dashboard/internal/platform/pagination"
	dashsvc "github.com/janisto/guest-dashboard/internal/service/dashboard"
)

const (
	cursorUpcoming = "upcoming"
	cursorPast     = "past"
	cursorFavorite = "favorite"
)

// Register wires the trip list routes. prefix is the mount path used in
// Link header targets.
func Register(api huma.API, svc dashsvc.Service, guestID, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-upcoming-bookings",
		Method:      http.MethodGet,
		Path:        "/bookings/upcoming",
		Summary:     "List upcoming bookings",
		Description: "Returns confirmed and pending stays, earliest first. Use the cursor from the Link header to page.",
		Tags:        []string{"Bookings"},
	}, func(ctx context.Context, input *ListInput) (*BookingListOutput, error) {
		bookings, err := svc.Upcoming(ctx, guestID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return listBookings(bookings, input, cursorUpcoming, prefix+"/bookings/upcoming")
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-past-bookings",
		Method:      http.MethodGet,
		Path:        "/bookings/past",
		Summary:     "List past bookings",
		Description: "Returns completed stays with the guest's rating and review state.",
		Tags:        []string{"Bookings"},
	}, func(ctx context.Context, input *ListInput) (*BookingListOutput, error) {
		bookings, err := svc.Past(ctx, guestID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return listBookings(bookings, input, cursorPast, prefix+"/bookings/past")
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-favorites",
		Method:      http.MethodGet,
		Path:        "/favorites",
		Summary:     "List favorite properties",
		Description: "Returns the properties the guest saved.",
		Tags:        []string{"Favorites"},
	}, func(ctx context.Context, input *ListInput) (*FavoriteListOutput, error) {
		favorites, err := svc.Favorites(ctx, guestID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		items := make([]Favorite, len(favorites))
		for i, f := range favorites {
			items[i] = toHTTPFavorite(f)
		}
		page, err := paginate(items, input, cursorFavorite, prefix+"/favorites", func(f Favorite) string { return f.ID })
		if err != nil {
			return nil, err
		}
		return &FavoriteListOutput{
			Link: page.LinkHeader,
			Body: ListData[Favorite]{Items: page.Items, Total: page.Total},
		}, nil
	})
}

func listBookings(bookings []dashsvc.Booking, input *ListInput, cursorType, base string) (*BookingListOutput, error) {
	items := make([]Booking, len(bookings))
	for i, b := range bookings {
		items[i] = toHTTPBooking(b)
	}
	page, err := paginate(items, input, cursorType, base, func(b Booking) string { return b.ID })
	if err != nil {
		return nil, err
	}
	return &BookingListOutput{
		Link: page.LinkHeader,
		Body: ListData[Booking]{Items: page.Items, Total: page.Total},
	}, nil
}

func paginate[T any](
	items []T, input *ListInput, cursorType, base string, getID func(T) string,
) (pagination.Page[T], error) {
	cursor, err := pagination.DecodeCursorFor(input.Cursor, cursorType)
	switch {
	case errors.Is(err, pagination.ErrCursorType):
		return pagination.Page[T]{}, huma.Error400BadRequest("cursor type mismatch")
	case err != nil:
		return pagination.Page[T]{}, huma.Error400BadRequest("invalid cursor format")
	}

	if cursor.Value != "" && !slices.ContainsFunc(items, func(item T) bool { return getID(item) == cursor.Value }) {
		return pagination.Page[T]{}, huma.Error400BadRequest("cursor references unknown item")
	}

	return pagination.Paginate(items, pagination.Request{
		Cursor:     cursor,
		Limit:      input.DefaultLimit(),
		CursorType: cursorType,
		BaseURL:    base,
	}, getID), nil
}

func mapServiceError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return huma.Error503ServiceUnavailable("request cancelled")
	}
	applog.LogError(ctx, "dashboard service error", err)
	return huma.Error500InternalServerError("internal error")
}
