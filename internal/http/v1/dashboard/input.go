package dashboard

import "github.com/janisto/guest-dashboard/internal/platform/pagination"

// ListInput defines query parameters for the trip lists.
type ListInput struct {
	pagination.Params
}
