// Package routes mounts every API operation under the /api prefix.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/guest-dashboard/internal/http/v1/dashboard"
	"github.com/janisto/guest-dashboard/internal/http/v1/user"
	dashsvc "github.com/janisto/guest-dashboard/internal/service/dashboard"
	usersvc "github.com/janisto/guest-dashboard/internal/service/user"
)

// Prefix is the mount path of the API.
const Prefix = "/api"

// Services bundles what the handlers need.
type Services struct {
	Users   usersvc.Service
	Trips   dashsvc.Service
	GuestID string
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, svc Services) {
	grp := huma.NewGroup(api, Prefix)

	user.Register(grp, svc.Users, svc.GuestID)
	dashboard.Register(grp, svc.Trips, svc.GuestID, Prefix)
}
