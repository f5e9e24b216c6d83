// Package user serves the guest profile at /user.
package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/guest-dashboard/internal/platform/logging"
	"github.com/janisto/guest-dashboard/internal/platform/timeutil"
	usersvc "github.com/janisto/guest-dashboard/internal/service/user"
)

// Register registers profile endpoints for the configured guest.
func Register(api huma.API, svc usersvc.Service, guestID string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/user",
		Summary:     "Get the guest profile",
		Description: "Returns the stored guest profile, or 404 when none has been saved yet.",
		Tags:        []string{"User"},
	}, func(ctx context.Context, _ *UserGetInput) (*UserGetOutput, error) {
		p, err := svc.Get(ctx, guestID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &UserGetOutput{Body: toHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-user",
		Method:      http.MethodPut,
		Path:        "/user",
		Summary:     "Replace the guest profile",
		Description: "Stores the given profile and returns the normalized copy: name and phone trimmed, email trimmed and lowercased.",
		Tags:        []string{"User"},
	}, func(ctx context.Context, input *UserPutInput) (*UserPutOutput, error) {
		p, err := svc.Put(ctx, guestID, usersvc.ReplaceParams{
			Name:  input.Body.Name,
			Email: input.Body.Email,
			Phone: input.Body.Phone,
		})
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &UserPutOutput{Body: toHTTPProfile(p)}, nil
	})
}

func mapServiceError(ctx context.Context, err error) error {
	if errors.Is(err, usersvc.ErrNotFound) {
		return huma.Error404NotFound("profile not found")
	}
	applog.LogError(ctx, "profile store error", err, zap.String("component", "user"))
	return huma.Error500InternalServerError("internal error")
}

func toHTTPProfile(p *usersvc.Profile) Profile {
	return Profile{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		UpdatedAt: timeutil.NewTime(p.UpdatedAt),
	}
}
