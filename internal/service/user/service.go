// Package user stores the guest's profile on the server side.
package user

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Service errors
var ErrNotFound = errors.New("profile not found")

// Profile represents stored profile data.
type Profile struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	UpdatedAt time.Time
}

// ReplaceParams carries the full profile sent by the client. All fields are
// written; there is no partial update.
type ReplaceParams struct {
	Name  string
	Email string
	Phone string
}

// Normalize returns the canonical form stored and echoed back to clients:
// name and phone are trimmed, email is trimmed and lowercased.
func (p ReplaceParams) Normalize() ReplaceParams {
	return ReplaceParams{
		Name:  strings.TrimSpace(p.Name),
		Email: strings.ToLower(strings.TrimSpace(p.Email)),
		Phone: strings.TrimSpace(p.Phone),
	}
}

// Service defines profile operations.
//
// Put is an upsert: it creates the profile when missing and otherwise
// replaces it wholesale. Implementations must store Normalize()d values.
type Service interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Put(ctx context.Context, userID string, params ReplaceParams) (*Profile, error)
}
