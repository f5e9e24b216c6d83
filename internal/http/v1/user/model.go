package user

import (
	"github.com/janisto/guest-dashboard/internal/platform/timeutil"
)

// Profile is the guest profile as stored by the server.
type Profile struct {
	ID        string        `json:"id"        doc:"Guest identifier"      example:"guest"`
	Name      string        `json:"name"      doc:"Display name"          example:"Bob Smith"`
	Email     string        `json:"email"     doc:"Email address"         example:"bob@example.com"`
	Phone     string        `json:"phone"     doc:"Phone number"          example:"555-0100"`
	UpdatedAt timeutil.Time `json:"updatedAt" doc:"Last update timestamp" example:"2025-11-01T10:30:00.000Z"`
}
