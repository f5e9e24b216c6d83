package profilesync

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned for a field name outside name, email, phone.
	ErrUnknownField = errors.New("unknown profile field")
	// ErrNotEditing is returned by SaveEdit outside edit mode.
	ErrNotEditing = errors.New("profile is not being edited")
	// ErrMalformedProfile marks a remote profile without a name.
	ErrMalformedProfile = errors.New("malformed profile payload")
)

// Field names an editable profile field.
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

// ParseField validates a field name.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldEmail, FieldPhone:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// Profile is the guest's editable identity record.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DefaultProfile is shown until the remote service answers.
func DefaultProfile() Profile {
	return Profile{
		Name:  "Guest User",
		Email: "guest@example.com",
		Phone: "",
	}
}

func (p *Profile) set(f Field, value string) {
	switch f {
	case FieldName:
		p.Name = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	}
}

// Remote is the profile service ProfileSync synchronizes with.
//
// GetProfile returns an error when no usable profile is available, including
// a profile without a name. PutProfile returns the server's canonical copy.
type Remote interface {
	GetProfile(ctx context.Context) (Profile, error)
	PutProfile(ctx context.Context, p Profile) (Profile, error)
}
