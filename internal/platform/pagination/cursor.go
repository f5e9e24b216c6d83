package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	// ErrInvalidCursor indicates the cursor could not be decoded.
	ErrInvalidCursor = errors.New("invalid cursor format")
	// ErrCursorType indicates a cursor minted for another collection.
	ErrCursorType = errors.New("cursor type mismatch")
)

// Cursor is an opaque position in a collection.
type Cursor struct {
	Type  string // collection identifier ("upcoming", "favorite", ...)
	Value string // ID of the last item already returned
}

// Encode returns a URL-safe opaque Base64 representation.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Type + ":" + c.Value))
}

// DecodeCursor parses a URL-safe Base64 cursor string. The empty string is the zero cursor.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	typ, value, ok := strings.Cut(string(b), ":")
	if !ok {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Type: typ, Value: value}, nil
}

// DecodeCursorFor decodes s and checks it belongs to the collection named cursorType.
func DecodeCursorFor(s, cursorType string) (Cursor, error) {
	c, err := DecodeCursor(s)
	if err != nil {
		return Cursor{}, err
	}
	if c.Type != "" && c.Type != cursorType {
		return Cursor{}, ErrCursorType
	}
	return c, nil
}
