// Package timeutil holds the wire formats for timestamps and calendar dates.
package timeutil

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used for log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// DateLayout is the calendar-date format used for booking check-in and check-out.
const DateLayout = time.DateOnly

// Time wraps time.Time to marshal as RFC 3339 UTC with millisecond precision.
// JSON null leaves the existing value untouched.
type Time struct {
	time.Time
}

// MarshalJSON implements json.Marshaler with fixed millisecond precision.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(RFC3339Millis) + `"`), nil
}

// UnmarshalJSON accepts any RFC 3339 variant.
func (t *Time) UnmarshalJSON(data []byte) error {
	s, ok := unquote(data)
	if !ok {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("parsing time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// NewTime creates a Time from a standard time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Date is a calendar day without time of day or zone ("2025-11-15").
type Date struct {
	time.Time
}

// MustDate parses a YYYY-MM-DD literal and panics on error. Meant for fixtures.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// NightsUntil counts the nights between d and a later check-out day.
func (d Date) NightsUntil(checkOut Date) int {
	return int(checkOut.Sub(d.Time).Hours() / 24)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, ok := unquote(data)
	if !ok {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalCBOR encodes the same string as MarshalJSON.
func (t Time) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.UTC().Format(RFC3339Millis))
}

func (t *Time) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("parsing time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// MarshalText returns the YYYY-MM-DD form. It shadows the RFC 3339 text
// form promoted from time.Time.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalCBOR encodes the date as a YYYY-MM-DD text string.
func (d Date) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(d.String())
}

func (d *Date) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// unquote strips JSON string quotes; ok is false for null.
func unquote(data []byte) (string, bool) {
	s := string(data)
	if s == "null" {
		return "", false
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s, true
}
