// Package kernel provides the shared value objects of the domain model.
// It defines the two temporal types every record builds on: Timestamp, an
// instant in time, and Date, a calendar date. The two are distinct types
// with distinct wire formats and must never be interchanged.
package kernel

import (
	"fmt"
	"time"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
)

const (
	// TimestampWireFormat is the wire representation of a Timestamp.
	// Fractional seconds are preserved when present.
	TimestampWireFormat = time.RFC3339Nano

	// DateWireFormat is the wire representation of a Date.
	DateWireFormat = "2006-01-02"
)

// ErrTimestampIsNotConstructed indicates a zero-value Timestamp that bypassed
// NewTimestamp or ParseTimestamp.
var ErrTimestampIsNotConstructed = errs.NewValueIsRequiredError(
	"Timestamp must be created via NewTimestamp or ParseTimestamp")

// ErrDateIsNotConstructed indicates a zero-value Date that bypassed NewDate
// or ParseDate.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"Date must be created via NewDate or ParseDate")

// Timestamp is an immutable instant in time. The zero value is invalid and
// fails Validate; construct instances via NewTimestamp or ParseTimestamp.
type Timestamp struct {
	t time.Time
}

// NewTimestamp creates a Timestamp from a time.Time. The monotonic clock
// reading is stripped so that a Timestamp always round-trips through its
// wire representation unchanged.
func NewTimestamp(t time.Time) (Timestamp, error) {
	if t.IsZero() {
		return Timestamp{}, errs.NewValueIsInvalidError("timestamp must not be the zero instant")
	}
	return Timestamp{t: t.Round(0)}, nil
}

// ParseTimestamp parses the wire representation of an instant (RFC 3339,
// with or without fractional seconds). The returned error is the raw parse
// failure; callers wrap it with field context.
func ParseTimestamp(value string) (Timestamp, error) {
	t, err := time.Parse(TimestampWireFormat, value)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t: t}, nil
}

// Validate reports whether the Timestamp was properly constructed.
func (ts Timestamp) Validate() error {
	if ts.t.IsZero() {
		return ErrTimestampIsNotConstructed
	}
	return nil
}

// Time returns the instant as a time.Time.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// IsZero reports whether the Timestamp is the invalid zero value.
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

// Equal reports whether two Timestamps represent the same instant.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.t.Equal(other.t)
}

// String returns the wire representation of the Timestamp.
func (ts Timestamp) String() string {
	return ts.t.Format(TimestampWireFormat)
}

// Date is an immutable calendar date with no time-of-day component. The zero
// value is invalid and fails Validate; construct instances via NewDate or
// ParseDate.
type Date struct {
	t time.Time
}

// NewDate creates a Date from a calendar year, month and day. Impossible
// dates such as February 30 are rejected rather than normalized.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if y, m, d := t.Date(); y != year || m != month || d != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, month, day))
	}
	return Date{t: t}, nil
}

// ParseDate parses the wire representation of a calendar date (2006-01-02).
// Timestamp-formatted input is rejected: an instant is not a date. The
// returned error is the raw parse failure; callers wrap it with field
// context.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateWireFormat, value)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// Validate reports whether the Date was properly constructed.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.t.Year()
}

// Month returns the calendar month.
func (d Date) Month() time.Month {
	return d.t.Month()
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.t.Day()
}

// IsZero reports whether the Date is the invalid zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether two Dates represent the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// String returns the wire representation of the Date.
func (d Date) String() string {
	return d.t.Format(DateWireFormat)
}
