package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const layout = "15:04"

// TimeString represents a time of day in "HH:MM" form.
// It is the wire, storage and comparison format for slot start times.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(t.Format(layout)), nil
}

// String returns the "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero returns true if the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (ts TimeString) Validate() error {
	if _, err := time.Parse(layout, string(ts)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// Minutes returns the number of minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(layout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by m minutes.
// The result wraps around midnight.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	t, err := time.Parse(layout, string(ts))
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(t.Add(time.Duration(m) * time.Minute).Format(layout)), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
// Comparison on the "HH:MM" form is lexicographic and correct.
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Value implements driver.Valuer so the value can be written to a TIME column.
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as
// "HH:MM:SS" strings or time.Time values depending on the driver path.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (ts *TimeString) scanString(s string) error {
	for _, l := range []string{"15:04:05", layout} {
		if t, err := time.Parse(l, s); err == nil {
			*ts = NewTimeString(t)
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into TimeString", s)
}
