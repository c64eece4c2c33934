// ABOUTME: Common entity contract and validation error type.
// ABOUTME: Shared by User, Workout and Measurement records.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for storage and parsing.
const DateLayout = "2006-01-02"

// Entity is implemented by every persisted record.
type Entity interface {
	// Key returns the surrogate identity, or 0 if the record is not yet stored.
	Key() int64
	// Kind names the record type for logs and metrics.
	Kind() string
}

// ValidationError reports a malformed or out-of-range input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

// Today returns the current local calendar date.
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf truncates t to its calendar date, keeping the local day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// afterDay reports whether date falls on a later calendar day than now.
func afterDay(date, now time.Time) bool {
	return DateOf(date).After(DateOf(now))
}
