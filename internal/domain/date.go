package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateOnly matches plain calendar-date input from clients.
const dateOnly = "2006-01-02"

// fallbackLayouts are tried, in order, for date-like input that is not a
// plain calendar date.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseDate parses client-supplied date input and truncates it to local
// midnight. Plain "YYYY-MM-DD" strings are interpreted as a local calendar
// date rather than UTC, so a user logging "2024-03-01" gets March 1 in
// their server's zone regardless of offset.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, NewValidationError("completedDate", "required")
	}

	if t, err := time.ParseInLocation(dateOnly, input, time.Local); err == nil {
		return t, nil
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return Midnight(t.Local()), nil
		}
	}

	return time.Time{}, NewValidationError("completedDate", fmt.Sprintf("unrecognized date %q", input))
}

// NormalizeDate resolves optional date input: empty means today. The result
// is always truncated to local midnight.
func NormalizeDate(input string) (time.Time, error) {
	if strings.TrimSpace(input) == "" {
		return Midnight(time.Now()), nil
	}
	return ParseDate(input)
}

// Midnight truncates t to 00:00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from a to b,
// ignoring time-of-day and location. Rebuilding both dates in UTC keeps
// the count stable across DST transitions and across values scanned in
// different zones.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
