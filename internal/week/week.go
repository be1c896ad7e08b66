// Package week holds the deterministic calendar math for ISO week
// identifiers. A week ID names exactly one plan; all derivations run off
// time.Time.ISOWeek so year boundaries resolve to the ISO year, not the
// calendar year.
package week

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the wire format for week start dates.
const DateLayout = "2006-01-02"

var weekIDPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// ID returns the ISO week identifier for t, e.g. "2025-W42".
func ID(t time.Time) string {
	year, wk := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, wk)
}

// MondayOf returns the Monday of t's ISO week, truncated to midnight UTC.
func MondayOf(t time.Time) time.Time {
	t = t.UTC()
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	monday := t.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentID returns the week identifier for the current ISO week.
func CurrentID(now time.Time) string {
	return ID(now)
}

// ParseDate parses a YYYY-MM-DD start date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t in the YYYY-MM-DD wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidID reports whether s is shaped like a week identifier ("2025-W42").
func ValidID(s string) bool {
	return weekIDPattern.MatchString(s)
}
