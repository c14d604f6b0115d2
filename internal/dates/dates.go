package dates

import (
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// Layouts tried when input is not plain YYYY-MM-DD. Ordered from most to
// least specific so timestamps win over bare dates.
var flexibleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// Parse normalizes a date-like string to a UTC calendar day. Strict
// YYYY-MM-DD is the fast path; anything else runs through the flexible
// layout list and gets truncated to its day. Returns false when nothing
// matches.
func Parse(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dayLayout, s, time.UTC); err == nil {
		return t, true
	}
	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Truncate(t), true
		}
	}
	return time.Time{}, false
}

// Truncate drops the time-of-day component, keeping the UTC day.
func Truncate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatYMD renders a zero-padded YYYY-MM-DD.
func FormatYMD(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// FormatDisplay renders a long-form date ("October 30, 2025"), falling
// back to the raw input when it cannot be parsed.
func FormatDisplay(raw string) string {
	t, ok := Parse(raw)
	if !ok {
		return raw
	}
	return t.Format("January 2, 2006")
}

// AddDays shifts by whole calendar days in UTC.
func AddDays(t time.Time, n int) time.Time {
	return Truncate(t).AddDate(0, 0, n)
}
