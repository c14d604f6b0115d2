package apod

import (
	"time"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/dates"
)

// spanDays is how far a single-sided range widens on the archive path.
const spanDays = 8

// DateRange is the requested day window. Nil sides are open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) IsEmpty() bool {
	return r.Start == nil && r.End == nil
}

// Normalize swaps the ends when both are present and inverted, so
// callers always see start <= end.
func (r DateRange) Normalize() DateRange {
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return DateRange{Start: r.End, End: r.Start}
	}
	return r
}

// expand widens a single-sided range to an 8-day span. Two-sided and
// empty ranges pass through unchanged.
func (r DateRange) expand() DateRange {
	switch {
	case r.Start != nil && r.End == nil:
		end := dates.AddDays(*r.Start, spanDays)
		return DateRange{Start: r.Start, End: &end}
	case r.Start == nil && r.End != nil:
		start := dates.AddDays(*r.End, -spanDays)
		return DateRange{Start: &start, End: r.End}
	}
	return r
}

// Contains reports whether day falls inside the inclusive range. Open
// sides are unbounded.
func (r DateRange) Contains(day time.Time) bool {
	if r.Start != nil && day.Before(*r.Start) {
		return false
	}
	if r.End != nil && day.After(*r.End) {
		return false
	}
	return true
}

// Label renders the range for the info line and empty-result message,
// with "any" standing in for an open side.
func (r DateRange) Label() string {
	return sideLabel(r.Start) + " — " + sideLabel(r.End)
}

func sideLabel(t *time.Time) string {
	if t == nil {
		return "any"
	}
	return dates.FormatYMD(*t)
}
