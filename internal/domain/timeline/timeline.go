// Package timeline provides the calendar arithmetic behind the operations
// screens: day-precision countdowns, display bounds for departure timelines,
// and the projection of dates onto a 0-100 horizontal scale.
//
// All dates are UTC midnights. The zero time.Time means "not set" and every
// function in this package treats it that way.
package timeline

import (
	"fmt"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
)

// DayFormat is the wire format for calendar dates (ISO 8601 date only).
const DayFormat = "2006-01-02"

// day is the duration of one calendar day on the UTC timeline.
const day = 24 * time.Hour

// Day builds the UTC midnight for a calendar date.
func Day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC midnight.
// Returns an error wrapping domain.ErrInvalidDate on malformed input.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", domain.ErrInvalidDate, s)
	}
	return t.UTC(), nil
}

// FormatDay renders a date as YYYY-MM-DD. The zero time renders as "".
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DayFormat)
}

// Truncate normalizes an arbitrary instant to its UTC midnight.
func Truncate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysRemaining returns the whole number of days from ref until deadline,
// rounding partial days up. Negative when the deadline has passed, zero when
// it is today. Both arguments are expected to be UTC midnights.
func DaysRemaining(deadline, ref time.Time) int {
	diff := deadline.Sub(ref)
	days := int(diff / day)
	if diff%day > 0 {
		days++
	}
	return days
}
