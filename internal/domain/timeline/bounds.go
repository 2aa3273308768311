package timeline

import "time"

// Bounds is the visible window of a departure timeline. Min and Max are
// inclusive UTC midnights; Min is always the first day of a month and Max the
// last day of a month, so rendered timelines start and end on month edges.
type Bounds struct {
	Min time.Time
	Max time.Time
}

// Compute derives display bounds from the dates that matter for a group.
//
// significant carries every date worth showing (departure, deadlines,
// milestone deadlines, validation date); zero entries are ignored. ref is the
// observation date and is always part of the window. validationDate is the
// zero time for groups still pending validation.
//
// For validated groups the window starts one month before the validation
// date; for pending groups it starts two months before the earliest date, so
// upcoming preparation work is visible. The window always ends at the end of
// the month after the latest date. With no significant dates at all the
// window defaults to roughly three months either side of ref.
func Compute(significant []time.Time, ref, validationDate time.Time) Bounds {
	dates := make([]time.Time, 0, len(significant)+1)
	for _, d := range significant {
		if !d.IsZero() {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return Bounds{Min: monthStart(ref, -3), Max: monthEnd(ref, 3)}
	}
	dates = append(dates, ref)

	earliest, latest := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}

	var min time.Time
	if !validationDate.IsZero() {
		min = monthStart(validationDate, -1)
	} else {
		min = monthStart(earliest, -2)
	}
	return Bounds{Min: min, Max: monthEnd(latest, 1)}
}

// TotalDays returns the width of the window in days.
func (b Bounds) TotalDays() float64 {
	return b.Max.Sub(b.Min).Hours() / 24
}

// monthStart returns the first day of t's month shifted by offset months.
func monthStart(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

// monthEnd returns the last day of t's month shifted by offset months.
// Day zero of the following month normalizes to the wanted month's last day.
func monthEnd(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offset)+1, 0, 0, 0, 0, 0, time.UTC)
}
