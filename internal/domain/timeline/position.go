package timeline

import "time"

// Marker is a single date projected onto the timeline scale. Left is a
// percentage in [0,100] measured from Bounds.Min. Show is false when the
// date is unset or the bounds are degenerate; such markers are not rendered.
type Marker struct {
	Left float64
	Show bool
}

// Span is a date range projected onto the timeline scale, used for the trip
// duration bar between departure and return.
type Span struct {
	Left  float64
	Width float64
	Show  bool
}

// Position projects a date onto the scale. Dates before Min clamp to the
// left edge rather than disappearing; Min maps to 0 and Max to 100, and the
// projection is linear and order-preserving in between.
func (b Bounds) Position(at time.Time) Marker {
	total := b.TotalDays()
	if at.IsZero() || total <= 0 {
		return Marker{}
	}
	left := at.Sub(b.Min).Hours() / 24 / total * 100
	if left < 0 {
		left = 0
	}
	return Marker{Left: left, Show: true}
}

// SpanBetween projects a date range onto the scale. Ranges that start before
// Min clamp to the left edge; a range needs both endpoints to be shown.
func (b Bounds) SpanBetween(start, end time.Time) Span {
	total := b.TotalDays()
	if start.IsZero() || end.IsZero() || total <= 0 {
		return Span{}
	}
	left := start.Sub(b.Min).Hours() / 24 / total * 100
	if left < 0 {
		left = 0
	}
	width := end.Sub(start).Hours() / 24 / total * 100
	if width < 0 {
		width = 0
	}
	return Span{Left: left, Width: width, Show: true}
}
