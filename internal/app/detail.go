package app

import (
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain/departure"
	"github.com/blackbird-voyages/ops-engine/internal/domain/timeline"
	"github.com/blackbird-voyages/ops-engine/internal/ports"
)

// classifyDeadlines produces the deadline rows of the group detail view in
// display order. The departure date is the critical one; milestone rows
// classify as payments and count as done once paid.
func classifyDeadlines(g departure.Group, ref time.Time) []ports.DeadlineStatus {
	rows := []struct {
		name     string
		deadline departure.Deadline
	}{
		{"departure", departure.Deadline{At: g.DepartureDate, Critical: true}},
		{"names_list", departure.Deadline{At: g.NamesDeadline}},
		{"air_deposit", paymentDeadline(g.AirDeposit)},
		{"air_balance", paymentDeadline(g.AirBalance)},
		{"rooming_list", departure.Deadline{At: g.RoomingListDeadline}},
		{"land_deposit", paymentDeadline(g.LandDeposit)},
		{"land_balance", paymentDeadline(g.LandBalance)},
		{"guide_assignment", departure.Deadline{At: g.GuideAssignmentDeadline, Completed: g.GuideName != ""}},
	}

	out := make([]ports.DeadlineStatus, 0, len(rows))
	for _, r := range rows {
		out = append(out, ports.DeadlineStatus{
			Name:           r.name,
			At:             r.deadline.At,
			Classification: departure.Classify(r.deadline, ref),
		})
	}
	return out
}

func paymentDeadline(m departure.Milestone) departure.Deadline {
	return departure.Deadline{
		At:        m.Deadline,
		Payment:   true,
		Completed: m.Status == departure.PaymentPaid,
	}
}

// buildMarkers positions the group's dated events on the timeline. Unset
// dates come back with Show=false and are dropped.
func buildMarkers(g departure.Group, bounds timeline.Bounds, ref time.Time) []ports.TimelineMarker {
	candidates := []struct {
		name string
		at   time.Time
	}{
		{"today", ref},
		{"validation", g.ValidationDate},
		{"departure", g.DepartureDate},
		{"names_list", g.NamesDeadline},
		{"air_deposit", g.AirDeposit.Deadline},
		{"air_balance", g.AirBalance.Deadline},
		{"rooming_list", g.RoomingListDeadline},
		{"land_deposit", g.LandDeposit.Deadline},
		{"land_balance", g.LandBalance.Deadline},
		{"guide_assignment", g.GuideAssignmentDeadline},
	}

	out := make([]ports.TimelineMarker, 0, len(candidates))
	for _, c := range candidates {
		m := bounds.Position(c.at)
		if !m.Show {
			continue
		}
		out = append(out, ports.TimelineMarker{Name: c.name, At: c.at, Marker: m})
	}
	return out
}
