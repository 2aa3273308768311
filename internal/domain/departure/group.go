// Package departure holds the DepartureGroup entity and its value objects:
// payment milestones with their derivation rules, the validation lifecycle,
// and the deadline urgency classifier. Everything here is pure; persistence
// and transport live in the adapters.
package departure

import (
	"fmt"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
)

// Group is the operational record for one departure of a travel package.
// It tracks the work needed before the group can fly: supplier payments for
// the air and land legs, name-list and rooming-list deadlines, and guide
// assignment.
//
// A group has its own identity; FlightID references the catalog flight it was
// seeded from and never changes. Status and ValidationDate only move through
// MarkValidated.
type Group struct {
	ID            string
	FlightID      string
	DepartureDate time.Time

	Status         Status
	ValidationDate time.Time

	AirSubcontracted bool
	AirSupplier      string
	AirDeposit       Milestone
	AirBalance       Milestone
	NamesDeadline    time.Time

	LandSubcontracted bool
	LandSupplier      string
	LandCurrency      Currency
	LandDeposit       Milestone
	LandBalance       Milestone

	RoomingListDeadline time.Time

	GuideName               string
	GuidePhone              string
	GuideAssignmentDeadline time.Time
}

// NewGroup seeds a pending group for a catalog flight: empty milestones,
// DZD land currency, no deadlines fixed.
func NewGroup(id, flightID string, departureDate time.Time) Group {
	return Group{
		ID:            id,
		FlightID:      flightID,
		DepartureDate: departureDate,
		Status:        StatusPendingValidation,
		LandCurrency:  CurrencyDZD,
		AirDeposit:    NewMilestone(),
		AirBalance:    NewMilestone(),
		LandDeposit:   NewMilestone(),
		LandBalance:   NewMilestone(),
	}
}

// Milestone returns the milestone addressed by key.
// Returns an error wrapping domain.ErrNotFound for unknown keys.
func (g Group) Milestone(key MilestoneKey) (Milestone, error) {
	switch key {
	case KeyAirDeposit:
		return g.AirDeposit, nil
	case KeyAirBalance:
		return g.AirBalance, nil
	case KeyLandDeposit:
		return g.LandDeposit, nil
	case KeyLandBalance:
		return g.LandBalance, nil
	default:
		return Milestone{}, fmt.Errorf("milestone %q: %w", key, domain.ErrNotFound)
	}
}

// WithMilestone returns a copy of the group with the addressed milestone
// replaced. Returns an error wrapping domain.ErrNotFound for unknown keys.
func (g Group) WithMilestone(key MilestoneKey, m Milestone) (Group, error) {
	out := g
	switch key {
	case KeyAirDeposit:
		out.AirDeposit = m
	case KeyAirBalance:
		out.AirBalance = m
	case KeyLandDeposit:
		out.LandDeposit = m
	case KeyLandBalance:
		out.LandBalance = m
	default:
		return Group{}, fmt.Errorf("milestone %q: %w", key, domain.ErrNotFound)
	}
	return out, nil
}

// MarkValidated moves the group to validated and stamps the validation date.
// Validating an already validated group is a conflict; there is no way back
// to pending.
func (g Group) MarkValidated(on time.Time) (Group, error) {
	if g.Status == StatusValidated {
		return Group{}, fmt.Errorf("group %s already validated: %w", g.ID, domain.ErrConflict)
	}
	out := g
	out.Status = StatusValidated
	out.ValidationDate = on
	return out, nil
}

// AirOutstanding returns what is still owed on the air leg: the contracted
// total minus the deposit already due.
func (g Group) AirOutstanding() float64 {
	return g.AirDeposit.TotalAmount - g.AirDeposit.AmountToPay
}

// LandOutstanding returns what is still owed on the land leg.
func (g Group) LandOutstanding() float64 {
	return g.LandDeposit.TotalAmount - g.LandDeposit.AmountToPay
}

// SignificantDates returns every set date that should influence the group's
// timeline window: departure, operational deadlines, the four milestone
// deadlines, and the validation date. Zero dates are included and filtered
// by the timeline package.
func (g Group) SignificantDates() []time.Time {
	return []time.Time{
		g.DepartureDate,
		g.NamesDeadline,
		g.RoomingListDeadline,
		g.GuideAssignmentDeadline,
		g.AirDeposit.Deadline,
		g.AirBalance.Deadline,
		g.LandDeposit.Deadline,
		g.LandBalance.Deadline,
		g.ValidationDate,
	}
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	out := g
	out.AirDeposit = g.AirDeposit.Clone()
	out.AirBalance = g.AirBalance.Clone()
	out.LandDeposit = g.LandDeposit.Clone()
	out.LandBalance = g.LandBalance.Clone()
	return out
}
