package departure

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
)

// GroupPatch is a partial update to a departure group. Nil fields are left
// unchanged. Setting a date pointer to the zero time clears that date.
// Status and ValidationDate are not patchable; they only move through
// MarkValidated.
type GroupPatch struct {
	DepartureDate *time.Time

	AirSubcontracted *bool
	AirSupplier      *string
	NamesDeadline    *time.Time

	LandSubcontracted *bool
	LandSupplier      *string
	LandCurrency      *Currency

	RoomingListDeadline *time.Time

	GuideName               *string
	GuidePhone              *string
	GuideAssignmentDeadline *time.Time
}

// Validate checks the patch before any of it is applied.
func (p GroupPatch) Validate() error {
	fields := make(map[string]string)

	if p.LandCurrency != nil && !p.LandCurrency.IsValid() {
		fields["land_currency"] = fmt.Sprintf("invalid: %q", *p.LandCurrency)
	}
	if p.GuideName != nil && *p.GuideName != "" && strings.TrimSpace(*p.GuideName) == "" {
		fields["guide_name"] = "must not be blank"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ApplyPatch merges a patch into the group and returns the result; the
// receiver is never mutated. An invalid patch is rejected whole.
func (g Group) ApplyPatch(p GroupPatch) (Group, error) {
	if err := p.Validate(); err != nil {
		return Group{}, err
	}

	out := g
	if p.DepartureDate != nil {
		out.DepartureDate = *p.DepartureDate
	}
	if p.AirSubcontracted != nil {
		out.AirSubcontracted = *p.AirSubcontracted
	}
	if p.AirSupplier != nil {
		out.AirSupplier = *p.AirSupplier
	}
	if p.NamesDeadline != nil {
		out.NamesDeadline = *p.NamesDeadline
	}
	if p.LandSubcontracted != nil {
		out.LandSubcontracted = *p.LandSubcontracted
	}
	if p.LandSupplier != nil {
		out.LandSupplier = *p.LandSupplier
	}
	if p.LandCurrency != nil {
		out.LandCurrency = *p.LandCurrency
	}
	if p.RoomingListDeadline != nil {
		out.RoomingListDeadline = *p.RoomingListDeadline
	}
	if p.GuideName != nil {
		out.GuideName = *p.GuideName
	}
	if p.GuidePhone != nil {
		out.GuidePhone = *p.GuidePhone
	}
	if p.GuideAssignmentDeadline != nil {
		out.GuideAssignmentDeadline = *p.GuideAssignmentDeadline
	}
	return out, nil
}
