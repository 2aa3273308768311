package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
	"github.com/blackbird-voyages/ops-engine/internal/domain/departure"
	"github.com/blackbird-voyages/ops-engine/internal/domain/timeline"
)

const (
	msgRequired = "is required"
	msgBadDay   = "must be a YYYY-MM-DD date"
)

// CreateProjectRequest represents the JSON body for seeding an operations
// project from a catalog package.
type CreateProjectRequest struct {
	PackageID string `json:"package_id"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	if strings.TrimSpace(r.PackageID) == "" {
		return &domain.ValidationError{Fields: map[string]string{"package_id": msgRequired}}
	}
	return nil
}

// UpdateNotesRequest represents the JSON body for replacing a project's
// operational notes. An empty string clears the notes.
type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

// Validate checks that the notes field is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateNotesRequest) Validate() error {
	if r.Notes == nil {
		return &domain.ValidationError{Fields: map[string]string{"notes": msgRequired}}
	}
	return nil
}

// UpdateGroupRequest represents the JSON body for a partial departure group
// update. All fields are optional; omitted fields are left unchanged. Date
// fields take YYYY-MM-DD strings, and an empty string clears the date.
type UpdateGroupRequest struct {
	DepartureDate *string `json:"departure_date,omitempty"`

	AirSubcontracted *bool   `json:"air_subcontracted,omitempty"`
	AirSupplier      *string `json:"air_supplier,omitempty"`
	NamesDeadline    *string `json:"names_deadline,omitempty"`

	LandSubcontracted *bool   `json:"land_subcontracted,omitempty"`
	LandSupplier      *string `json:"land_supplier,omitempty"`
	LandCurrency      *string `json:"land_currency,omitempty"`

	RoomingListDeadline *string `json:"rooming_list_deadline,omitempty"`

	GuideName               *string `json:"guide_name,omitempty"`
	GuidePhone              *string `json:"guide_phone,omitempty"`
	GuideAssignmentDeadline *string `json:"guide_assignment_deadline,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateGroupRequest) Validate() error {
	_, err := r.ToPatch()
	return err
}

// ToPatch converts the request to a domain GroupPatch, parsing date strings.
// Returns a *domain.ValidationError when a date does not parse or the
// currency is unknown.
func (r *UpdateGroupRequest) ToPatch() (departure.GroupPatch, error) {
	fields := make(map[string]string)

	patch := departure.GroupPatch{
		AirSubcontracted:  r.AirSubcontracted,
		AirSupplier:       r.AirSupplier,
		LandSubcontracted: r.LandSubcontracted,
		LandSupplier:      r.LandSupplier,
		GuideName:         r.GuideName,
		GuidePhone:        r.GuidePhone,
	}

	patch.DepartureDate = parseDayField(fields, "departure_date", r.DepartureDate)
	patch.NamesDeadline = parseDayField(fields, "names_deadline", r.NamesDeadline)
	patch.RoomingListDeadline = parseDayField(fields, "rooming_list_deadline", r.RoomingListDeadline)
	patch.GuideAssignmentDeadline = parseDayField(fields, "guide_assignment_deadline", r.GuideAssignmentDeadline)

	if r.LandCurrency != nil {
		cur := departure.Currency(*r.LandCurrency)
		if !cur.IsValid() {
			fields["land_currency"] = fmt.Sprintf("invalid: %q", *r.LandCurrency)
		}
		patch.LandCurrency = &cur
	}

	if len(fields) > 0 {
		return departure.GroupPatch{}, &domain.ValidationError{Fields: fields}
	}
	return patch, nil
}

// UpdateMilestoneRequest represents the JSON body for a partial payment
// milestone update. All fields are optional. The deadline takes a YYYY-MM-DD
// string; an empty string clears it.
type UpdateMilestoneRequest struct {
	Deadline    *string  `json:"deadline,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty"`
	Percentage  *float64 `json:"percentage,omitempty"`
	AmountToPay *float64 `json:"amount_to_pay,omitempty"`
	Status      *string  `json:"status,omitempty"`
	ReceiptURL  *string  `json:"receipt_url,omitempty"`
}

// Validate checks that any provided fields have valid values. Amount range
// checks live on the domain patch and run when the patch is applied.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateMilestoneRequest) Validate() error {
	_, err := r.ToPatch()
	return err
}

// ToPatch converts the request to a domain MilestonePatch.
// Returns a *domain.ValidationError when the deadline does not parse or the
// payment status is unknown.
func (r *UpdateMilestoneRequest) ToPatch() (departure.MilestonePatch, error) {
	fields := make(map[string]string)

	patch := departure.MilestonePatch{
		TotalAmount: r.TotalAmount,
		Percentage:  r.Percentage,
		AmountToPay: r.AmountToPay,
		ReceiptURL:  r.ReceiptURL,
	}

	patch.Deadline = parseDayField(fields, "deadline", r.Deadline)

	if r.Status != nil {
		status := departure.PaymentStatus(*r.Status)
		if !status.IsValid() {
			fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
		}
		patch.Status = &status
	}

	if len(fields) > 0 {
		return departure.MilestonePatch{}, &domain.ValidationError{Fields: fields}
	}
	return patch, nil
}

// parseDayField parses an optional YYYY-MM-DD string into a date pointer.
// Nil stays nil, the empty string becomes the zero time (clearing the date),
// and parse failures are recorded against the field name.
func parseDayField(fields map[string]string, name string, raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	if *raw == "" {
		var zero time.Time
		return &zero
	}
	day, err := timeline.ParseDay(*raw)
	if err != nil {
		fields[name] = msgBadDay
		return nil
	}
	return &day
}
