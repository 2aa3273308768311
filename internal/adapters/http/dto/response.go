// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/blackbird-voyages/ops-engine/internal/domain/catalog"
	"github.com/blackbird-voyages/ops-engine/internal/domain/departure"
	"github.com/blackbird-voyages/ops-engine/internal/domain/opsproject"
	"github.com/blackbird-voyages/ops-engine/internal/domain/timeline"
	"github.com/blackbird-voyages/ops-engine/internal/ports"
)

// MilestoneResponse represents one payment milestone in HTTP responses.
// Dates are YYYY-MM-DD strings; unset dates are omitted.
type MilestoneResponse struct {
	Deadline    string   `json:"deadline,omitempty"`
	TotalAmount float64  `json:"total_amount"`
	Percentage  *float64 `json:"percentage,omitempty"`
	AmountToPay float64  `json:"amount_to_pay"`
	Source      string   `json:"source"`
	Status      string   `json:"status"`
	ReceiptURL  string   `json:"receipt_url,omitempty"`
}

// ToMilestoneResponse converts a domain Milestone to an HTTP response DTO.
func ToMilestoneResponse(m departure.Milestone) MilestoneResponse {
	return MilestoneResponse{
		Deadline:    timeline.FormatDay(m.Deadline),
		TotalAmount: m.TotalAmount,
		Percentage:  m.Percentage,
		AmountToPay: m.AmountToPay,
		Source:      string(m.Source),
		Status:      m.Status.String(),
		ReceiptURL:  m.ReceiptURL,
	}
}

// GroupResponse represents a single departure group in HTTP responses.
type GroupResponse struct {
	ID             string `json:"id"`
	FlightID       string `json:"flight_id"`
	DepartureDate  string `json:"departure_date,omitempty"`
	Status         string `json:"status"`
	ValidationDate string `json:"validation_date,omitempty"`

	AirSubcontracted bool              `json:"air_subcontracted"`
	AirSupplier      string            `json:"air_supplier,omitempty"`
	AirDeposit       MilestoneResponse `json:"air_deposit"`
	AirBalance       MilestoneResponse `json:"air_balance"`
	NamesDeadline    string            `json:"names_deadline,omitempty"`

	LandSubcontracted bool              `json:"land_subcontracted"`
	LandSupplier      string            `json:"land_supplier,omitempty"`
	LandCurrency      string            `json:"land_currency"`
	LandDeposit       MilestoneResponse `json:"land_deposit"`
	LandBalance       MilestoneResponse `json:"land_balance"`

	RoomingListDeadline string `json:"rooming_list_deadline,omitempty"`

	GuideName               string `json:"guide_name,omitempty"`
	GuidePhone              string `json:"guide_phone,omitempty"`
	GuideAssignmentDeadline string `json:"guide_assignment_deadline,omitempty"`
}

// ToGroupResponse converts a domain Group to an HTTP response DTO.
func ToGroupResponse(g *departure.Group) GroupResponse {
	return GroupResponse{
		ID:             g.ID,
		FlightID:       g.FlightID,
		DepartureDate:  timeline.FormatDay(g.DepartureDate),
		Status:         g.Status.String(),
		ValidationDate: timeline.FormatDay(g.ValidationDate),

		AirSubcontracted: g.AirSubcontracted,
		AirSupplier:      g.AirSupplier,
		AirDeposit:       ToMilestoneResponse(g.AirDeposit),
		AirBalance:       ToMilestoneResponse(g.AirBalance),
		NamesDeadline:    timeline.FormatDay(g.NamesDeadline),

		LandSubcontracted: g.LandSubcontracted,
		LandSupplier:      g.LandSupplier,
		LandCurrency:      string(g.LandCurrency),
		LandDeposit:       ToMilestoneResponse(g.LandDeposit),
		LandBalance:       ToMilestoneResponse(g.LandBalance),

		RoomingListDeadline: timeline.FormatDay(g.RoomingListDeadline),

		GuideName:               g.GuideName,
		GuidePhone:              g.GuidePhone,
		GuideAssignmentDeadline: timeline.FormatDay(g.GuideAssignmentDeadline),
	}
}

// ProjectResponse represents an operations project in HTTP responses.
type ProjectResponse struct {
	ID        string          `json:"id"`
	PackageID string          `json:"package_id"`
	Notes     string          `json:"notes,omitempty"`
	Groups    []GroupResponse `json:"groups"`
}

// ToProjectResponse converts a domain Project to an HTTP response DTO.
func ToProjectResponse(p *opsproject.Project) ProjectResponse {
	groups := make([]GroupResponse, len(p.Groups))
	for i := range p.Groups {
		groups[i] = ToGroupResponse(&p.Groups[i])
	}
	return ProjectResponse{
		ID:        p.ID,
		PackageID: p.PackageID,
		Notes:     p.Notes,
		Groups:    groups,
	}
}

// ClassificationResponse represents a deadline urgency classification.
// Days is only meaningful when has_deadline is true.
type ClassificationResponse struct {
	Band        string `json:"band"`
	Label       string `json:"label"`
	Days        int    `json:"days"`
	HasDeadline bool   `json:"has_deadline"`
}

// ToClassificationResponse converts a domain Classification to an HTTP
// response DTO.
func ToClassificationResponse(c departure.Classification) ClassificationResponse {
	return ClassificationResponse{
		Band:        string(c.Band),
		Label:       c.Label,
		Days:        c.Days,
		HasDeadline: c.HasDeadline,
	}
}

// WorklistEntryResponse represents one row of the operations dashboard.
type WorklistEntryResponse struct {
	PackageID   string                 `json:"package_id"`
	PackageName string                 `json:"package_name"`
	PackageCode string                 `json:"package_code,omitempty"`
	Destination string                 `json:"destination,omitempty"`
	Stock       int                    `json:"stock"`
	Group       GroupResponse          `json:"group"`
	Countdown   ClassificationResponse `json:"countdown"`
}

// WorklistResponse represents the full dashboard worklist.
type WorklistResponse struct {
	Departures []WorklistEntryResponse `json:"departures"`
	Count      int                     `json:"count"`
}

// ToWorklistResponse converts worklist entries to an HTTP list response DTO.
func ToWorklistResponse(entries []opsproject.Entry) WorklistResponse {
	items := make([]WorklistEntryResponse, len(entries))
	for i := range entries {
		e := &entries[i]
		items[i] = WorklistEntryResponse{
			PackageID:   e.PackageID,
			PackageName: e.PackageName,
			PackageCode: e.PackageCode,
			Destination: e.Destination,
			Stock:       e.Stock,
			Group:       ToGroupResponse(&e.Group),
			Countdown:   ToClassificationResponse(e.Countdown),
		}
	}
	return WorklistResponse{Departures: items, Count: len(items)}
}

// PackageSummaryResponse represents the catalog facts of a package included
// in the group detail view.
type PackageSummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Destination string `json:"destination,omitempty"`
	Status      string `json:"status"`
	Stock       int    `json:"stock"`
}

// FlightResponse represents a catalog flight in HTTP responses.
type FlightResponse struct {
	ID            string `json:"id"`
	Airline       string `json:"airline,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	ReturnDate    string `json:"return_date,omitempty"`
}

// DeadlineStatusResponse represents one classified deadline row of the group
// detail view.
type DeadlineStatusResponse struct {
	Name           string                 `json:"name"`
	At             string                 `json:"at,omitempty"`
	Classification ClassificationResponse `json:"classification"`
}

// BoundsResponse represents the timeline window of the group detail view.
type BoundsResponse struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// SpanResponse represents a date range projected onto the timeline scale.
// Left and width are percentages in [0,100].
type SpanResponse struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
	Show  bool    `json:"show"`
}

// TimelineMarkerResponse represents one dated event positioned on the group
// timeline. Left is a percentage in [0,100].
type TimelineMarkerResponse struct {
	Name string  `json:"name"`
	At   string  `json:"at"`
	Left float64 `json:"left"`
}

// PassengerResponse represents one manifest passenger.
type PassengerResponse struct {
	FullName       string `json:"full_name"`
	PassportNumber string `json:"passport_number,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
}

// ManifestResponse represents the passenger and rooming summary built from
// confirmed bookings.
type ManifestResponse struct {
	Passengers []PassengerResponse `json:"passengers"`
	TotalRooms int                 `json:"total_rooms"`
	Bookings   int                 `json:"bookings"`
}

// ToManifestResponse converts a domain Manifest to an HTTP response DTO.
func ToManifestResponse(m catalog.Manifest) ManifestResponse {
	passengers := make([]PassengerResponse, len(m.Passengers))
	for i, p := range m.Passengers {
		passengers[i] = PassengerResponse{
			FullName:       p.FullName,
			PassportNumber: p.PassportNumber,
			Nationality:    p.Nationality,
		}
	}
	return ManifestResponse{
		Passengers: passengers,
		TotalRooms: m.TotalRooms,
		Bookings:   m.Bookings,
	}
}

// GroupDetailResponse aggregates everything the group detail screen renders.
type GroupDetailResponse struct {
	Group           GroupResponse            `json:"group"`
	Package         PackageSummaryResponse   `json:"package"`
	Flight          *FlightResponse          `json:"flight,omitempty"`
	Deadlines       []DeadlineStatusResponse `json:"deadlines"`
	Bounds          BoundsResponse           `json:"bounds"`
	TripSpan        SpanResponse             `json:"trip_span"`
	Markers         []TimelineMarkerResponse `json:"markers"`
	Manifest        ManifestResponse         `json:"manifest"`
	AirOutstanding  float64                  `json:"air_outstanding"`
	LandOutstanding float64                  `json:"land_outstanding"`
}

// ToGroupDetailResponse converts a ports.GroupDetail to an HTTP response DTO.
func ToGroupDetailResponse(d *ports.GroupDetail) GroupDetailResponse {
	deadlines := make([]DeadlineStatusResponse, len(d.Deadlines))
	for i, row := range d.Deadlines {
		deadlines[i] = DeadlineStatusResponse{
			Name:           row.Name,
			At:             timeline.FormatDay(row.At),
			Classification: ToClassificationResponse(row.Classification),
		}
	}

	markers := make([]TimelineMarkerResponse, len(d.Markers))
	for i, m := range d.Markers {
		markers[i] = TimelineMarkerResponse{
			Name: m.Name,
			At:   timeline.FormatDay(m.At),
			Left: m.Marker.Left,
		}
	}

	resp := GroupDetailResponse{
		Group: ToGroupResponse(&d.Group),
		Package: PackageSummaryResponse{
			ID:          d.Package.ID,
			Name:        d.Package.Name,
			Code:        d.Package.Code,
			Destination: d.Package.Destination,
			Status:      string(d.Package.Status),
			Stock:       d.Package.Stock,
		},
		Deadlines: deadlines,
		Bounds: BoundsResponse{
			Min: timeline.FormatDay(d.Bounds.Min),
			Max: timeline.FormatDay(d.Bounds.Max),
		},
		TripSpan: SpanResponse{
			Left:  d.TripSpan.Left,
			Width: d.TripSpan.Width,
			Show:  d.TripSpan.Show,
		},
		Markers:         markers,
		Manifest:        ToManifestResponse(d.Manifest),
		AirOutstanding:  d.AirOutstanding,
		LandOutstanding: d.LandOutstanding,
	}

	if d.FlightKnown {
		resp.Flight = &FlightResponse{
			ID:            d.Flight.ID,
			Airline:       d.Flight.Airline,
			DepartureDate: timeline.FormatDay(d.Flight.DepartureDate),
			ReturnDate:    timeline.FormatDay(d.Flight.ReturnDate),
		}
	}

	return resp
}
