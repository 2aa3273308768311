package ports

import (
	"context"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
	"github.com/blackbird-voyages/ops-engine/internal/domain/catalog"
	"github.com/blackbird-voyages/ops-engine/internal/domain/departure"
	"github.com/blackbird-voyages/ops-engine/internal/domain/opsproject"
	"github.com/blackbird-voyages/ops-engine/internal/domain/timeline"
)

// OpsService defines the service port for departure operations tracking.
// Implemented by the application layer; called by inbound adapters (handlers).
type OpsService interface {
	// CreateProject seeds an operations project for a catalog package, one
	// pending departure group per flight.
	// Returns domain.ErrNotFound if the package does not exist and
	// domain.ErrConflict if the package already has a project.
	CreateProject(ctx context.Context, packageID string) (*opsproject.Project, error)

	// GetProject returns the operations project for a package.
	// Returns domain.ErrNotFound if no project exists.
	GetProject(ctx context.Context, packageID string) (*opsproject.Project, error)

	// UpdateNotes replaces the project's free-text notes.
	// Returns domain.ErrNotFound if no project exists.
	UpdateNotes(ctx context.Context, packageID, notes string) (*opsproject.Project, error)

	// DeleteProject removes a package's project and all its groups.
	// Returns domain.ErrNotFound if no project exists.
	DeleteProject(ctx context.Context, packageID string) error

	// ListDepartures builds the dashboard worklist for the given role:
	// published packages only, soonest departures first, undated last.
	// Returns domain.ErrValidation for unknown roles.
	ListDepartures(ctx context.Context, role domain.Role) ([]opsproject.Entry, error)

	// GetGroupDetail assembles the full detail view for one departure group:
	// classified deadlines, timeline bounds and markers, outstanding
	// balances, and the passenger manifest from confirmed bookings.
	// Returns domain.ErrNotFound if the project or group does not exist.
	GetGroupDetail(ctx context.Context, packageID, groupID string) (*GroupDetail, error)

	// UpdateGroup applies a partial update to a departure group.
	// Returns domain.ErrNotFound if the project or group does not exist and
	// domain.ErrValidation for invalid patches.
	UpdateGroup(ctx context.Context, packageID, groupID string, patch departure.GroupPatch) (*departure.Group, error)

	// UpdateMilestone applies a partial update to one of a group's payment
	// milestones, recomputing the derived amount when the patch touches the
	// total or the percentage.
	// Returns domain.ErrNotFound for unknown project, group, or milestone
	// and domain.ErrInvalidAmount for amounts outside their legal range.
	UpdateMilestone(ctx context.Context, packageID, groupID string, key departure.MilestoneKey, patch departure.MilestonePatch) (*departure.Group, error)

	// ValidateGroup moves a pending group to validated and stamps the
	// validation date. The transition is one-way.
	// Returns domain.ErrConflict if the group is already validated.
	ValidateGroup(ctx context.Context, packageID, groupID string) (*departure.Group, error)
}

// DeadlineStatus is one classified deadline row of the group detail view.
type DeadlineStatus struct {
	Name           string
	At             time.Time
	Classification departure.Classification
}

// TimelineMarker is one dated event positioned on the group timeline.
type TimelineMarker struct {
	Name   string
	At     time.Time
	Marker timeline.Marker
}

// GroupDetail aggregates everything the group detail screen needs in one
// payload so the host renders it without further calls.
type GroupDetail struct {
	Group           departure.Group
	Package         catalog.Package
	Flight          catalog.Flight
	FlightKnown     bool
	Deadlines       []DeadlineStatus
	Bounds          timeline.Bounds
	TripSpan        timeline.Span
	Markers         []TimelineMarker
	Manifest        catalog.Manifest
	AirOutstanding  float64
	LandOutstanding float64
}
