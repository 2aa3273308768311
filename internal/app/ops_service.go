// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/app/fanout"
	"github.com/blackbird-voyages/ops-engine/internal/domain"
	"github.com/blackbird-voyages/ops-engine/internal/domain/catalog"
	"github.com/blackbird-voyages/ops-engine/internal/domain/departure"
	"github.com/blackbird-voyages/ops-engine/internal/domain/opsproject"
	"github.com/blackbird-voyages/ops-engine/internal/domain/timeline"
	"github.com/blackbird-voyages/ops-engine/internal/ports"
)

// Compile-time check that OpsService implements ports.OpsService.
var _ ports.OpsService = (*OpsService)(nil)

// OpsService implements ports.OpsService. It orchestrates the departure
// tracking domain against the project repository and the backoffice catalog
// client; all business rules live in the domain packages.
type OpsService struct {
	repo           ports.ProjectRepository
	backoffice     ports.BackofficeClient
	logger         *slog.Logger
	catalogWorkers int

	// Overridable for tests.
	now   func() time.Time
	newID func() string
}

// NewOpsService creates an OpsService. catalogWorkers bounds the concurrent
// catalog lookups performed while building the dashboard worklist.
func NewOpsService(repo ports.ProjectRepository, backoffice ports.BackofficeClient, catalogWorkers int, logger *slog.Logger) *OpsService {
	if catalogWorkers < 1 {
		catalogWorkers = 1
	}
	return &OpsService{
		repo:           repo,
		backoffice:     backoffice,
		logger:         logger,
		catalogWorkers: catalogWorkers,
		now:            func() time.Time { return timeline.Truncate(time.Now()) },
		newID:          newGroupID,
	}
}

// newGroupID returns a random group identifier. Group identity is
// engine-owned; flight IDs are kept separately as foreign keys.
func newGroupID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return "grp-" + hex.EncodeToString(b)
}

// CreateProject seeds an operations project for a catalog package.
func (s *OpsService) CreateProject(ctx context.Context, packageID string) (*opsproject.Project, error) {
	s.logger.InfoContext(ctx, "creating operations project", slog.String("package_id", packageID))

	if _, err := s.repo.Get(ctx, packageID); err == nil {
		return nil, fmt.Errorf("package %s already has an operations project: %w", packageID, domain.ErrConflict)
	}

	pkg, err := s.backoffice.GetPackage(ctx, packageID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch package",
			slog.String("operation", "CreateProject"),
			slog.String("package_id", packageID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching package: %w", err)
	}

	proj, err := opsproject.New(pkg.ID, pkg.Flights, s.newID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to seed departure groups",
			slog.String("operation", "CreateProject"),
			slog.String("package_id", packageID),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := s.repo.Save(ctx, &proj); err != nil {
		s.logger.ErrorContext(ctx, "failed to save project",
			slog.String("operation", "CreateProject"),
			slog.String("package_id", packageID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "operations project created",
		slog.String("package_id", packageID),
		slog.Int("groups", len(proj.Groups)),
	)
	return &proj, nil
}

// GetProject returns the operations project for a package.
func (s *OpsService) GetProject(ctx context.Context, packageID string) (*opsproject.Project, error) {
	s.logger.InfoContext(ctx, "fetching operations project", slog.String("package_id", packageID))

	proj, err := s.repo.Get(ctx, packageID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch project",
			slog.String("operation", "GetProject"),
			slog.String("package_id", packageID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return proj, nil
}

// UpdateNotes replaces the project's free-text notes.
func (s *OpsService) UpdateNotes(ctx context.Context, packageID, notes string) (*opsproject.Project, error) {
	s.logger.InfoContext(ctx, "updating project notes", slog.String("package_id", packageID))

	proj, err := s.repo.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}

	updated := proj.WithNotes(notes)
	if err := s.repo.Save(ctx, &updated); err != nil {
		s.logger.ErrorContext(ctx, "failed to save project",
			slog.String("operation", "UpdateNotes"),
			slog.String("package_id", packageID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &updated, nil
}

// DeleteProject removes a package's project and all its groups.
func (s *OpsService) DeleteProject(ctx context.Context, packageID string) error {
	s.logger.InfoContext(ctx, "deleting operations project", slog.String("package_id", packageID))

	if err := s.repo.Delete(ctx, packageID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete project",
			slog.String("operation", "DeleteProject"),
			slog.String("package_id", packageID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// ListDepartures builds the dashboard worklist for the given role. Catalog
// lookups fan out with bounded concurrency; projects whose package cannot be
// fetched are skipped so one bad package does not blank the whole board.
func (s *OpsService) ListDepartures(ctx context.Context, role domain.Role) ([]opsproject.Entry, error) {
	s.logger.InfoContext(ctx, "building departures worklist", slog.String("role", role.String()))

	if !role.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"role": fmt.Sprintf("invalid: %q", role),
		}}
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListDepartures"),
			slog.Any("error", err),
		)
		return nil, err
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.PackageID
	}

	results := fanout.Run(ctx, s.catalogWorkers, ids, func(ctx context.Context, id string) (*catalog.Package, error) {
		return s.backoffice.GetPackage(ctx, id)
	})

	packages := make(map[string]catalog.Package, len(results))
	for i, r := range results {
		if r.Err != nil {
			s.logger.WarnContext(ctx, "skipping package on worklist",
				slog.String("operation", "ListDepartures"),
				slog.String("package_id", ids[i]),
				slog.Any("error", r.Err),
			)
			continue
		}
		packages[r.Value.ID] = *r.Value
	}

	return opsproject.BuildWorklist(projects, packages, role, s.now()), nil
}

// GetGroupDetail assembles the detail view for one departure group.
func (s *OpsService) GetGroupDetail(ctx context.Context, packageID, groupID string) (*ports.GroupDetail, error) {
	s.logger.InfoContext(ctx, "fetching group detail",
		slog.String("package_id", packageID),
		slog.String("group_id", groupID),
	)

	proj, err := s.repo.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}
	group, err := proj.Group(groupID)
	if err != nil {
		return nil, err
	}

	pkg, err := s.backoffice.GetPackage(ctx, packageID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch package",
			slog.String("operation", "GetGroupDetail"),
			slog.String("package_id", packageID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching package: %w", err)
	}
	flight, flightKnown := pkg.Flight(group.FlightID)

	// The manifest is best-effort: the detail view stays useful when the
	// booking feed is down.
	var manifest catalog.Manifest
	if bookings, err := s.backoffice.ListBookings(ctx, packageID); err != nil {
		s.logger.WarnContext(ctx, "booking feed unavailable, omitting manifest",
			slog.String("operation", "GetGroupDetail"),
			slog.String("package_id", packageID),
			slog.Any("error", err),
		)
	} else {
		manifest = catalog.BuildManifest(bookings)
	}

	ref := s.now()
	deadlines := classifyDeadlines(group, ref)

	significant := group.SignificantDates()
	if flightKnown {
		significant = append(significant, flight.ReturnDate)
	}
	bounds := timeline.Compute(significant, ref, group.ValidationDate)

	return &ports.GroupDetail{
		Group:           group,
		Package:         *pkg,
		Flight:          flight,
		FlightKnown:     flightKnown,
		Deadlines:       deadlines,
		Bounds:          bounds,
		TripSpan:        bounds.SpanBetween(flight.DepartureDate, flight.ReturnDate),
		Markers:         buildMarkers(group, bounds, ref),
		Manifest:        manifest,
		AirOutstanding:  group.AirOutstanding(),
		LandOutstanding: group.LandOutstanding(),
	}, nil
}

// UpdateGroup applies a partial update to a departure group.
func (s *OpsService) UpdateGroup(ctx context.Context, packageID, groupID string, patch departure.GroupPatch) (*departure.Group, error) {
	s.logger.InfoContext(ctx, "updating departure group",
		slog.String("package_id", packageID),
		slog.String("group_id", groupID),
	)

	return s.mutateGroup(ctx, "UpdateGroup", packageID, groupID, func(g departure.Group) (departure.Group, error) {
		return g.ApplyPatch(patch)
	})
}

// UpdateMilestone applies a partial update to one of a group's payment
// milestones.
func (s *OpsService) UpdateMilestone(ctx context.Context, packageID, groupID string, key departure.MilestoneKey, patch departure.MilestonePatch) (*departure.Group, error) {
	s.logger.InfoContext(ctx, "updating payment milestone",
		slog.String("package_id", packageID),
		slog.String("group_id", groupID),
		slog.String("milestone", key.String()),
	)

	return s.mutateGroup(ctx, "UpdateMilestone", packageID, groupID, func(g departure.Group) (departure.Group, error) {
		m, err := g.Milestone(key)
		if err != nil {
			return departure.Group{}, err
		}
		updated, err := m.Apply(patch)
		if err != nil {
			return departure.Group{}, err
		}
		return g.WithMilestone(key, updated)
	})
}

// ValidateGroup moves a pending group to validated.
func (s *OpsService) ValidateGroup(ctx context.Context, packageID, groupID string) (*departure.Group, error) {
	s.logger.InfoContext(ctx, "validating departure group",
		slog.String("package_id", packageID),
		slog.String("group_id", groupID),
	)

	return s.mutateGroup(ctx, "ValidateGroup", packageID, groupID, func(g departure.Group) (departure.Group, error) {
		return g.MarkValidated(s.now())
	})
}

// mutateGroup runs the load-mutate-replace-save cycle shared by every group
// mutation. The stored project is replaced wholesale; nothing is persisted
// when mutate fails.
func (s *OpsService) mutateGroup(ctx context.Context, op, packageID, groupID string, mutate func(departure.Group) (departure.Group, error)) (*departure.Group, error) {
	proj, err := s.repo.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}
	group, err := proj.Group(groupID)
	if err != nil {
		return nil, err
	}

	mutated, err := mutate(group)
	if err != nil {
		return nil, err
	}

	updated, err := proj.WithGroup(mutated)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, &updated); err != nil {
		s.logger.ErrorContext(ctx, "failed to save project",
			slog.String("operation", op),
			slog.String("package_id", packageID),
			slog.String("group_id", groupID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &mutated, nil
}
