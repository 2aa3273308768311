package ports

import (
	"context"

	"github.com/blackbird-voyages/ops-engine/internal/domain/opsproject"
)

// ProjectRepository defines the persistence port for operations projects,
// keyed by package ID. Save replaces the stored project wholesale; callers
// build the new state through the aggregate's copy-on-write methods and hand
// it over in one piece. Concurrent writers are last-write-wins.
type ProjectRepository interface {
	// Get returns the project for a package.
	// Returns domain.ErrNotFound if no project is stored.
	Get(ctx context.Context, packageID string) (*opsproject.Project, error)

	// List returns every stored project in unspecified order.
	List(ctx context.Context) ([]opsproject.Project, error)

	// Save stores the project, replacing any previous state for the same
	// package.
	Save(ctx context.Context, p *opsproject.Project) error

	// Delete removes a package's project.
	// Returns domain.ErrNotFound if no project is stored.
	Delete(ctx context.Context, packageID string) error
}
