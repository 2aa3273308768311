package ports

import (
	"context"

	"github.com/blackbird-voyages/ops-engine/internal/domain/catalog"
)

// BackofficeClient defines the client port for the host backoffice catalog.
// Implemented by the anti-corruption adapter; called by the application layer.
// The engine only ever reads from the catalog.
type BackofficeClient interface {
	// GetPackage returns a single travel package with its flights.
	// Returns domain.ErrNotFound if the package does not exist.
	GetPackage(ctx context.Context, id string) (*catalog.Package, error)

	// ListBookings returns all bookings recorded against a package,
	// confirmed or not. Returns domain.ErrNotFound if the package does
	// not exist.
	ListBookings(ctx context.Context, packageID string) ([]catalog.Booking, error)
}
