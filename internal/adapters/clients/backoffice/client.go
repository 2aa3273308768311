package backoffice

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/blackbird-voyages/ops-engine/internal/domain/catalog"
	"github.com/blackbird-voyages/ops-engine/internal/platform/httpclient"
	"github.com/blackbird-voyages/ops-engine/internal/ports"
)

// Compile-time interface check.
var _ ports.BackofficeClient = (*Client)(nil)

// Client is the outbound adapter for the host backoffice catalog API. It
// implements [ports.BackofficeClient] (read-only package, flight, and
// booking access).
//
// Wire representations are translated to catalog domain types here; HTTP
// errors are mapped to domain errors (ErrNotFound, ErrUnavailable, etc.) by
// [TranslateHTTPError]. The underlying [httpclient.Client] provides circuit
// breaking, retry with exponential backoff, OpenTelemetry tracing, and
// health checking ([ports.HealthChecker]) for every outbound call.
type Client struct {
	req    *requester
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the backoffice
// API root (e.g. "https://backoffice.example.com").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		req:    &requester{client: client, logger: logger},
		logger: logger,
	}
}

// GetPackage fetches a single package with its flights from
// GET /api/v1/packages/{id}. Returns [domain.ErrNotFound] if the backoffice
// returns 404 and an ErrInvalidDate wrap if a flight date on the wire is
// malformed.
func (c *Client) GetPackage(ctx context.Context, id string) (*catalog.Package, error) {
	path := "/api/v1/packages/" + url.PathEscape(id)

	var dto packageDTO
	if err := c.req.get(ctx, path, &dto); err != nil {
		return nil, err
	}
	pkg, err := toDomainPackage(dto)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ListBookings fetches all bookings recorded against a package from
// GET /api/v1/packages/{id}/bookings. Returns [domain.ErrNotFound] if the
// package does not exist.
func (c *Client) ListBookings(ctx context.Context, packageID string) ([]catalog.Booking, error) {
	path := fmt.Sprintf("/api/v1/packages/%s/bookings", url.PathEscape(packageID))

	var dto bookingListDTO
	if err := c.req.get(ctx, path, &dto); err != nil {
		return nil, err
	}

	bookings := make([]catalog.Booking, 0, len(dto.Bookings))
	for _, b := range dto.Bookings {
		bookings = append(bookings, toDomainBooking(b))
	}
	return bookings, nil
}
