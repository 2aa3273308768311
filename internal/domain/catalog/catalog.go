// Package catalog holds read-only views of the host backoffice catalog:
// travel packages, their flights, and confirmed bookings. The engine never
// writes these; they arrive through the backoffice client and feed seeding,
// the dashboard worklist, and the group detail view.
package catalog

import (
	"fmt"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
)

// PackageStatus is the publication state of a travel package.
type PackageStatus string

const (
	PackageDraft     PackageStatus = "draft"
	PackagePublished PackageStatus = "published"
)

// Package is a sellable travel product with its scheduled flights.
type Package struct {
	ID          string
	Name        string
	Code        string
	Destination string
	Status      PackageStatus
	Stock       int
	Flights     []Flight
}

// Flight is one scheduled rotation of a package. ReturnDate may be zero for
// one-way charters.
type Flight struct {
	ID            string
	Airline       string
	DepartureDate time.Time
	ReturnDate    time.Time
}

// Validate checks the flight's calendar coherence.
// Returns an error wrapping domain.ErrInvalidDate when the return precedes
// the departure.
func (f Flight) Validate() error {
	if !f.ReturnDate.IsZero() && !f.DepartureDate.IsZero() && f.ReturnDate.Before(f.DepartureDate) {
		return fmt.Errorf("%w: flight %s returns %s before departing %s",
			domain.ErrInvalidDate, f.ID,
			f.ReturnDate.Format("2006-01-02"), f.DepartureDate.Format("2006-01-02"))
	}
	return nil
}

// Flight returns the flight with the given ID, if present.
func (p Package) Flight(id string) (Flight, bool) {
	for _, f := range p.Flights {
		if f.ID == id {
			return f, true
		}
	}
	return Flight{}, false
}

// Passenger is one traveler extracted from a booking's passport scans.
type Passenger struct {
	FullName       string
	PassportNumber string
	Nationality    string
}

// Booking is a client reservation against a package.
type Booking struct {
	ID         string
	ClientName string
	AgencyName string
	Rooms      int
	Confirmed  bool
	Passengers []Passenger
}
