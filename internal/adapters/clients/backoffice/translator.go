package backoffice

import (
	"fmt"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain/catalog"
	"github.com/blackbird-voyages/ops-engine/internal/domain/timeline"
)

// Booking statuses on the backoffice wire. Anything but confirmed counts as
// unconfirmed for manifest purposes.
const bookingStatusConfirmed = "confirmed"

// toDomainPackage translates a wire package into the catalog type.
// Fails with an ErrInvalidDate wrap when a flight date cannot be parsed.
func toDomainPackage(dto packageDTO) (catalog.Package, error) {
	flights := make([]catalog.Flight, 0, len(dto.Flights))
	for _, f := range dto.Flights {
		flight, err := toDomainFlight(f)
		if err != nil {
			return catalog.Package{}, fmt.Errorf("package %s: %w", dto.ID, err)
		}
		flights = append(flights, flight)
	}

	status := catalog.PackageStatus(dto.Status)
	return catalog.Package{
		ID:          dto.ID,
		Name:        dto.Name,
		Code:        dto.Code,
		Destination: dto.Destination,
		Status:      status,
		Stock:       dto.Stock,
		Flights:     flights,
	}, nil
}

func toDomainFlight(dto flightDTO) (catalog.Flight, error) {
	dep, err := parseOptionalDay(dto.DepartureDate)
	if err != nil {
		return catalog.Flight{}, fmt.Errorf("flight %s departure: %w", dto.ID, err)
	}
	ret, err := parseOptionalDay(dto.ReturnDate)
	if err != nil {
		return catalog.Flight{}, fmt.Errorf("flight %s return: %w", dto.ID, err)
	}
	return catalog.Flight{
		ID:            dto.ID,
		Airline:       dto.Airline,
		DepartureDate: dep,
		ReturnDate:    ret,
	}, nil
}

// toDomainBooking translates a wire booking into the catalog type.
func toDomainBooking(dto bookingDTO) catalog.Booking {
	passengers := make([]catalog.Passenger, 0, len(dto.Passengers))
	for _, p := range dto.Passengers {
		passengers = append(passengers, catalog.Passenger{
			FullName:       p.FullName,
			PassportNumber: p.PassportNumber,
			Nationality:    p.Nationality,
		})
	}
	return catalog.Booking{
		ID:         dto.ID,
		ClientName: dto.ClientName,
		AgencyName: dto.AgencyName,
		Rooms:      dto.Rooms,
		Confirmed:  dto.Status == bookingStatusConfirmed,
		Passengers: passengers,
	}
}

// parseOptionalDay treats the empty string as the zero time.
func parseOptionalDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return timeline.ParseDay(s)
}
