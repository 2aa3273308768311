package backoffice

// packageDTO matches the backoffice Package schema. Dates travel as
// YYYY-MM-DD strings; empty means not set.
type packageDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Code        string      `json:"code"`
	Destination string      `json:"destination"`
	Status      string      `json:"status"`
	Stock       int         `json:"stock"`
	Flights     []flightDTO `json:"flights"`
}

// flightDTO matches the backoffice Flight schema.
type flightDTO struct {
	ID            string `json:"id"`
	Airline       string `json:"airline"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
}

// bookingDTO matches the backoffice Booking schema. Passengers carry the
// data extracted from passport scans.
type bookingDTO struct {
	ID         string         `json:"id"`
	ClientName string         `json:"client_name"`
	AgencyName string         `json:"agency_name,omitempty"`
	Rooms      int            `json:"number_of_rooms"`
	Status     string         `json:"status"`
	Passengers []passengerDTO `json:"passengers"`
}

// passengerDTO matches the backoffice Passenger schema.
type passengerDTO struct {
	FullName       string `json:"full_name"`
	PassportNumber string `json:"passport_number"`
	Nationality    string `json:"nationality"`
}

// bookingListDTO matches the backoffice BookingListResponse schema.
type bookingListDTO struct {
	Bookings []bookingDTO `json:"bookings"`
	Count    int          `json:"count"`
}
