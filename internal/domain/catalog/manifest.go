package catalog

// Manifest is the passenger and rooming summary for a departure, built from
// confirmed bookings only. It backs the names list and rooming list a group
// owes its suppliers.
type Manifest struct {
	Passengers []Passenger
	TotalRooms int
	Bookings   int
}

// BuildManifest aggregates confirmed bookings into a manifest. Options and
// canceled bookings are ignored.
func BuildManifest(bookings []Booking) Manifest {
	var m Manifest
	for _, b := range bookings {
		if !b.Confirmed {
			continue
		}
		m.Bookings++
		m.TotalRooms += b.Rooms
		m.Passengers = append(m.Passengers, b.Passengers...)
	}
	return m
}
