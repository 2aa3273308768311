// Package opsproject holds the operations aggregate: one project per travel
// package, carrying a departure group for each scheduled flight, plus the
// dashboard worklist projection built from them.
package opsproject

import (
	"fmt"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
	"github.com/blackbird-voyages/ops-engine/internal/domain/catalog"
	"github.com/blackbird-voyages/ops-engine/internal/domain/departure"
)

// Project is the operations record for one travel package. Groups are value
// copies; mutations go through WithGroup so a stored project is replaced
// wholesale, never edited in place.
type Project struct {
	ID        string
	PackageID string
	Notes     string
	Groups    []departure.Group
}

// New seeds an operations project for a package: one pending departure group
// per flight, each with its own generated ID and the flight kept as a
// foreign key. Flights with incoherent dates fail the whole seeding.
func New(packageID string, flights []catalog.Flight, newID func() string) (Project, error) {
	groups := make([]departure.Group, 0, len(flights))
	for _, f := range flights {
		if err := f.Validate(); err != nil {
			return Project{}, err
		}
		groups = append(groups, departure.NewGroup(newID(), f.ID, f.DepartureDate))
	}
	return Project{
		ID:        "ops-" + packageID,
		PackageID: packageID,
		Groups:    groups,
	}, nil
}

// Group returns the departure group with the given ID.
// Returns an error wrapping domain.ErrNotFound when absent.
func (p Project) Group(groupID string) (departure.Group, error) {
	for _, g := range p.Groups {
		if g.ID == groupID {
			return g.Clone(), nil
		}
	}
	return departure.Group{}, fmt.Errorf("group %s: %w", groupID, domain.ErrNotFound)
}

// WithGroup returns a copy of the project with the matching group replaced.
// Returns an error wrapping domain.ErrNotFound when no group has g's ID.
func (p Project) WithGroup(g departure.Group) (Project, error) {
	out := p.Clone()
	for i := range out.Groups {
		if out.Groups[i].ID == g.ID {
			out.Groups[i] = g.Clone()
			return out, nil
		}
	}
	return Project{}, fmt.Errorf("group %s: %w", g.ID, domain.ErrNotFound)
}

// WithNotes returns a copy of the project with the notes replaced.
func (p Project) WithNotes(notes string) Project {
	out := p.Clone()
	out.Notes = notes
	return out
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.Groups = make([]departure.Group, len(p.Groups))
	for i, g := range p.Groups {
		out.Groups[i] = g.Clone()
	}
	return out
}
