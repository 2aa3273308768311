package opsproject

import (
	"math"
	"sort"
	"time"

	"github.com/blackbird-voyages/ops-engine/internal/domain"
	"github.com/blackbird-voyages/ops-engine/internal/domain/catalog"
	"github.com/blackbird-voyages/ops-engine/internal/domain/departure"
)

// Entry is one row of the operations dashboard: a departure group joined
// with its package's commercial facts and a countdown against the departure
// date. The departure date is classified as critical.
type Entry struct {
	PackageID   string
	PackageName string
	PackageCode string
	Destination string
	Stock       int
	Group       departure.Group
	Countdown   departure.Classification
}

// Groups without a departure date sort after every dated one.
const unscheduledRank = math.MaxInt

// BuildWorklist flattens the given projects into dashboard entries.
//
// Only groups whose package is published appear. Roles that work the
// validation pipeline see every group; other roles only see validated ones.
// Entries sort by days until departure, soonest first, with unscheduled
// departures last. The projection is recomputed on every call; nothing is
// cached.
func BuildWorklist(projects []Project, packages map[string]catalog.Package, role domain.Role, ref time.Time) []Entry {
	entries := make([]Entry, 0, len(projects))
	for _, p := range projects {
		pkg, ok := packages[p.PackageID]
		if !ok || pkg.Status != catalog.PackagePublished {
			continue
		}
		for _, g := range p.Groups {
			if !role.SeesPendingGroups() && g.Status != departure.StatusValidated {
				continue
			}
			entries = append(entries, Entry{
				PackageID:   pkg.ID,
				PackageName: pkg.Name,
				PackageCode: pkg.Code,
				Destination: pkg.Destination,
				Stock:       pkg.Stock,
				Group:       g.Clone(),
				Countdown:   departure.Classify(departure.Deadline{At: g.DepartureDate, Critical: true}, ref),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return rank(entries[i]) < rank(entries[j])
	})
	return entries
}

func rank(e Entry) int {
	if !e.Countdown.HasDeadline {
		return unscheduledRank
	}
	return e.Countdown.Days
}
