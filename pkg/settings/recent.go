package settings

import (
	"math"
	"strings"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// MaxRecentLocations caps the persisted history.
const MaxRecentLocations = 12

// CoordEpsilon is the same-place coordinate tolerance in degrees. Geocoder
// results for one city drift a little between lookups, so entries within
// this distance collapse into one history row.
const CoordEpsilon = 0.05

// RecentLocation is one entry of the location history.
type RecentLocation struct {
	Name      string  `toml:"name"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Country   string  `toml:"country,omitempty"`
	Admin1    string  `toml:"admin1,omitempty"`
	Timezone  string  `toml:"timezone,omitempty"`
}

// FromLocation converts a resolved location into a history entry.
func FromLocation(loc weather.Location) RecentLocation {
	return RecentLocation{
		Name:      loc.Name,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Country:   loc.Country,
		Admin1:    loc.Admin1,
		Timezone:  loc.Timezone,
	}
}

// ToLocation rebuilds a fetchable location from a history entry. Population
// is not stored in history.
func (r RecentLocation) ToLocation() weather.Location {
	return weather.Location{
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Country:   r.Country,
		Admin1:    r.Admin1,
		Timezone:  r.Timezone,
	}
}

// DisplayName formats the entry for the city picker list.
func (r RecentLocation) DisplayName() string {
	switch {
	case r.Admin1 != "" && r.Country != "":
		return r.Name + ", " + r.Admin1 + ", " + r.Country
	case r.Country != "":
		return r.Name + ", " + r.Country
	default:
		return r.Name
	}
}

// SamePlace reports whether two entries describe the same physical place:
// case-insensitive name and country, coordinates within CoordEpsilon.
func (r RecentLocation) SamePlace(other RecentLocation) bool {
	return strings.EqualFold(r.Name, other.Name) &&
		strings.EqualFold(r.Country, other.Country) &&
		math.Abs(r.Latitude-other.Latitude) < CoordEpsilon &&
		math.Abs(r.Longitude-other.Longitude) < CoordEpsilon
}

// Remember prepends entry to history, removing any existing entry for the
// same place and truncating to MaxRecentLocations.
func Remember(history []RecentLocation, entry RecentLocation) []RecentLocation {
	kept := make([]RecentLocation, 0, len(history)+1)
	kept = append(kept, entry)
	for _, existing := range history {
		if !existing.SamePlace(entry) {
			kept = append(kept, existing)
		}
	}
	if len(kept) > MaxRecentLocations {
		kept = kept[:MaxRecentLocations]
	}
	return kept
}
