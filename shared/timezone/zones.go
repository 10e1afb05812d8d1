package timezone

import (
	"slices"

	"tzconv/shared/constant"
)

type NamedZone struct {
	Label string
	Zone  string
}

var defaultZones = [...]NamedZone{
	{Label: "India", Zone: "Asia/Kolkata"},
	{Label: "US Eastern", Zone: "America/New_York"},
	{Label: "US Central", Zone: "America/Chicago"},
	{Label: "US Pacific", Zone: "America/Los_Angeles"},
	{Label: "Singapore", Zone: "Asia/Singapore"},
	{Label: "Japan", Zone: "Asia/Tokyo"},
}

// DefaultZones returns a copy of the default zone set in display order.
func DefaultZones() []NamedZone {
	return slices.Clone(defaultZones[:])
}

// FallbackZones is the catalog used when the host zone database cannot be enumerated:
// UTC plus every default zone, sorted and deduplicated.
func FallbackZones() []string {
	zones := []string{constant.ZoneUTC}
	for _, z := range defaultZones {
		zones = append(zones, z.Zone)
	}

	slices.Sort(zones)

	return slices.Compact(zones)
}
