package timezone

import (
	"sort"
	"strings"
)

type Alias struct {
	Abbreviation string
	Zone         string
}

var aliases = map[string]string{
	"IST": "Asia/Kolkata",
	"EST": "America/New_York",
	"EDT": "America/New_York",
	"PST": "America/Los_Angeles",
	"PDT": "America/Los_Angeles",
	"CST": "America/Chicago",
	"CDT": "America/Chicago",
	"SGT": "Asia/Singapore",
	"JST": "Asia/Tokyo",
}

// Resolve maps a known abbreviation (any case) to its canonical zone and
// returns every other input unchanged.
func Resolve(input string) string {
	if zone, ok := aliases[strings.ToUpper(input)]; ok {
		return zone
	}

	return input
}

// Aliases returns the alias table sorted by abbreviation.
func Aliases() []Alias {
	res := make([]Alias, 0, len(aliases))
	for abbr, zone := range aliases {
		res = append(res, Alias{Abbreviation: abbr, Zone: zone})
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Abbreviation < res[j].Abbreviation
	})

	return res
}
