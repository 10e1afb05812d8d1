package timezone

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"tzconv/shared/constant"
	"tzconv/shared/failure"
)

// inputLayouts are tried in order. Fractional seconds are accepted by RFC3339Nano.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// Parse parses a UTC timestamp ending in "Z" into an instant.
func Parse(raw string) (time.Time, error) {
	if raw == constant.Empty || !strings.HasSuffix(raw, constant.UTCDesignator) {
		return time.Time{}, failure.NotUTCSuffix(raw)
	}

	var lastErr error

	for _, layout := range inputLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed.UTC(), nil
		}

		lastErr = err
	}

	log.Debug().Err(lastErr).Str("timestamp", raw).Msg("Failed to parse timestamp")

	return time.Time{}, failure.InvalidTimestampFormat(raw, lastErr)
}

// Load returns the location for zone. "Local" and the empty string are refused
// so that output never depends on the machine's own zone.
func Load(zone string) (*time.Location, error) {
	if zone == constant.Empty || strings.EqualFold(zone, "local") {
		return nil, failure.UnrecognizedZone(zone, zone)
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Debug().Err(err).Str(constant.LogFieldZone, zone).Msg("Failed to load time zone")

		return nil, failure.UnrecognizedZone(zone, zone)
	}

	return loc, nil
}

// Format renders t in zone as "2006-01-02 15:04:05 MST".
func Format(t time.Time, zone string) (string, error) {
	loc, err := Load(zone)
	if err != nil {
		return constant.Empty, err
	}

	return t.In(loc).Format(constant.DisplayLayout), nil
}
