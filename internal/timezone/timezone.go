package timezone

import "time"

// DefaultTimezone is the display zone used when nothing else is configured.
// Calendar math works on local calendar fields, so "today" must come from
// here rather than UTC.
const DefaultTimezone = "America/Los_Angeles"

var displayZone = DefaultTimezone

// SetDefault overrides the display timezone (from config, at startup).
func SetDefault(tz string) {
	if IsValid(tz) {
		displayZone = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(displayZone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
