package timezone

import (
	"os"
	"time"
)

// DefaultTimezone applies when PLATFORM_TIMEZONE is unset and no explicit
// zone is given.
const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if tz == "" {
		tz = os.Getenv("PLATFORM_TIMEZONE")
	}

	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(""))
}
