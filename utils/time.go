package utils

import (
	"time"

	"github.com/dineopen/reservation-app/config"
)

// AppLocation returns the restaurant's configured timezone, falling back to
// UTC if the name cannot be loaded.
func AppLocation() *time.Location {
	loc, err := time.LoadLocation(config.AppConfig.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
