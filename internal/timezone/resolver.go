// Package timezone resolves an event's effective deadline for a viewer.
package timezone

import (
	"time"

	"github.com/dropclock/dropclock/internal/models"
)

// Resolve picks the deadline instant and timezone label a viewer should count
// toward. Overrides are matched by exact timezone name; anything else,
// including an unmatched or empty viewer timezone, falls back to the event's
// base pair. Total over arbitrary input.
func Resolve(ev models.TargetEvent, viewerTimezone string) (time.Time, string) {
	for _, ro := range ev.RegionalOverrides {
		if ro.Timezone == viewerTimezone {
			return ro.Instant, ro.Timezone
		}
	}
	return ev.Deadline, ev.TimezoneLabel
}
