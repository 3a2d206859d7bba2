// Package catalog holds the default target-event set and catalog helpers.
package catalog

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dropclock/dropclock/internal/models"
)

// DefaultTitleColor is applied to events created without an explicit color.
const DefaultTitleColor = "#ffffff"

var restartPattern = regexp.MustCompile(`\((\d+)min\)`)

// NewEventID generates a time-based identifier for events added without one.
func NewEventID(now time.Time) string {
	return fmt.Sprintf("game-%d", now.UnixMilli())
}

// FindIndex returns the position of the event with the given id, or -1.
func FindIndex(events []models.TargetEvent, id string) int {
	for i, ev := range events {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

// RestartMinutes extracts N from a utility title like "Be Right Back (10min)".
// The second return is false when the title carries no such marker.
func RestartMinutes(title string) (int, bool) {
	m := restartPattern.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	var minutes int
	if _, err := fmt.Sscanf(m[1], "%d", &minutes); err != nil {
		return 0, false
	}
	return minutes, true
}
