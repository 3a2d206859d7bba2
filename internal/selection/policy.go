// Package selection picks the next upcoming target event.
package selection

import (
	"time"

	"github.com/dropclock/dropclock/internal/models"
	"github.com/dropclock/dropclock/internal/timezone"
)

// NextUpcoming returns the catalog index of the game event whose resolved
// deadline is the smallest strictly positive distance from now. Utility
// events never qualify. Ties break by catalog order. The second return is
// false when no game deadline lies in the future; callers must then leave
// their current selection unchanged.
//
// Pure: safe to re-run at any time.
func NextUpcoming(catalog []models.TargetEvent, viewerTimezone string, now time.Time) (int, bool) {
	best := -1
	var bestDelta time.Duration
	for i, ev := range catalog {
		if ev.Category != models.CategoryGame {
			continue
		}
		deadline, _ := timezone.Resolve(ev, viewerTimezone)
		delta := deadline.Sub(now)
		if delta <= 0 {
			continue
		}
		if best < 0 || delta < bestDelta {
			best = i
			bestDelta = delta
		}
	}
	return best, best >= 0
}
