package timezone_test

import (
	"testing"
	"time"

	"github.com/dropclock/dropclock/internal/models"
	"github.com/dropclock/dropclock/internal/timezone"
)

func TestResolveNoOverridesReturnsBasePair(t *testing.T) {
	base := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	ev := models.TargetEvent{
		ID:            "marathon",
		Deadline:      base,
		TimezoneLabel: "UTC",
		Category:      models.CategoryGame,
	}

	for _, viewer := range []string{"UTC", "Europe/London", "America/Los_Angeles", "", "not-a-zone"} {
		got, label := timezone.Resolve(ev, viewer)
		if !got.Equal(base) || label != "UTC" {
			t.Fatalf("viewer %q: got (%v, %q), want base pair", viewer, got, label)
		}
	}
}

func TestResolveMatchingOverrideWins(t *testing.T) {
	base := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	laInstant := time.Date(2026, 2, 5, 8, 0, 0, 0, time.UTC)
	ev := models.TargetEvent{
		ID:            "nioh-3",
		Deadline:      base,
		TimezoneLabel: "Europe/London",
		Category:      models.CategoryGame,
		RegionalOverrides: []models.RegionalOverride{
			{Timezone: "Asia/Tokyo", Instant: base},
			{Timezone: "America/Los_Angeles", Instant: laInstant},
		},
	}

	got, label := timezone.Resolve(ev, "America/Los_Angeles")
	if !got.Equal(laInstant) {
		t.Fatalf("expected override instant %v, got %v", laInstant, got)
	}
	if label != "America/Los_Angeles" {
		t.Fatalf("expected override label, got %q", label)
	}
}

func TestResolveUnmatchedOverrideFallsBack(t *testing.T) {
	base := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	ev := models.TargetEvent{
		Deadline:      base,
		TimezoneLabel: "Europe/London",
		RegionalOverrides: []models.RegionalOverride{
			{Timezone: "Asia/Tokyo", Instant: base.Add(9 * time.Hour)},
		},
	}

	got, label := timezone.Resolve(ev, "Australia/Sydney")
	if !got.Equal(base) || label != "Europe/London" {
		t.Fatalf("expected base pair fallback, got (%v, %q)", got, label)
	}
}

func TestResolveHonorsDivergentOverrideInstants(t *testing.T) {
	// Override instants are not assumed equal across regions.
	base := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	tokyo := base.Add(-15 * time.Hour)
	ev := models.TargetEvent{
		Deadline:      base,
		TimezoneLabel: "UTC",
		RegionalOverrides: []models.RegionalOverride{
			{Timezone: "Asia/Tokyo", Instant: tokyo},
		},
	}

	got, _ := timezone.Resolve(ev, "Asia/Tokyo")
	if !got.Equal(tokyo) {
		t.Fatalf("expected stored override instant %v, got %v", tokyo, got)
	}
}
