package store_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dropclock/dropclock/internal/models"
	"github.com/dropclock/dropclock/internal/store"
)

type stopRecorder struct {
	stops int
}

func (r *stopRecorder) Stop() { r.stops++ }

func game(id string, deadline time.Time) models.TargetEvent {
	return models.TargetEvent{
		ID:            id,
		Title:         id,
		TitleColor:    "#ffffff",
		Deadline:      deadline,
		TimezoneLabel: "UTC",
		Category:      models.CategoryGame,
	}
}

func newStore(t *testing.T, defaults []models.TargetEvent) (*store.Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return store.New(clock, "UTC", defaults), clock
}

func TestNewSelectsSoonestUpcomingGame(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newStore(t, []models.TargetEvent{
		game("far", now.Add(48*time.Hour)),
		game("near", now.Add(time.Hour)),
	})
	if got := s.Snapshot().ActiveIndex; got != 1 {
		t.Fatalf("active index = %d, want 1", got)
	}
}

func TestNewKeepsIndexZeroWhenAllElapsed(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newStore(t, []models.TargetEvent{
		game("a", now.Add(-time.Hour)),
		game("b", now.Add(-time.Minute)),
	})
	if got := s.Snapshot().ActiveIndex; got != 0 {
		t.Fatalf("active index = %d, want 0", got)
	}
}

func TestRemoveEventClampsActiveIndex(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newStore(t, []models.TargetEvent{
		game("a", now.Add(3*time.Hour)),
		game("b", now.Add(2*time.Hour)),
		game("c", now.Add(time.Hour)),
	})
	s.SetActiveIndex(2)

	if !s.RemoveEvent(2) {
		t.Fatal("expected removal to succeed")
	}
	snap := s.Snapshot()
	if len(snap.Catalog) != 2 {
		t.Fatalf("catalog length = %d, want 2", len(snap.Catalog))
	}
	if snap.ActiveIndex != 1 {
		t.Fatalf("active index = %d, want clamped to 1", snap.ActiveIndex)
	}
}

func TestRemoveEventGuards(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newStore(t, []models.TargetEvent{game("only", now.Add(time.Hour))})

	if s.RemoveEvent(0) {
		t.Fatal("removing the last remaining event must be rejected")
	}
	if s.RemoveEvent(-1) || s.RemoveEvent(5) {
		t.Fatal("out-of-range removal must be rejected")
	}
}

func TestAddEventAppendsAndSelects(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newStore(t, []models.TargetEvent{game("a", now.Add(time.Hour))})

	id := s.AddEvent("Custom Timer", now.Add(2*time.Hour), "", models.CategoryGame, "")
	if id != "game-1767225600000" {
		t.Fatalf("expected time-based id, got %q", id)
	}
	snap := s.Snapshot()
	if snap.ActiveIndex != 1 {
		t.Fatalf("new event should be active, index = %d", snap.ActiveIndex)
	}
	added := snap.Active()
	if added.TitleColor != "#ffffff" || added.TimezoneLabel != "UTC" {
		t.Fatalf("unexpected defaults on added event: %+v", added)
	}

	// Caller-provided ids are kept verbatim.
	if got := s.AddEvent("Shared", now.Add(3*time.Hour), "Europe/London", models.CategoryGame, "shared-id"); got != "shared-id" {
		t.Fatalf("id override not honored: %q", got)
	}
}

func TestRestartRecomputesDeadlineAndClearsLatch(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	br := models.TargetEvent{
		ID:            "break-10",
		Title:         "Be Right Back (10min)",
		TitleColor:    "#ffffff",
		Deadline:      now.Add(-time.Minute),
		TimezoneLabel: "UTC",
		Category:      models.CategoryUtility,
	}
	s, clock := newStore(t, []models.TargetEvent{br, game("g", now.Add(time.Hour))})
	rec := &stopRecorder{}
	s.BindCelebration(rec)

	s.SetActiveIndex(0)
	s.SetHasReachedZero(true)
	clock.Advance(30 * time.Minute)

	if !s.Restart("break-10") {
		t.Fatal("expected restart to succeed")
	}
	snap := s.Snapshot()
	if want := clock.Now().Add(10 * time.Minute); !snap.Catalog[0].Deadline.Equal(want) {
		t.Fatalf("deadline = %v, want %v", snap.Catalog[0].Deadline, want)
	}
	if snap.HasReachedZero {
		t.Fatal("zero latch should be cleared for the active event")
	}
	if rec.stops != 1 {
		t.Fatalf("celebration stops = %d, want 1", rec.stops)
	}
}

func TestRestartInactiveEventKeepsLatch(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	br := models.TargetEvent{
		ID:       "break-5",
		Title:    "Snack Break (5min)",
		Deadline: now.Add(-time.Minute),
		Category: models.CategoryUtility,
	}
	s, _ := newStore(t, []models.TargetEvent{game("g", now.Add(time.Hour)), br})
	rec := &stopRecorder{}
	s.BindCelebration(rec)
	s.SetHasReachedZero(true)

	if !s.Restart("break-5") {
		t.Fatal("expected restart to succeed")
	}
	if !s.HasReachedZero() {
		t.Fatal("restarting an inactive event must not clear the latch")
	}
	if rec.stops != 0 {
		t.Fatalf("celebration must not be stopped, got %d stops", rec.stops)
	}
}

func TestRestartRejectsGamesAndUnmarkedTitles(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	gameWithMarker := game("fake-break", now.Add(time.Hour))
	gameWithMarker.Title = "Totally a break (10min)"
	plainUtility := models.TargetEvent{
		ID:       "lunch",
		Title:    "Lunch",
		Deadline: now.Add(time.Hour),
		Category: models.CategoryUtility,
	}
	s, _ := newStore(t, []models.TargetEvent{gameWithMarker, plainUtility})

	if s.Restart("fake-break") {
		t.Fatal("game events must not be restartable")
	}
	if s.Restart("lunch") {
		t.Fatal("utilities without a (Nmin) marker must not be restartable")
	}
	if s.Restart("missing") {
		t.Fatal("unknown ids must be rejected")
	}
}

func TestResetCatalogRestoresDefaultsAndReselects(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	defaults := []models.TargetEvent{
		game("past", now.Add(-time.Hour)),
		game("soon", now.Add(time.Hour)),
	}
	s, _ := newStore(t, defaults)

	s.AddEvent("extra", now.Add(5*time.Hour), "", models.CategoryGame, "")
	s.SetTitle("renamed")
	s.ResetCatalog()

	snap := s.Snapshot()
	if len(snap.Catalog) != 2 {
		t.Fatalf("catalog length = %d, want defaults restored", len(snap.Catalog))
	}
	if snap.Catalog[0].Title != "past" {
		t.Fatalf("default title not restored: %q", snap.Catalog[0].Title)
	}
	if snap.ActiveIndex != 1 {
		t.Fatalf("active index = %d, want re-selected 1", snap.ActiveIndex)
	}
}

func TestResetCatalogDeepCopiesDefaults(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newStore(t, []models.TargetEvent{game("g", now.Add(time.Hour))})

	s.SetTitleColor("#123456")
	s.ResetCatalog()
	if got := s.Snapshot().Catalog[0].TitleColor; got != "#ffffff" {
		t.Fatalf("mutation leaked into defaults: %q", got)
	}
}

func TestUpdateSettingsIsPartial(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newStore(t, []models.TargetEvent{game("g", now.Add(time.Hour))})

	size := 72
	enabled := false
	s.UpdateSettings(models.SettingsPatch{DigitSize: &size, EnableGameBackground: &enabled})

	got := s.Settings()
	if got.DigitSize == nil || *got.DigitSize != 72 {
		t.Fatalf("digit size not applied: %+v", got.DigitSize)
	}
	if got.EnableGameBackground {
		t.Fatal("background flag not applied")
	}
	if got.FontFamily != "Inter" || !got.ShowScanlines {
		t.Fatal("untouched fields must keep their values")
	}
}

func TestSetActiveIndexIgnoresOutOfRange(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newStore(t, []models.TargetEvent{game("g", now.Add(time.Hour))})

	s.SetActiveIndex(-1)
	s.SetActiveIndex(10)
	if got := s.Snapshot().ActiveIndex; got != 0 {
		t.Fatalf("active index = %d, want unchanged 0", got)
	}
}

func TestSubscribeReceivesChangeNotifications(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newStore(t, []models.TargetEvent{
		game("a", now.Add(time.Hour)),
		game("b", now.Add(2*time.Hour)),
	})
	ch := s.Subscribe()

	s.SetActiveIndex(1)
	select {
	case c := <-ch:
		if c.Kind != store.ChangeSelection {
			t.Fatalf("kind = %q, want selection", c.Kind)
		}
	default:
		t.Fatal("expected a buffered notification")
	}
}
