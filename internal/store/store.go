// Package store owns the mutable timer state. Every mutation goes through a
// single mutex so the tick loop and request handlers never observe each
// other's partial writes.
package store

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/dropclock/dropclock/internal/catalog"
	"github.com/dropclock/dropclock/internal/models"
	"github.com/dropclock/dropclock/internal/selection"
)

// ChangeKind tags a change notification.
type ChangeKind string

const (
	ChangeCatalog   ChangeKind = "catalog"
	ChangeSelection ChangeKind = "selection"
	ChangeSettings  ChangeKind = "settings"
	ChangeMode      ChangeKind = "mode"
)

// Change is delivered to subscribers after a mutation.
type Change struct {
	Kind ChangeKind `json:"kind"`
}

// CelebrationStopper is the slice of the celebration trigger the store needs:
// restarting an elapsed utility must cancel a running celebration so the next
// tick does not immediately re-fire the edge.
type CelebrationStopper interface {
	Stop()
}

// Snapshot is a deep copy of the store for read-only consumers.
type Snapshot struct {
	ViewerTimezone string               `json:"viewer_timezone"`
	Catalog        []models.TargetEvent `json:"catalog"`
	ActiveIndex    int                  `json:"active_index"`
	EditMode       bool                 `json:"edit_mode"`
	OverlayMode    bool                 `json:"overlay_mode"`
	HasReachedZero bool                 `json:"has_reached_zero"`
	Now            time.Time            `json:"now"`
	Settings       models.TimerSettings `json:"settings"`
}

// Active returns the snapshot's active event.
func (s Snapshot) Active() models.TargetEvent {
	return s.Catalog[s.ActiveIndex]
}

// Store is the process-wide timer state container.
type Store struct {
	clock    clockwork.Clock
	viewerTZ string

	mu             sync.Mutex
	catalog        []models.TargetEvent
	defaults       []models.TargetEvent
	activeIndex    int
	editMode       bool
	overlayMode    bool
	hasReachedZero bool
	now            time.Time
	settings       models.TimerSettings
	celebration    CelebrationStopper
	subs           []chan Change
}

// New builds a store seeded with a deep copy of defaults. The active index is
// initialized by the selection policy; if every game deadline is already past
// it stays at 0.
func New(clock clockwork.Clock, viewerTZ string, defaults []models.TargetEvent) *Store {
	s := &Store{
		clock:    clock,
		viewerTZ: viewerTZ,
		catalog:  models.CloneEvents(defaults),
		defaults: models.CloneEvents(defaults),
		now:      clock.Now(),
		settings: models.DefaultSettings(),
	}
	if idx, ok := selection.NextUpcoming(s.catalog, viewerTZ, s.now); ok {
		s.activeIndex = idx
	}
	return s
}

// BindCelebration wires the celebration trigger in after construction.
func (s *Store) BindCelebration(c CelebrationStopper) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.celebration = c
}

// Subscribe returns a buffered channel of change notifications. Slow
// subscribers miss notifications rather than block mutations.
func (s *Store) Subscribe() <-chan Change {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Change, 16)
	s.subs = append(s.subs, ch)
	return ch
}

// notify must be called with the lock held.
func (s *Store) notify(kind ChangeKind) {
	for _, ch := range s.subs {
		select {
		case ch <- Change{Kind: kind}:
		default:
		}
	}
}

// ViewerTimezone returns the resolved viewer timezone name.
func (s *Store) ViewerTimezone() string {
	return s.viewerTZ
}

// Snapshot returns a deep copy of the full state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ViewerTimezone: s.viewerTZ,
		Catalog:        models.CloneEvents(s.catalog),
		ActiveIndex:    s.activeIndex,
		EditMode:       s.editMode,
		OverlayMode:    s.overlayMode,
		HasReachedZero: s.hasReachedZero,
		Now:            s.now,
		Settings:       s.settings,
	}
}

// ActiveEvent returns a copy of the active event.
func (s *Store) ActiveEvent() models.TargetEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog[s.activeIndex].Clone()
}

// SetNow records the tick loop's current-time sample. Only the engine calls
// this.
func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Now returns the engine's last current-time sample.
func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// HasReachedZero reports the zero-crossing latch.
func (s *Store) HasReachedZero() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasReachedZero
}

// SetHasReachedZero flips the zero-crossing latch. Only the engine's edge
// detection and Restart touch this.
func (s *Store) SetHasReachedZero(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasReachedZero = v
}

// SetActiveIndex selects an event by index. Out-of-range indices are ignored.
func (s *Store) SetActiveIndex(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.catalog) {
		return
	}
	s.activeIndex = index
	s.notify(ChangeSelection)
}

// SetDeadline overrides the active event's deadline and timezone label. An
// empty label defaults to the viewer timezone.
func (s *Store) SetDeadline(deadline time.Time, tzLabel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tzLabel == "" {
		tzLabel = s.viewerTZ
	}
	ev := &s.catalog[s.activeIndex]
	ev.Deadline = deadline
	ev.TimezoneLabel = tzLabel
	s.notify(ChangeCatalog)
}

// SetTitle renames the active event.
func (s *Store) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog[s.activeIndex].Title = title
	s.notify(ChangeCatalog)
}

// SetTitleColor recolors the active event.
func (s *Store) SetTitleColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog[s.activeIndex].TitleColor = color
	s.notify(ChangeCatalog)
}

// AddEvent appends a new event and selects it. When idOverride is empty a
// time-based id is generated. Returns the event's id.
func (s *Store) AddEvent(title string, deadline time.Time, tzLabel string, category models.Category, idOverride string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tzLabel == "" {
		tzLabel = s.viewerTZ
	}
	id := idOverride
	if id == "" {
		id = catalog.NewEventID(s.clock.Now())
	}
	s.catalog = append(s.catalog, models.TargetEvent{
		ID:            id,
		Title:         title,
		TitleColor:    catalog.DefaultTitleColor,
		Deadline:      deadline,
		TimezoneLabel: tzLabel,
		Category:      category,
	})
	s.activeIndex = len(s.catalog) - 1
	log.Debug().Str("event_id", id).Str("title", title).Msg("event added")
	s.notify(ChangeCatalog)
	return id
}

// RemoveEvent deletes the event at index. Rejected when the index is out of
// range or the catalog would become empty. The active index is clamped back
// into range afterward.
func (s *Store) RemoveEvent(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.catalog) || len(s.catalog) <= 1 {
		return false
	}
	s.catalog = append(s.catalog[:index], s.catalog[index+1:]...)
	if s.activeIndex >= len(s.catalog) {
		s.activeIndex = len(s.catalog) - 1
	}
	s.notify(ChangeCatalog)
	return true
}

// Restart recomputes a utility event's deadline to N minutes from now, where
// N comes from its "(Nmin)" title marker. Non-utility events and titles
// without the marker are rejected. If the restarted event is active, the zero
// latch is cleared and any running celebration stopped so the next tick does
// not re-trigger the edge.
func (s *Store) Restart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := catalog.FindIndex(s.catalog, id)
	if idx < 0 {
		return false
	}
	ev := &s.catalog[idx]
	minutes, ok := catalog.RestartMinutes(ev.Title)
	if !ok || ev.Category != models.CategoryUtility {
		return false
	}
	ev.Deadline = s.clock.Now().Add(time.Duration(minutes) * time.Minute)
	if s.activeIndex == idx {
		s.hasReachedZero = false
		if s.celebration != nil {
			s.celebration.Stop()
		}
	}
	log.Debug().Str("event_id", id).Int("minutes", minutes).Msg("countdown restarted")
	s.notify(ChangeCatalog)
	return true
}

// ResetCatalog replaces the catalog with a deep copy of the defaults,
// re-selects index 0, then re-runs the selection policy.
func (s *Store) ResetCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = models.CloneEvents(s.defaults)
	s.activeIndex = 0
	if idx, ok := selection.NextUpcoming(s.catalog, s.viewerTZ, s.clock.Now()); ok {
		s.activeIndex = idx
	}
	s.notify(ChangeCatalog)
}

// ReassignUpcoming re-runs the selection policy and, when it finds an
// upcoming game, moves the active selection to it. The engine calls this
// after each zero-crossing.
func (s *Store) ReassignUpcoming(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx, ok := selection.NextUpcoming(s.catalog, s.viewerTZ, now); ok && idx != s.activeIndex {
		s.activeIndex = idx
		s.notify(ChangeSelection)
	}
}

// UpdateSettings applies a partial settings update. Absent fields are left
// untouched.
func (s *Store) UpdateSettings(patch models.SettingsPatch) {
	if patch.IsEmpty() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.Apply(&s.settings)
	s.notify(ChangeSettings)
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() models.TimerSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SoundEnabled reports whether the celebration audio cue should play.
func (s *Store) SoundEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.EnableSound
}

// ToggleEditMode flips the presentational edit flag.
func (s *Store) ToggleEditMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editMode = !s.editMode
	s.notify(ChangeMode)
}

// SetOverlayMode switches the overlay (OBS) presentation flag.
func (s *Store) SetOverlayMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlayMode == on {
		return
	}
	s.overlayMode = on
	s.notify(ChangeMode)
}
