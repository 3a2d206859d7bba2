package models

import "time"

// Category classifies a target event.
type Category string

const (
	// CategoryGame events participate in automatic "next upcoming" selection.
	CategoryGame Category = "game"
	// CategoryUtility events are short, user-restartable countdowns (breaks).
	CategoryUtility Category = "utility"
)

// RegionalOverride pins an event's deadline for viewers in one specific
// timezone. Overrides are owned by their parent event and never shared.
type RegionalOverride struct {
	Timezone string    `json:"timezone" yaml:"timezone"`
	Instant  time.Time `json:"instant" yaml:"instant"`
}

// TargetEvent is one trackable deadline in the catalog.
type TargetEvent struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	TitleColor    string    `json:"title_color" yaml:"title_color"`
	Deadline      time.Time `json:"deadline" yaml:"deadline"`
	TimezoneLabel string    `json:"timezone" yaml:"timezone"`
	Category      Category  `json:"category" yaml:"category"`

	// RegionalOverrides, when present, is non-empty. Each entry may carry its
	// own instant; the resolver honors whatever is stored per region.
	RegionalOverrides []RegionalOverride `json:"regional_overrides,omitempty" yaml:"regional_overrides,omitempty"`
}

// Clone returns a deep copy of the event, including its override list.
func (e TargetEvent) Clone() TargetEvent {
	out := e
	if len(e.RegionalOverrides) > 0 {
		out.RegionalOverrides = make([]RegionalOverride, len(e.RegionalOverrides))
		copy(out.RegionalOverrides, e.RegionalOverrides)
	}
	return out
}

// CloneEvents deep-copies a catalog slice.
func CloneEvents(events []TargetEvent) []TargetEvent {
	out := make([]TargetEvent, len(events))
	for i, ev := range events {
		out[i] = ev.Clone()
	}
	return out
}
