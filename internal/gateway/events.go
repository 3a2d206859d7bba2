package gateway

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/dropclock/dropclock/internal/celebration"
	"github.com/dropclock/dropclock/internal/engine"
	"github.com/dropclock/dropclock/internal/store"
)

// Event is the envelope pushed to render clients.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// EventType tags a gateway event.
type EventType string

const (
	EventTypeTimerTick          EventType = "TimerTick"
	EventTypeCountdownReached   EventType = "CountdownReached"
	EventTypeCelebrationBurst   EventType = "CelebrationBurst"
	EventTypeCelebrationStopped EventType = "CelebrationStopped"
	EventTypePlayCue            EventType = "PlayCue"
	EventTypeStateChanged       EventType = "StateChanged"
)

// CountdownReachedPayload announces a zero-crossing.
type CountdownReachedPayload struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	ReachedAt time.Time `json:"reached_at"`
}

// PlayCuePayload asks overlay clients to play the end-of-timer sound.
type PlayCuePayload struct {
	Cue string `json:"cue"`
}

func newEvent(etype EventType, now time.Time, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		ID:        uuid.New().String(),
		Type:      etype,
		Timestamp: now,
		Data:      data,
	}, nil
}

// ParseEventPayload decodes an event's payload into its typed form. Useful
// for clients and tests; unknown types return nil.
func ParseEventPayload(event *Event) (any, error) {
	switch event.Type {
	case EventTypeTimerTick:
		var payload engine.Tick
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil
	case EventTypeCountdownReached:
		var payload CountdownReachedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil
	case EventTypeCelebrationBurst:
		var payload celebration.Burst
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil
	case EventTypePlayCue:
		var payload PlayCuePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil
	case EventTypeStateChanged:
		var payload store.Change
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil
	default:
		return nil, nil
	}
}
