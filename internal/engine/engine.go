// Package engine runs the once-per-second countdown tick loop.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/dropclock/dropclock/internal/models"
	"github.com/dropclock/dropclock/internal/store"
	"github.com/dropclock/dropclock/internal/timezone"
)

const tickPeriod = time.Second

// Celebrator is the celebration trigger surface the engine drives on
// zero-crossing edges.
type Celebrator interface {
	Start()
	Stop()
}

// Tick describes one tick's output for the render layer.
type Tick struct {
	EventID       string               `json:"event_id"`
	Title         string               `json:"title"`
	TitleColor    string               `json:"title_color"`
	Deadline      time.Time            `json:"deadline"`
	TimezoneLabel string               `json:"timezone"`
	Remaining     models.TimeRemaining `json:"remaining"`
	ReachedZero   bool                 `json:"reached_zero"`
	Now           time.Time            `json:"now"`
}

// Engine advances the countdown and owns the zero-crossing state machine.
// States are Idle and Running; Start and Stop move between them and both are
// idempotent.
type Engine struct {
	store       *store.Store
	clock       clockwork.Clock
	celebration Celebrator

	// OnTick, when set, receives every tick's output. Must not block.
	OnTick func(Tick)

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New builds an engine around the given store and celebration trigger.
func New(st *store.Store, clock clockwork.Clock, celebration Celebrator) *Engine {
	return &Engine{store: st, clock: clock, celebration: celebration}
}

// Start launches the ticking loop. A second Start while running is a no-op.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.done = make(chan struct{})
	e.running = true
	log.Info().Msg("countdown engine started")
	go e.loop(ctx, e.done)
}

// Stop halts the loop and any running celebration. Safe when already idle.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	e.cancel()
	done := e.done
	e.mu.Unlock()

	<-done
	e.celebration.Stop()
	log.Info().Msg("countdown engine stopped")
}

func (e *Engine) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := e.clock.NewTicker(tickPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.Chan():
			tick := e.Tick()
			if e.OnTick != nil {
				e.OnTick(tick)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Tick performs one engine step: sample now, compute the active event's
// remaining time, and run edge detection. Exposed so callers can drive the
// state machine deterministically; the loop calls it once per second.
func (e *Engine) Tick() Tick {
	now := e.clock.Now()
	e.store.SetNow(now)

	ev := e.store.ActiveEvent()
	deadline, label := timezone.Resolve(ev, e.store.ViewerTimezone())
	// Whole seconds, so the edge fires on the same tick the displayed
	// quadruple reaches zero.
	delta := deadline.Sub(now).Truncate(time.Second)

	reached := e.store.HasReachedZero()
	switch {
	case delta <= 0 && !reached:
		// Falling edge: latch, celebrate, and re-arm the selection. The
		// displayed countdown may immediately move to a different future
		// event.
		e.store.SetHasReachedZero(true)
		reached = true
		e.celebration.Start()
		log.Info().Str("event_id", ev.ID).Str("title", ev.Title).Msg("countdown reached zero")
		e.store.ReassignUpcoming(now)
	case delta > 0 && reached:
		// Rising edge: the deadline moved back into the future (edited, or a
		// new event was selected).
		e.store.SetHasReachedZero(false)
		reached = false
		e.celebration.Stop()
	}

	return Tick{
		EventID:       ev.ID,
		Title:         ev.Title,
		TitleColor:    ev.TitleColor,
		Deadline:      deadline,
		TimezoneLabel: label,
		Remaining:     models.Breakdown(int64(delta / time.Second)),
		ReachedZero:   reached,
		Now:           now,
	}
}

// Remaining is a read-only query of the active event's countdown against the
// engine's last time sample. It never runs edge detection.
func (e *Engine) Remaining() models.TimeRemaining {
	ev := e.store.ActiveEvent()
	deadline, _ := timezone.Resolve(ev, e.store.ViewerTimezone())
	delta := deadline.Sub(e.store.Now()).Truncate(time.Second)
	return models.Breakdown(int64(delta / time.Second))
}
