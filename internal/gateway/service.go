// Package gateway exposes the countdown engine to render clients over HTTP
// and WebSocket.
package gateway

import (
	"context"
	"net/http"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/dropclock/dropclock/internal/celebration"
	"github.com/dropclock/dropclock/internal/engine"
	"github.com/dropclock/dropclock/internal/store"
	"github.com/dropclock/dropclock/internal/urlcodec"
)

// Service ties the connection manager and HTTP handlers to the engine.
type Service struct {
	store   *store.Store
	engine  *engine.Engine
	clock   clockwork.Clock
	manager *ConnectionManager

	// runCtx outlives individual requests; the start handler re-launches the
	// engine under it.
	runCtx context.Context

	mu          sync.Mutex
	lastReached bool
}

// NewService builds the gateway and hooks itself into the engine's tick
// output. Call Run to begin broadcasting.
func NewService(st *store.Store, eng *engine.Engine, clock clockwork.Clock, config ConnectionConfig) *Service {
	s := &Service{
		store:   st,
		engine:  eng,
		clock:   clock,
		manager: NewConnectionManager(config),
	}
	eng.OnTick = s.onTick
	return s
}

// Run starts the broadcast loop and relays store change notifications until
// the context is cancelled.
func (s *Service) Run(ctx context.Context) {
	s.runCtx = ctx
	go s.manager.Start(ctx)

	changes := s.store.Subscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case change := <-changes:
				s.broadcast(EventTypeStateChanged, change)
			}
		}
	}()
}

// onTick relays every tick and announces the zero-crossing edge exactly once
// per crossing.
func (s *Service) onTick(tick engine.Tick) {
	s.broadcast(EventTypeTimerTick, tick)

	s.mu.Lock()
	rising := tick.ReachedZero && !s.lastReached
	falling := !tick.ReachedZero && s.lastReached
	s.lastReached = tick.ReachedZero
	s.mu.Unlock()

	if rising {
		s.broadcast(EventTypeCountdownReached, CountdownReachedPayload{
			EventID:   tick.EventID,
			Title:     tick.Title,
			ReachedAt: tick.Now,
		})
	}
	if falling {
		s.broadcast(EventTypeCelebrationStopped, struct{}{})
	}
}

func (s *Service) broadcast(etype EventType, payload any) {
	event, err := newEvent(etype, s.clock.Now(), payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", string(etype)).Msg("failed to build gateway event")
		return
	}
	s.manager.Broadcast(event)
}

// EmitBurst implements celebration.Sink by pushing each burst to overlay
// clients.
func (s *Service) EmitBurst(b celebration.Burst) {
	s.broadcast(EventTypeCelebrationBurst, b)
}

// Play implements celebration.CuePlayer. The gateway has no local audio
// device; it asks overlay clients to play the cue and never fails.
func (s *Service) Play() error {
	s.broadcast(EventTypePlayCue, PlayCuePayload{Cue: "timer-end"})
	return nil
}

// HandleWS upgrades a render client. Query parameters on the connect URL are
// decoded into the store first, so a shared link is applied by opening it.
func (s *Service) HandleWS(w http.ResponseWriter, r *http.Request) {
	urlcodec.Decode(r.URL.Query(), s.store)
	// Upgrade replies to the client itself on failure.
	if err := s.manager.Upgrade(w, r); err != nil {
		log.Warn().Err(err).Msg("WebSocket handshake failed")
	}
}

// Stats reports gateway health for the health endpoint.
func (s *Service) Stats() map[string]any {
	stats := s.manager.Stats()
	stats["service"] = "dropclock_gateway"
	return stats
}
