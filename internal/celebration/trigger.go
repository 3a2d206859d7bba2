// Package celebration drives the zero-crossing burst sequence.
package celebration

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const (
	openingBursts  = 5
	openingSpacing = 200 * time.Millisecond
	repeatInterval = 300 * time.Millisecond

	starChance     = 0.3
	streamerChance = 0.2
)

var confettiColors = []string{"#ff0000", "#ffd700", "#00ff00", "#0000ff", "#ff00ff"}
var starColors = []string{"#FFD700", "#FFA500", "#FF4500"}
var streamerColors = []string{"#ffd700", "#ffb300"}

// BurstKind names a visual cue shape.
type BurstKind string

const (
	BurstConfetti BurstKind = "confetti"
	BurstStar     BurstKind = "star"
	BurstStreamer BurstKind = "streamer"
)

// Burst is one particle-burst instruction for the render layer.
type Burst struct {
	Kind          BurstKind `json:"kind"`
	OriginX       float64   `json:"origin_x"`
	OriginY       float64   `json:"origin_y"`
	Angle         int       `json:"angle,omitempty"`
	ParticleCount int       `json:"particle_count"`
	Colors        []string  `json:"colors"`
}

// Sink receives emitted bursts. Implementations must not block.
type Sink interface {
	EmitBurst(b Burst)
}

// CuePlayer plays the one-shot audio cue. Fire-and-forget: errors are logged
// and swallowed, they never affect the countdown.
type CuePlayer interface {
	Play() error
}

// Trigger schedules celebration bursts: an opening volley of five spaced
// 200ms apart, then one every 300ms until Stop. The zero-crossing latch in
// the engine guarantees at most one Start per edge; Trigger itself replaces
// any previous run on Start.
type Trigger struct {
	clock        clockwork.Clock
	sink         Sink
	cue          CuePlayer
	soundEnabled func() bool

	// chance is a uniform [0,1) draw, swappable in tests.
	chance func() float64

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewTrigger builds a trigger. cue may be nil when no audio collaborator
// exists; soundEnabled gates the cue per the current settings.
func NewTrigger(clock clockwork.Clock, sink Sink, cue CuePlayer, soundEnabled func() bool) *Trigger {
	return &Trigger{
		clock:        clock,
		sink:         sink,
		cue:          cue,
		soundEnabled: soundEnabled,
		chance:       rand.Float64,
	}
}

// Start begins a fresh burst sequence, cancelling any prior one.
func (t *Trigger) Start() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.mu.Unlock()

	log.Debug().Msg("celebration started")
	go t.run(ctx)
}

// Stop cancels the repeating schedule. Safe to call when not started.
func (t *Trigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel == nil {
		return
	}
	t.cancel()
	t.cancel = nil
	log.Debug().Msg("celebration stopped")
}

func (t *Trigger) run(ctx context.Context) {
	if t.soundEnabled != nil && t.soundEnabled() && t.cue != nil {
		if err := t.cue.Play(); err != nil {
			log.Warn().Err(err).Msg("celebration cue failed")
		}
	}

	for i := 0; i < openingBursts; i++ {
		if i > 0 {
			timer := t.clock.NewTimer(openingSpacing)
			select {
			case <-timer.Chan():
			case <-ctx.Done():
				stopAndDrain(timer)
				return
			}
		}
		t.fire()
	}

	ticker := t.clock.NewTicker(repeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.Chan():
			t.fire()
		case <-ctx.Done():
			return
		}
	}
}

// fire emits one round: two symmetric confetti bursts, an occasional center
// star burst and an occasional edge streamer.
func (t *Trigger) fire() {
	t.sink.EmitBurst(Burst{
		Kind:          BurstConfetti,
		OriginX:       randInRange(t.chance, 0.1, 0.3),
		OriginY:       t.chance() - 0.2,
		ParticleCount: 20,
		Colors:        confettiColors,
	})
	t.sink.EmitBurst(Burst{
		Kind:          BurstConfetti,
		OriginX:       randInRange(t.chance, 0.7, 0.9),
		OriginY:       t.chance() - 0.2,
		ParticleCount: 20,
		Colors:        confettiColors,
	})

	if t.chance() < starChance {
		t.sink.EmitBurst(Burst{
			Kind:          BurstStar,
			OriginX:       0.5,
			OriginY:       0.6,
			ParticleCount: 30,
			Colors:        starColors,
		})
	}

	if t.chance() < streamerChance {
		edge := 0.0
		angle := 60
		if t.chance() < 0.5 {
			edge = 1.0
			angle = 120
		}
		t.sink.EmitBurst(Burst{
			Kind:          BurstStreamer,
			OriginX:       edge,
			OriginY:       0.5,
			Angle:         angle,
			ParticleCount: 40,
			Colors:        streamerColors,
		})
	}
}

func randInRange(draw func() float64, min, max float64) float64 {
	return draw()*(max-min) + min
}

// stopAndDrain stops a timer and drains its channel so a fired-but-unread
// timer cannot leak.
func stopAndDrain(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
