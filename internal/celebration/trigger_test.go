package celebration

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type chanSink struct {
	ch chan Burst
}

func newChanSink() *chanSink {
	return &chanSink{ch: make(chan Burst, 100)}
}

func (s *chanSink) EmitBurst(b Burst) { s.ch <- b }

func (s *chanSink) expect(t *testing.T, n int) []Burst {
	t.Helper()
	out := make([]Burst, 0, n)
	for len(out) < n {
		select {
		case b := <-s.ch:
			out = append(out, b)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for burst %d of %d", len(out)+1, n)
		}
	}
	return out
}

func (s *chanSink) expectNone(t *testing.T) {
	t.Helper()
	select {
	case b := <-s.ch:
		t.Fatalf("unexpected burst after stop: %+v", b)
	case <-time.After(50 * time.Millisecond):
	}
}

type cueRecorder struct {
	plays int
	err   error
}

func (c *cueRecorder) Play() error {
	c.plays++
	return c.err
}

func TestTriggerOpeningVolleyThenRepeat(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := newChanSink()
	tr := NewTrigger(clock, sink, nil, func() bool { return false })
	tr.chance = func() float64 { return 0.9 } // no star, no streamer

	tr.Start()
	defer tr.Stop()

	// First volley round fires immediately.
	for _, b := range sink.expect(t, 2) {
		if b.Kind != BurstConfetti || b.ParticleCount != 20 {
			t.Fatalf("unexpected burst %+v", b)
		}
	}

	// Remaining four volley rounds, 200ms apart.
	for i := 1; i < 5; i++ {
		clock.BlockUntil(1)
		clock.Advance(200 * time.Millisecond)
		sink.expect(t, 2)
	}

	// Then the 300ms repeat schedule.
	clock.BlockUntil(1)
	clock.Advance(300 * time.Millisecond)
	sink.expect(t, 2)
	clock.Advance(300 * time.Millisecond)
	sink.expect(t, 2)

	tr.Stop()
	sink.expectNone(t)
}

func TestTriggerSymmetricOrigins(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := newChanSink()
	tr := NewTrigger(clock, sink, nil, nil)
	tr.chance = func() float64 { return 0.5 }

	tr.Start()
	defer tr.Stop()

	bursts := sink.expect(t, 2)
	left, right := bursts[0], bursts[1]
	if left.OriginX < 0.1 || left.OriginX > 0.3 {
		t.Fatalf("left burst origin out of range: %f", left.OriginX)
	}
	if right.OriginX < 0.7 || right.OriginX > 0.9 {
		t.Fatalf("right burst origin out of range: %f", right.OriginX)
	}
}

func TestTriggerExtrasWhenChanceHits(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := newChanSink()
	tr := NewTrigger(clock, sink, nil, nil)
	tr.chance = func() float64 { return 0.1 } // star and streamer both hit

	tr.Start()
	defer tr.Stop()

	bursts := sink.expect(t, 4)
	if bursts[2].Kind != BurstStar {
		t.Fatalf("third burst = %q, want star", bursts[2].Kind)
	}
	if bursts[3].Kind != BurstStreamer {
		t.Fatalf("fourth burst = %q, want streamer", bursts[3].Kind)
	}
	if bursts[3].OriginX != 1.0 || bursts[3].Angle != 120 {
		// chance()<0.5 picks the far edge with the mirrored angle
		t.Fatalf("streamer geometry: %+v", bursts[3])
	}
}

func TestTriggerCueGatedBySoundSetting(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	sink := newChanSink()

	muted := &cueRecorder{}
	tr := NewTrigger(clock, sink, muted, func() bool { return false })
	tr.chance = func() float64 { return 0.9 }
	tr.Start()
	sink.expect(t, 2)
	tr.Stop()
	if muted.plays != 0 {
		t.Fatalf("cue played %d times with sound disabled", muted.plays)
	}

	loud := &cueRecorder{err: errors.New("device busy")}
	tr = NewTrigger(clock, sink, loud, func() bool { return true })
	tr.chance = func() float64 { return 0.9 }
	tr.Start()
	sink.expect(t, 2) // cue failure is swallowed, bursts still flow
	tr.Stop()
	if loud.plays != 1 {
		t.Fatalf("cue plays = %d, want 1", loud.plays)
	}
}

func TestStopWhenIdleIsNoOp(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	tr := NewTrigger(clock, newChanSink(), nil, nil)
	tr.Stop()
	tr.Stop()
}
