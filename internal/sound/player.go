package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays effects without blocking the caller.
type Player interface {
	Play(e Effect)
	Close()
}

// Nop is a Player that discards every effect.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Effect) {}

// Close does nothing.
func (Nop) Close() {}

// Speaker plays effects through the system audio device.
// All effects feed one mixer that the speaker drains on its own goroutine.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// New returns a Speaker when sound is enabled, Nop otherwise.
// A device that cannot be opened is reported as an error; callers
// typically log it and fall back to Nop.
func New(cfg config.SoundConfig) (Player, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return Nop{}, fmt.Errorf("sound: init speaker: %w", err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues an effect on the mixer.
func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	streamer := CreateEffect(e, sampleRate, s.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// EffectFor maps a game event to the effect it should trigger.
func EffectFor(ev core.Event) (Effect, bool) {
	switch ev.Kind {
	case core.EventLaserFired:
		return EffectLaser, true
	case core.EventAsteroidDestroyed:
		return EffectHit, true
	case core.EventShipDestroyed:
		return EffectExplosion, true
	default:
		return 0, false
	}
}

// PlayEvents plays the effect for every event in order.
func PlayEvents(p Player, events []core.Event) {
	for _, ev := range events {
		if e, ok := EffectFor(ev); ok {
			p.Play(e)
		}
	}
}
