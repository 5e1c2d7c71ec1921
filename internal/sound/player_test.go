package sound

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type recorder struct {
	played []Effect
}

func (r *recorder) Play(e Effect) { r.played = append(r.played, e) }
func (r *recorder) Close()        {}

func TestNewDisabled(t *testing.T) {
	p, err := New(config.SoundConfig{Enabled: false, Volume: 1})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Errorf("disabled sound should return Nop, got %T", p)
	}
	// Safe to call
	p.Play(EffectLaser)
	p.Close()
}

func TestEffectFor(t *testing.T) {
	tests := []struct {
		kind     core.EventKind
		expected Effect
		ok       bool
	}{
		{core.EventLaserFired, EffectLaser, true},
		{core.EventAsteroidDestroyed, EffectHit, true},
		{core.EventShipDestroyed, EffectExplosion, true},
		{core.EventPhaseChanged, 0, false},
	}

	for _, tt := range tests {
		got, ok := EffectFor(core.Event{Kind: tt.kind})
		if ok != tt.ok || got != tt.expected {
			t.Errorf("EffectFor(%v) = (%v, %v), expected (%v, %v)", tt.kind, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestPlayEvents(t *testing.T) {
	r := &recorder{}
	PlayEvents(r, []core.Event{
		{Kind: core.EventLaserFired},
		{Kind: core.EventPhaseChanged, Phase: core.PhaseGameOver},
		{Kind: core.EventAsteroidDestroyed},
		{Kind: core.EventShipDestroyed},
	})

	expected := []Effect{EffectLaser, EffectHit, EffectExplosion}
	if len(r.played) != len(expected) {
		t.Fatalf("played %v, expected %v", r.played, expected)
	}
	for i := range expected {
		if r.played[i] != expected[i] {
			t.Errorf("played[%d] = %v, expected %v", i, r.played[i], expected[i])
		}
	}
}
