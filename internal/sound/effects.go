// Package sound plays short synthesized effects for game events.
// Every effect is generated at runtime, so the binary ships no audio files.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
// freqEnd sweeps the frequency linearly over the duration.
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to freqEnd.
func NewSweep(freq, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.freqEnd-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; vol <= 0 is silence.
// math.Log2(0) is -Inf, so zero is handled by the Silent flag.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect names a sound.
type Effect int

const (
	EffectLaser Effect = iota
	EffectHit
	EffectExplosion
)

// String returns the effect name used in logs.
func (e Effect) String() string {
	switch e {
	case EffectLaser:
		return "laser"
	case EffectHit:
		return "hit"
	case EffectExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

const (
	laserDuration     = 90 * time.Millisecond
	hitDuration       = 140 * time.Millisecond
	explosionDuration = 600 * time.Millisecond
)

// CreateLaserSound is a short falling square chirp.
func CreateLaserSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(1400, 500, laserDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, laserDuration, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, volume*0.5)
}

// CreateHitSound is a burst of noise over a low saw thump.
func CreateHitSound(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewEnvelope(
		NewOscillator(0, hitDuration, WaveNoise, rate),
		hitDuration, 2*time.Millisecond, 120*time.Millisecond, rate)
	thump := NewEnvelope(
		NewSweep(180, 60, hitDuration, WaveSaw, rate),
		hitDuration, 2*time.Millisecond, 100*time.Millisecond, rate)

	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(thump, 0.4))
	return newVolume(mixed, volume)
}

// CreateExplosionSound is a long decaying rumble.
func CreateExplosionSound(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewEnvelope(
		NewOscillator(0, explosionDuration, WaveNoise, rate),
		explosionDuration, 10*time.Millisecond, 500*time.Millisecond, rate)
	rumble := NewEnvelope(
		NewSweep(90, 30, explosionDuration, WaveSine, rate),
		explosionDuration, 10*time.Millisecond, 450*time.Millisecond, rate)

	mixed := beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.7))
	return newVolume(mixed, volume)
}

// CreateEffect returns a fresh streamer for the effect, or nil if unknown.
func CreateEffect(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	switch e {
	case EffectLaser:
		return CreateLaserSound(rate, volume)
	case EffectHit:
		return CreateHitSound(rate, volume)
	case EffectExplosion:
		return CreateExplosionSound(rate, volume)
	default:
		return nil
	}
}
