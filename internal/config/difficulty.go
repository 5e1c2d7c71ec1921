package config

import "github.com/vovakirdan/tui-asteroids/internal/core"

// DifficultyManager advances the asteroid spawn ramp.
// Each spawned asteroid shortens the spawn buffer and speeds up the next
// asteroid by a fixed step. Whether the ramp is bounded is an explicit
// configuration choice (ClampConfig), never an implicit fix.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// IsClamped returns whether the ramp is bounded.
func (d *DifficultyManager) IsClamped() bool {
	return d.cfg.Enabled && d.cfg.Clamp.Enabled
}

// NextSpawnBuffer returns the spawn buffer after one more asteroid.
// Unclamped, the result may go negative; the spawner then fires every tick.
// The ramp runs in fixed point so every step is exact.
func (d *DifficultyManager) NextSpawnBuffer(current core.Fixed) core.Fixed {
	if !d.cfg.Enabled {
		return current
	}
	next := current - core.ToFixed(d.cfg.BufferDecrease)
	floor := core.ToFixed(d.cfg.Clamp.MinSpawnBuffer)
	if d.cfg.Clamp.Enabled && next < floor {
		// Never raise a buffer that already started below the floor
		if current < floor {
			return current
		}
		return floor
	}
	return next
}

// NextAsteroidSpeed returns the asteroid speed after one more asteroid.
func (d *DifficultyManager) NextAsteroidSpeed(current core.Fixed) core.Fixed {
	if !d.cfg.Enabled {
		return current
	}
	next := current + core.ToFixed(d.cfg.SpeedIncrease)
	ceiling := core.ToFixed(d.cfg.Clamp.MaxAsteroidSpeed)
	if d.cfg.Clamp.Enabled && ceiling > 0 && next > ceiling {
		if current > ceiling {
			return current
		}
		return ceiling
	}
	return next
}
