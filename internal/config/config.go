// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for unusable tuning values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AsteroidsConfig contains all tuning for one round of Asteroids.
// Distances are world units (the original 700x700 window), speeds are world
// units per tick and buffers are ticks.
type AsteroidsConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Ship       ShipConfig       `yaml:"ship"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Lasers     LaserConfig      `yaml:"lasers"`
	Stars      StarConfig       `yaml:"stars"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
	Sound      SoundConfig      `yaml:"sound"`
}

// WindowConfig defines the world size and tick pacing.
type WindowConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // Ticks per second; speeds do not scale with it
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	LateralSpeed float64 `yaml:"lateral_speed"`
	Y            float64 `yaml:"y"` // Fixed distance from the top of the window
}

// AsteroidConfig defines asteroid spawning.
type AsteroidConfig struct {
	Size          float64 `yaml:"size"`
	InitialBuffer float64 `yaml:"initial_buffer"` // Ticks between spawns at round start
	InitialSpeed  float64 `yaml:"initial_speed"`
	MarginX       int     `yaml:"margin_x"` // Lateral band beside the window where asteroids may spawn
	MarginY       float64 `yaml:"margin_y"` // Distance above the window where asteroids spawn
}

// LaserConfig defines laser firing.
type LaserConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Buffer      int     `yaml:"buffer"`       // Minimum ticks between shots
	IntroBuffer int     `yaml:"intro_buffer"` // Auto-fire period on the intro screen
	Offset      float64 `yaml:"offset"`       // Centers the laser over the ship
	Speed       float64 `yaml:"speed"`
}

// StarConfig defines the decorative star field.
type StarConfig struct {
	Population int     `yaml:"population"` // Initial fill on the intro screen
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`
}

// ExplosionConfig defines the game-over explosion animation.
type ExplosionConfig struct {
	Frames        int `yaml:"frames"`
	TicksPerFrame int `yaml:"ticks_per_frame"`
}

// DifficultyConfig defines the linear spawn ramp.
type DifficultyConfig struct {
	Enabled        bool        `yaml:"enabled"`
	BufferDecrease float64     `yaml:"buffer_decrease"` // Subtracted from the spawn buffer per asteroid
	SpeedIncrease  float64     `yaml:"speed_increase"`  // Added to asteroid speed per asteroid
	Clamp          ClampConfig `yaml:"clamp"`
}

// ClampConfig bounds the ramp. Disabled by default: the spawn buffer may go
// negative and speed grows without limit, as in the original game.
type ClampConfig struct {
	Enabled          bool    `yaml:"enabled"`
	MinSpawnBuffer   float64 `yaml:"min_spawn_buffer"`
	MaxAsteroidSpeed float64 `yaml:"max_asteroid_speed"` // 0 = no ceiling
}

// InputConfig defines held-key emulation for terminals without key release events.
type InputConfig struct {
	Hold time.Duration `yaml:"hold"`
}

// SoundConfig defines optional sound effects.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// Validate checks that the configuration can drive a round.
func (c AsteroidsConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window must be positive, got %gx%g", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Window.TickRate)
	case c.Ship.Width <= 0 || c.Ship.Height <= 0:
		return fmt.Errorf("%w: ship size must be positive", ErrInvalidConfig)
	case c.Asteroids.Size <= 0:
		return fmt.Errorf("%w: asteroid size must be positive", ErrInvalidConfig)
	case c.Asteroids.MarginX < 0:
		return fmt.Errorf("%w: asteroid margin_x must not be negative", ErrInvalidConfig)
	case c.Lasers.Width <= 0 || c.Lasers.Height <= 0:
		return fmt.Errorf("%w: laser size must be positive", ErrInvalidConfig)
	case c.Lasers.IntroBuffer <= 0:
		return fmt.Errorf("%w: laser intro_buffer must be positive", ErrInvalidConfig)
	case c.Stars.Population < 0 || c.Stars.Size <= 0:
		return fmt.Errorf("%w: star population/size out of range", ErrInvalidConfig)
	case c.Explosion.Frames <= 0 || c.Explosion.TicksPerFrame <= 0:
		return fmt.Errorf("%w: explosion frames and ticks_per_frame must be positive", ErrInvalidConfig)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: sound volume must be within [0, 1], got %g", ErrInvalidConfig, c.Sound.Volume)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the starting point of the spawn ramp.
// Presets only move where the linear ramp starts; "fixed" turns it off.
func ApplyPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Asteroids.InitialBuffer = 30
		cfg.Asteroids.InitialSpeed = 1.5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Asteroids.InitialBuffer = 12
		cfg.Asteroids.InitialSpeed = 3
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
