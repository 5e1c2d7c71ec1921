package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in tuning, matching the embedded
// YAML. Used when the embedded file cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Window: WindowConfig{
			Width:    700,
			Height:   700,
			TickRate: 50, // 20ms pause between ticks
		},
		Ship: ShipConfig{
			Width:        50,
			Height:       50,
			LateralSpeed: 8,
			Y:            615,
		},
		Asteroids: AsteroidConfig{
			Size:          50,
			InitialBuffer: 20,
			InitialSpeed:  2,
			MarginX:       200,
			MarginY:       100,
		},
		Lasers: LaserConfig{
			Width:       30,
			Height:      50,
			Buffer:      15,
			IntroBuffer: 20,
			Offset:      15,
			Speed:       20,
		},
		Stars: StarConfig{
			Population: 500,
			Size:       2,
			Speed:      1,
		},
		Explosion: ExplosionConfig{
			Frames:        6,
			TicksPerFrame: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			BufferDecrease: 0.05,
			SpeedIncrease:  0.05,
		},
		Input: InputConfig{
			Hold: 150 * time.Millisecond,
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  0.3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
