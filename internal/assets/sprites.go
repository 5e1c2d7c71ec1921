// Package assets loads the sprite sheet once at startup.
// The sheet is embedded in the binary; a sheet missing a sprite the game needs
// is a startup error, reported before the first tick runs.
package assets

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

//go:embed sprites.yaml
var defaultSheet []byte

// Logical sprite names used by the game.
const (
	Ship      = "ship"
	Asteroid  = "asteroid"
	Laser     = "laser"
	Explosion = "explosion"
)

type sheetFile struct {
	Sprites map[string]spriteFile `yaml:"sprites"`
}

type spriteFile struct {
	Color  string     `yaml:"color"`
	Frames [][]string `yaml:"frames"`
}

// Sheet holds every animation frame by logical name.
type Sheet struct {
	sprites map[string][]core.Sprite
}

// Load parses the embedded sprite sheet.
func Load() (*Sheet, error) {
	return Parse(defaultSheet)
}

// Parse decodes a YAML sprite sheet.
func Parse(data []byte) (*Sheet, error) {
	var f sheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sprite sheet: %w", err)
	}

	sheet := &Sheet{sprites: make(map[string][]core.Sprite, len(f.Sprites))}
	for name, sf := range f.Sprites {
		color := core.ColorDefault
		if sf.Color != "" {
			c, ok := core.ParseColor(sf.Color)
			if !ok {
				return nil, fmt.Errorf("assets: sprite %q: unknown color %q", name, sf.Color)
			}
			color = c
		}
		if len(sf.Frames) == 0 {
			return nil, fmt.Errorf("assets: sprite %q has no frames", name)
		}

		frames := make([]core.Sprite, len(sf.Frames))
		for i, rows := range sf.Frames {
			frames[i] = core.Sprite{Lines: rows, Color: color}
		}
		sheet.sprites[name] = frames
	}
	return sheet, nil
}

// Require checks that each named sprite exists with at least the given
// number of frames.
func (s *Sheet) Require(frames map[string]int) error {
	names := make([]string, 0, len(frames))
	for name := range frames {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		got := s.Frames(name)
		if got == 0 {
			return fmt.Errorf("assets: missing sprite %q", name)
		}
		if got < frames[name] {
			return fmt.Errorf("assets: sprite %q has %d frames, need %d", name, got, frames[name])
		}
	}
	return nil
}

// Frames returns the number of frames for a sprite.
func (s *Sheet) Frames(name string) int {
	return len(s.sprites[name])
}

// Frame returns frame i of a sprite, clamped to the last frame.
// Unknown names yield an empty sprite.
func (s *Sheet) Frame(name string, i int) core.Sprite {
	frames := s.sprites[name]
	if len(frames) == 0 {
		return core.Sprite{}
	}
	return frames[core.Clamp(i, 0, len(frames)-1)]
}
