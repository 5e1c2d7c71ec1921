package assets

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestLoadEmbedded(t *testing.T) {
	sheet, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	err = sheet.Require(map[string]int{
		Ship:      2,
		Asteroid:  1,
		Laser:     1,
		Explosion: 6,
	})
	if err != nil {
		t.Errorf("embedded sheet is incomplete: %v", err)
	}

	if c := sheet.Frame(Ship, 0).Color; c != core.ColorBrightCyan {
		t.Errorf("ship color = %v, expected bright cyan", c)
	}
}

func TestRequireMissing(t *testing.T) {
	sheet, err := Parse([]byte("sprites:\n  ship:\n    frames:\n      - [\"^\"]\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tests := []struct {
		name    string
		require map[string]int
		wantErr string
	}{
		{"missing", map[string]int{Laser: 1}, `missing sprite "laser"`},
		{"too few frames", map[string]int{Ship: 2}, `has 1 frames, need 2`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := sheet.Require(tc.require)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Require() error = %v, expected %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "sprites: ["},
		{"unknown color", "sprites:\n  ship:\n    color: plaid\n    frames:\n      - [\"^\"]\n"},
		{"no frames", "sprites:\n  ship:\n    color: red\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestFrameClamps(t *testing.T) {
	sheet, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	last := sheet.Frame(Explosion, sheet.Frames(Explosion)-1)
	past := sheet.Frame(Explosion, 99)
	if strings.Join(past.Lines, "\n") != strings.Join(last.Lines, "\n") {
		t.Error("Frame past the end should return the last frame")
	}

	if empty := sheet.Frame("nope", 0); len(empty.Lines) != 0 {
		t.Error("unknown sprite should be empty")
	}
}
