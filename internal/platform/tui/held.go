package tui

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// HoldLatch turns terminal key presses into held actions.
//
// Terminals report key repeats but never key releases, so an action counts as
// held until hold has passed since its last press. With the keyboard's repeat
// rate faster than hold, a key kept down stays held without gaps.
//
// Confirm and Quit are one-shot: they are reported in exactly one frame.
type HoldLatch struct {
	hold    time.Duration
	pressed map[core.Action]time.Time
	pulses  map[core.Action]bool
}

// NewHoldLatch creates a latch with the given hold duration.
func NewHoldLatch(hold time.Duration) *HoldLatch {
	return &HoldLatch{
		hold:    hold,
		pressed: make(map[core.Action]time.Time),
		pulses:  make(map[core.Action]bool),
	}
}

// Press records a key press at now.
func (l *HoldLatch) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionConfirm, core.ActionQuit:
		l.pulses[a] = true
	default:
		l.pressed[a] = now
	}
}

// Frame samples the actions held at now and consumes pending one-shot actions.
func (l *HoldLatch) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range l.pressed {
		if now.Sub(at) < l.hold {
			frame.Set(a)
		} else {
			delete(l.pressed, a)
		}
	}
	for a := range l.pulses {
		frame.Set(a)
		delete(l.pulses, a)
	}
	return frame
}

// Reset forgets every press.
func (l *HoldLatch) Reset() {
	clear(l.pressed)
	clear(l.pulses)
}
