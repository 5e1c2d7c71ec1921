package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// Phase is the stage of a round.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseClosed // terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	Tick     int   // Ticks elapsed in intro and play
	Phase    Phase // Current phase
	GameOver bool  // Whether the ship has been destroyed
	Done     bool  // Whether the round has reached its terminal phase
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventLaserFired EventKind = iota
	EventAsteroidDestroyed
	EventShipDestroyed
	EventPhaseChanged
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventLaserFired:
		return "laser-fired"
	case EventAsteroidDestroyed:
		return "asteroid-destroyed"
	case EventShipDestroyed:
		return "ship-destroyed"
	case EventPhaseChanged:
		return "phase-changed"
	default:
		return "unknown"
	}
}

// Event is emitted by Step so the platform can play sounds and log without
// inspecting game internals.
type Event struct {
	Kind  EventKind
	Phase Phase // New phase, for EventPhaseChanged
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
