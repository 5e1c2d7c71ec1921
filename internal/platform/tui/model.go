package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/sound"
)

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input, timing and presentation.
type Game interface {
	// ID returns a unique identifier, used for screenshot names.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes a new round.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state onto the canvas.
	Render(c core.Canvas)

	// State returns the current game state.
	State() core.GameState
}

// Options configures the platform around a game.
type Options struct {
	Runtime core.RuntimeConfig
	WorldW  float64       // World width the viewport projects
	WorldH  float64       // World height the viewport projects
	Hold    time.Duration // How long a key press counts as held
	Sound   sound.Player  // nil plays nothing
	Logger  *log.Logger   // nil discards logs
}

// Model is the Bubble Tea model for running a round.
type Model struct {
	game     Game
	screen   *core.Screen
	viewport *core.Viewport
	keys     KeyMap
	help     help.Model
	latch    *HoldLatch
	sound    sound.Player
	logger   *log.Logger
	config   core.RuntimeConfig
	state    core.GameState
	now      func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Sound
	if player == nil {
		player = sound.Nop{}
	}

	screen := core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))
	return Model{
		game:     game,
		screen:   screen,
		viewport: core.NewViewport(screen, opts.WorldW, opts.WorldH),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		latch:    NewHoldLatch(opts.Hold),
		sound:    player,
		logger:   logger,
		config:   cfg,
		now:      time.Now,
	}
}

// playHeight leaves the bottom row for the help footer.
func playHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("round started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key presses; the next tick samples them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.latch.Press(m.keys.Action(msg), m.now())
	return m, nil
}

// handleResize processes window resize events.
// The world keeps its size; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input held right now.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.latch.Frame(m.now()))
	m.state = result.State

	sound.PlayEvents(m.sound, result.Events)
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventPhaseChanged:
			// Keys held for the old phase must be pressed again
			m.latch.Reset()
			m.logger.Info("phase changed", "phase", ev.Phase, "score", m.state.Score, "tick", m.state.Tick)
		case core.EventShipDestroyed:
			m.logger.Info("ship destroyed", "score", m.state.Score)
		default:
			m.logger.Debug("event", "kind", ev.Kind, "tick", m.state.Tick)
		}
	}

	if m.state.Done {
		m.logger.Info("round finished", "score", m.state.Score, "ship_destroyed", m.state.GameOver)
		m.quitting = true
		m.sound.Close()
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.viewport)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".asteroids", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.viewport)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the round ends.
// It returns the final game state.
func Run(game Game, opts Options) (core.GameState, error) {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
