// Package asteroids implements one round of an Asteroids-style arcade game.
// The ship avoids falling asteroids and fires lasers to destroy them; the
// round ends when an asteroid reaches the ship.
package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Game implements the Asteroids round as a phase state machine:
// Intro -> Playing -> GameOver -> Closed. One call to Step is one tick.
type Game struct {
	cfg        config.AsteroidsConfig
	sheet      *assets.Sheet
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner

	ship      Entity
	asteroids []Entity
	lasers    []Entity
	stars     []Entity

	phase            core.Phase
	tick             int // Ticks spent in Intro and Playing
	endClock         int // Ticks spent in GameOver
	score            int
	continueGame     bool
	closeRequested   bool
	shipDestroyed    bool
	explosionElapsed bool

	events []core.Event
}

// New creates a game with the given tuning and sprite sheet.
func New(cfg config.AsteroidsConfig, sheet *assets.Sheet) *Game {
	return &Game{
		cfg:   cfg,
		sheet: sheet,
	}
}

// RequiredSprites lists the sprites and frame counts a round draws.
func RequiredSprites(cfg config.AsteroidsConfig) map[string]int {
	return map[string]int{
		assets.Ship:      2,
		assets.Asteroid:  1,
		assets.Laser:     1,
		assets.Explosion: cfg.Explosion.Frames,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset starts a new round at the intro screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, &g.cfg, g.difficulty)
	} else {
		g.spawner.difficulty = g.difficulty
		g.spawner.Reset(runtime.Seed)
	}

	sc := g.cfg.Ship
	g.ship = NewEntity(KindShip,
		core.V(g.cfg.Window.Width/2, sc.Y),
		core.V(sc.Width, sc.Height),
		core.Vec{},
	)
	g.asteroids = nil
	g.lasers = nil
	g.stars = nil

	g.phase = core.PhaseIntro
	g.tick = 0
	g.endClock = 0
	g.score = 0
	g.continueGame = true
	g.closeRequested = false
	g.shipDestroyed = false
	g.explosionElapsed = false
	g.events = nil
}

// Step advances the game by one tick using the input held this tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.phase == core.PhaseClosed {
		return g.result()
	}

	// The close box short-circuits every phase
	if in.Has(core.ActionQuit) {
		g.closeRequested = true
		g.setPhase(core.PhaseClosed)
		return g.result()
	}

	switch g.phase {
	case core.PhaseIntro:
		if in.Has(core.ActionConfirm) {
			g.spawner.ReadyLaser()
			g.setPhase(core.PhasePlaying)
			break
		}
		g.updateIntro()
		g.tick++

	case core.PhasePlaying:
		g.updatePlaying(in)
		g.checkCollision()
		g.tick++
		if !g.continueGame {
			g.shipDestroyed = true
			g.emit(core.Event{Kind: core.EventShipDestroyed})
			g.setPhase(core.PhaseGameOver)
		}

	case core.PhaseGameOver:
		if in.Has(core.ActionConfirm) {
			g.setPhase(core.PhaseClosed)
			break
		}
		g.updateGameOver()
		g.endClock++
		if g.endClock >= g.cfg.Explosion.Frames*g.cfg.Explosion.TicksPerFrame {
			g.explosionElapsed = true
		}
	}

	return g.result()
}

// updateIntro animates the title screen: the ship drifts right and wraps,
// lasers fire on a fixed schedule and the star field scrolls.
func (g *Game) updateIntro() {
	width := core.ToFixed(g.cfg.Window.Width)
	if g.ship.Rect().CenterX() < width {
		g.ship = g.ship.Shift(core.V(1, 0))
	} else {
		g.ship = g.ship.Shift(core.Vec{X: -width})
	}

	if g.tick%g.cfg.Lasers.IntroBuffer == 0 {
		g.fire()
	}

	if len(g.stars) == 0 {
		g.stars = g.spawner.FillStars()
	}
	g.updateStars()
	g.updateLasers()
}

// updatePlaying runs spawning, motion and culling for every list, then
// steers the ship.
func (g *Game) updatePlaying(in core.InputFrame) {
	if a, ok := g.spawner.SpawnAsteroid(g.tick); ok {
		g.asteroids = append(g.asteroids, a)
	}
	g.updateAsteroids()

	g.updateStars()

	if in.Has(core.ActionFire) {
		g.fire()
	}
	g.updateLasers()

	width := core.ToFixed(g.cfg.Window.Width)
	speed := core.ToFixed(g.cfg.Ship.LateralSpeed)
	if in.Has(core.ActionRight) && g.ship.Rect().CenterX() < width {
		g.ship = g.ship.Shift(core.Vec{X: speed})
	}
	// Left sees the center after any move right
	if in.Has(core.ActionLeft) && g.ship.Rect().CenterX() > 0 {
		g.ship = g.ship.Shift(core.Vec{X: -speed})
	}
}

// updateGameOver lets existing entities drain off screen. Stars keep
// streaming; no new asteroids or lasers appear.
func (g *Game) updateGameOver() {
	g.updateStars()
	g.updateLasers()
	g.updateAsteroids()
}

func (g *Game) updateAsteroids() {
	advanceAll(g.asteroids)
	g.asteroids = cull(g.asteroids, g.bottom())
}

func (g *Game) updateLasers() {
	advanceAll(g.lasers)
	g.lasers = cull(g.lasers, g.bottom())
}

// updateStars adds one star on the top edge, then moves and culls the field.
func (g *Game) updateStars() {
	g.stars = append(g.stars, g.spawner.SpawnStar())
	advanceAll(g.stars)
	g.stars = cull(g.stars, g.bottom())
}

func (g *Game) bottom() core.Fixed {
	return core.ToFixed(g.cfg.Window.Height)
}

func (g *Game) fire() {
	if l, ok := g.spawner.FireLaser(g.tick, g.ship); ok {
		g.lasers = append(g.lasers, l)
		g.emit(core.Event{Kind: core.EventLaserFired})
	}
}

// checkCollision resolves ship and laser hits for this tick.
func (g *Game) checkCollision() {
	res := Collide(g.ship, g.asteroids, g.lasers)
	if res.ShipHit {
		g.continueGame = false
	}
	g.asteroids = res.Asteroids
	g.lasers = res.Lasers
	g.score += res.Destroyed
	for i := 0; i < res.Destroyed; i++ {
		g.emit(core.Event{Kind: core.EventAsteroidDestroyed})
	}
}

func (g *Game) setPhase(p core.Phase) {
	g.phase = p
	g.emit(core.Event{Kind: core.EventPhaseChanged, Phase: p})
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Tick:     g.tick,
		Phase:    g.phase,
		GameOver: g.shipDestroyed,
		Done:     g.phase == core.PhaseClosed,
	}
}
