package asteroids

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  70,
	ScreenH:  35,
	TickRate: 50,
	Seed:     12345,
}

// newTestGame builds a game on the embedded sprite sheet. mutate may adjust
// the default tuning before the round starts.
func newTestGame(t *testing.T, mutate func(*config.AsteroidsConfig)) *Game {
	t.Helper()

	sheet, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() error: %v", err)
	}
	cfg := config.DefaultAsteroidsConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	g := New(cfg, sheet)
	g.Reset(testRuntime)
	return g
}

// noSpawns keeps asteroids from appearing on their own.
func noSpawns(cfg *config.AsteroidsConfig) {
	cfg.Asteroids.InitialBuffer = 1e9
}

func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	res := g.Step(core.NewInputFrame(core.ActionConfirm))
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("after confirm phase = %v, expected playing", res.State.Phase)
	}
}

func counts(g *Game) (asteroids, lasers, stars int) {
	return len(g.asteroids), len(g.lasers), len(g.stars)
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestRequiredSpritesPresent(t *testing.T) {
	sheet, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() error: %v", err)
	}
	if err := sheet.Require(RequiredSprites(config.DefaultAsteroidsConfig())); err != nil {
		t.Errorf("embedded sheet is incomplete: %v", err)
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t, nil)

	st := g.State()
	if st.Phase != core.PhaseIntro || st.Tick != 0 || st.Score != 0 || st.GameOver || st.Done {
		t.Errorf("unexpected initial state %+v", st)
	}
	if g.ship.Pos() != core.V(350, 615) {
		t.Errorf("ship starts at %+v, expected (350, 615)", g.ship.Pos())
	}
	if g.ID() != "asteroids" || g.Title() != "Asteroids" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}

	// A finished round resets cleanly
	g.Step(core.NewInputFrame(core.ActionQuit))
	g.Reset(testRuntime)
	if g.State().Phase != core.PhaseIntro {
		t.Errorf("after Reset phase = %v, expected intro", g.State().Phase)
	}
}

func TestIntroConfirmConsumesTick(t *testing.T) {
	g := newTestGame(t, nil)

	res := g.Step(core.NewInputFrame(core.ActionConfirm))
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", res.State.Phase)
	}
	if res.State.Tick != 0 {
		t.Errorf("confirm tick advanced the clock to %d", res.State.Tick)
	}
	if a, l, s := counts(g); a+l+s != 0 {
		t.Errorf("confirm tick ran an update: %d asteroids %d lasers %d stars", a, l, s)
	}
	if !hasEvent(res.Events, core.EventPhaseChanged) {
		t.Error("expected a phase change event")
	}
}

func TestIntroAnimation(t *testing.T) {
	g := newTestGame(t, nil)
	none := core.NewInputFrame()

	// Tick 0 is on the schedule but still inside the laser buffer
	res := g.Step(none)
	if hasEvent(res.Events, core.EventLaserFired) {
		t.Error("intro fired a laser on tick 0, expected the first at tick 20")
	}
	if _, lasers, stars := counts(g); lasers != 0 || stars == 0 {
		t.Errorf("after one intro tick: %d lasers %d stars", lasers, stars)
	}
	if g.ship.Pos().X != core.FixedInt(351) {
		t.Errorf("ship x = %v, expected 351", g.ship.Pos().X.Float())
	}

	for i := 1; i < 20; i++ {
		g.Step(none)
	}
	res = g.Step(none)
	if !hasEvent(res.Events, core.EventLaserFired) {
		t.Error("expected the first intro laser on tick 20")
	}
	for i := 21; i < 40; i++ {
		g.Step(none)
	}
	if _, lasers, _ := counts(g); lasers != 1 {
		t.Errorf("after 40 intro ticks: %d lasers, expected 1", lasers)
	}
	g.Step(none)
	if _, lasers, _ := counts(g); lasers != 2 {
		t.Errorf("after 41 intro ticks: %d lasers, expected 2", lasers)
	}

	// Center reaches the right edge after 325 ticks, then snaps back
	for i := 41; i < 325; i++ {
		g.Step(none)
	}
	if g.ship.Pos().X != core.FixedInt(675) {
		t.Fatalf("ship x = %v after 325 ticks, expected 675", g.ship.Pos().X.Float())
	}
	g.Step(none)
	if g.ship.Pos().X != core.FixedInt(-25) {
		t.Errorf("ship x = %v after wrap, expected -25", g.ship.Pos().X.Float())
	}
	if g.State().Phase != core.PhaseIntro {
		t.Errorf("intro should last until confirm, phase = %v", g.State().Phase)
	}
}

func TestFireHeld(t *testing.T) {
	g := newTestGame(t, noSpawns)
	startPlaying(t, g)

	fire := core.NewInputFrame(core.ActionFire)
	for i := 0; i < 16; i++ {
		g.Step(fire)
	}
	if _, lasers, _ := counts(g); lasers != 1 {
		t.Errorf("after 16 ticks: %d lasers, expected 1", lasers)
	}

	for i := 16; i < 31; i++ {
		g.Step(fire)
	}
	if _, lasers, _ := counts(g); lasers != 2 {
		t.Errorf("after 31 ticks: %d lasers, expected 2", lasers)
	}
}

func TestShipSteering(t *testing.T) {
	left, right := core.ActionLeft, core.ActionRight

	tests := []struct {
		name     string
		startX   float64
		actions  []core.Action
		expected float64
	}{
		{"right", 350, []core.Action{right}, 358},
		{"left", 350, []core.Action{left}, 342},
		{"right blocked at edge", 675, []core.Action{right}, 675},
		{"right allowed inside edge", 674, []core.Action{right}, 682},
		{"left blocked at edge", -25, []core.Action{left}, -25},
		{"left allowed inside edge", -24, []core.Action{left}, -32},
		{"both held cancel out", 350, []core.Action{left, right}, 350},
		// Left is checked after the move right, so the ship leaves the edge
		// and comes straight back
		{"both held at left edge", -25, []core.Action{left, right}, -25},
		{"both held at right edge", 675, []core.Action{left, right}, 667},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, noSpawns)
			startPlaying(t, g)
			g.ship = NewEntity(KindShip, core.V(tt.startX, 615), core.V(50, 50), core.Vec{})

			g.Step(core.NewInputFrame(tt.actions...))
			if got := g.ship.Pos().X; got != core.ToFixed(tt.expected) {
				t.Errorf("ship x = %v, expected %v", got.Float(), tt.expected)
			}
		})
	}
}

func TestFirstShotAfterIntro(t *testing.T) {
	g := newTestGame(t, noSpawns)
	none := core.NewInputFrame()

	// Intro laser on tick 20, then play starts inside its buffer
	for i := 0; i < 22; i++ {
		g.Step(none)
	}
	if _, lasers, _ := counts(g); lasers != 1 {
		t.Fatalf("after 22 intro ticks: %d lasers, expected 1", lasers)
	}
	startPlaying(t, g)

	fire := core.NewInputFrame(core.ActionFire)
	res := g.Step(fire)
	if !hasEvent(res.Events, core.EventLaserFired) {
		t.Error("the first shot of play should not wait for the intro laser buffer")
	}
	res = g.Step(fire)
	if hasEvent(res.Events, core.EventLaserFired) {
		t.Error("the second shot should be gated by the laser buffer")
	}
}

func TestDestroyScores(t *testing.T) {
	g := newTestGame(t, noSpawns)
	startPlaying(t, g)
	g.asteroids = []Entity{asteroidAt(100, 100)}
	g.lasers = []Entity{laserAt(100, 300)}

	none := core.NewInputFrame()
	for i := 1; i < 7; i++ {
		if res := g.Step(none); res.State.Score != 0 {
			t.Fatalf("scored on tick %d, expected tick 7", i)
		}
	}

	res := g.Step(none)
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	if !hasEvent(res.Events, core.EventAsteroidDestroyed) {
		t.Error("expected an asteroid destroyed event")
	}
	if a, l, _ := counts(g); a != 0 || l != 0 {
		t.Errorf("expected the pair removed, got %d asteroids %d lasers", a, l)
	}
}

func TestShipHitEndsRound(t *testing.T) {
	g := newTestGame(t, noSpawns)
	startPlaying(t, g)
	g.asteroids = []Entity{asteroidAt(340, 580)}

	res := g.Step(core.NewInputFrame())
	if res.State.Phase != core.PhaseGameOver || !res.State.GameOver {
		t.Fatalf("expected game over, got %+v", res.State)
	}
	if !hasEvent(res.Events, core.EventShipDestroyed) {
		t.Error("expected a ship destroyed event")
	}
	if res.State.Done {
		t.Error("game over must wait for confirm before closing")
	}

	// No new lasers after the ship is gone
	fire := core.NewInputFrame(core.ActionFire)
	for i := 1; i < 30; i++ {
		g.Step(fire)
		if g.explosionElapsed {
			t.Fatalf("explosion elapsed early at end clock %d", g.endClock)
		}
	}
	if _, lasers, _ := counts(g); lasers != 0 {
		t.Errorf("%d lasers fired during game over", lasers)
	}
	g.Step(fire)
	if !g.explosionElapsed {
		t.Error("explosion should elapse at end clock 30")
	}

	res = g.Step(core.NewInputFrame(core.ActionConfirm))
	if res.State.Phase != core.PhaseClosed || !res.State.Done {
		t.Errorf("confirm on game over should close, got %+v", res.State)
	}
}

func TestQuitFromAnyPhase(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, g *Game)
	}{
		{"intro", func(t *testing.T, g *Game) {}},
		{"playing", startPlaying},
		{"game over", func(t *testing.T, g *Game) {
			startPlaying(t, g)
			g.asteroids = []Entity{asteroidAt(340, 580)}
			g.Step(core.NewInputFrame())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, noSpawns)
			tt.setup(t, g)

			res := g.Step(core.NewInputFrame(core.ActionQuit))
			if !res.State.Done || res.State.Phase != core.PhaseClosed {
				t.Errorf("quit should close the game, got %+v", res.State)
			}

			// Closed is terminal
			tick := res.State.Tick
			res = g.Step(core.NewInputFrame(core.ActionConfirm))
			if res.State.Phase != core.PhaseClosed || res.State.Tick != tick {
				t.Errorf("closed game advanced: %+v", res.State)
			}
		})
	}
}

func TestNoInputNeverEnds(t *testing.T) {
	g := newTestGame(t, noSpawns)
	startPlaying(t, g)

	none := core.NewInputFrame()
	prev := g.State().Tick
	for i := 0; i < 2000; i++ {
		res := g.Step(none)
		if res.State.Phase != core.PhasePlaying {
			t.Fatalf("round ended on tick %d", i)
		}
		if res.State.Tick != prev+1 {
			t.Fatalf("tick went from %d to %d", prev, res.State.Tick)
		}
		if res.State.Score != 0 {
			t.Fatalf("score = %d without any input", res.State.Score)
		}
		prev = res.State.Tick
	}

	res := g.Step(core.NewInputFrame(core.ActionQuit))
	if !res.State.Done {
		t.Error("quit should end the round")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame(core.ActionFire)
		if (i/40)%2 == 0 {
			inputs[i].Set(core.ActionLeft)
		} else {
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() (core.GameState, [3]int) {
		g := newTestGame(t, nil)
		startPlaying(t, g)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		a, l, s := counts(g)
		return st, [3]int{a, l, s}
	}

	st1, c1 := run()
	st2, c2 := run()
	if st1 != st2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", st1, st2)
	}
	if c1 != c2 {
		t.Errorf("Determinism failed: entity counts differ. Run1=%v, Run2=%v", c1, c2)
	}
}

func TestRender(t *testing.T) {
	newCanvas := func() *core.Viewport {
		return core.NewViewport(core.NewScreen(70, 35), 700, 700)
	}

	t.Run("intro", func(t *testing.T) {
		g := newTestGame(t, nil)
		g.Step(core.NewInputFrame())

		c := newCanvas()
		g.Render(c)
		out := c.Screen().String()
		for _, want := range []string{"ASTEROIDS", "PRESS 'ENTER' TO BEGIN", "^"} {
			if !strings.Contains(out, want) {
				t.Errorf("intro screen missing %q", want)
			}
		}
		lines := strings.Split(out, "\n")
		if !strings.HasSuffix(lines[0], "0") {
			t.Errorf("score should be right-aligned on the top row, got %q", lines[0])
		}
	})

	t.Run("playing", func(t *testing.T) {
		g := newTestGame(t, noSpawns)
		startPlaying(t, g)
		g.asteroids = []Entity{asteroidAt(100, 300)}
		g.Step(core.NewInputFrame())

		c := newCanvas()
		g.Render(c)
		out := c.Screen().String()
		if strings.Contains(out, "ASTEROIDS") {
			t.Error("title should not be drawn while playing")
		}
		if !strings.Contains(out, "@@") {
			t.Error("asteroid sprite not drawn")
		}
	})

	t.Run("game over", func(t *testing.T) {
		g := newTestGame(t, noSpawns)
		startPlaying(t, g)
		g.score = 3
		g.asteroids = []Entity{asteroidAt(340, 580)}
		g.Step(core.NewInputFrame())

		c := newCanvas()
		g.Render(c)
		out := c.Screen().String()
		for _, want := range []string{"GAME OVER", "YOUR SCORE WAS 3", "PRESS 'ENTER' TO EXIT"} {
			if !strings.Contains(out, want) {
				t.Errorf("game over screen missing %q", want)
			}
		}
	})
}
