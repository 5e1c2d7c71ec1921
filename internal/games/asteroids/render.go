package asteroids

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-asteroids/internal/assets"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// textMargin is the left edge of menu text, in world units.
const textMargin = 100

// StarChar fills the cells covered by a star.
const StarChar = '.'

// Render draws the current phase onto c.
// Stars are drawn first so every other entity sits on top of the field.
func (g *Game) Render(c core.Canvas) {
	c.Clear()

	switch g.phase {
	case core.PhaseIntro:
		g.drawStars(c)
		g.drawLasers(c)
		g.drawShip(c)
		c.DrawText("ASTEROIDS", textMargin, 100, core.ColorBrightWhite)
		c.DrawText("Use the left and right arrows to control your space ship.", textMargin, 250, core.ColorWhite)
		c.DrawText("Press your space bar to fire lasers and destroy asteroids.", textMargin, 280, core.ColorWhite)
		c.DrawText("Destroy asteroids to earn points.", textMargin, 310, core.ColorWhite)
		c.DrawText("PRESS 'ENTER' TO BEGIN", textMargin, 400, core.ColorBrightYellow)
		g.drawScore(c)

	case core.PhasePlaying:
		g.drawStars(c)
		g.drawLasers(c)
		g.drawAsteroids(c)
		g.drawShip(c)
		g.drawScore(c)

	case core.PhaseGameOver, core.PhaseClosed:
		g.drawStars(c)
		g.drawLasers(c)
		g.drawAsteroids(c)
		g.drawExplosion(c)
		c.DrawText("GAME OVER", textMargin, 100, core.ColorBrightRed)
		c.DrawText(fmt.Sprintf("YOUR SCORE WAS %d", g.score), textMargin, 200, core.ColorBrightWhite)
		c.DrawText("PRESS 'ENTER' TO EXIT", textMargin, 270, core.ColorBrightYellow)
	}
}

// drawScore right-aligns the score on the top row.
func (g *Game) drawScore(c core.Canvas) {
	s := strconv.Itoa(g.score)
	c.DrawText(s, c.Width()-c.TextWidth(s), 0, core.ColorBrightWhite)
}

// drawShip alternates the two thruster frames on tick parity.
func (g *Game) drawShip(c core.Canvas) {
	c.DrawSprite(g.sheet.Frame(assets.Ship, g.tick%2), g.ship.Rect().RectF())
}

// drawExplosion shows the frame for the current end clock and holds the last
// frame once the animation has run its course.
func (g *Game) drawExplosion(c core.Canvas) {
	frame := g.cfg.Explosion.Frames - 1
	if !g.explosionElapsed {
		frame = g.endClock / g.cfg.Explosion.TicksPerFrame
	}
	c.DrawSprite(g.sheet.Frame(assets.Explosion, frame), g.ship.Rect().RectF())
}

func (g *Game) drawAsteroids(c core.Canvas) {
	sp := g.sheet.Frame(assets.Asteroid, 0)
	for _, a := range g.asteroids {
		c.DrawSprite(sp, a.Rect().RectF())
	}
}

func (g *Game) drawLasers(c core.Canvas) {
	sp := g.sheet.Frame(assets.Laser, 0)
	for _, l := range g.lasers {
		c.DrawSprite(sp, l.Rect().RectF())
	}
}

func (g *Game) drawStars(c core.Canvas) {
	for _, s := range g.stars {
		c.DrawRect(s.Rect().RectF(), StarChar, core.ColorWhite)
	}
}
