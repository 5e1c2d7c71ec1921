package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Spawner creates asteroids, lasers and stars under their rate policies.
// All randomness comes from one seeded source so a round replays exactly.
type Spawner struct {
	rng        *rand.Rand
	cfg        *config.AsteroidsConfig
	difficulty *config.DifficultyManager

	lastSpawn     int        // Tick of the last asteroid
	spawnBuffer   core.Fixed // Ticks that must pass before the next asteroid
	asteroidSpeed core.Fixed // Vertical speed of the next asteroid

	lastFire int  // Tick of the last laser
	ready    bool // Next laser skips the buffer
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.AsteroidsConfig, diff *config.DifficultyManager) *Spawner {
	s := &Spawner{
		cfg:        cfg,
		difficulty: diff,
	}
	s.Reset(seed)
	return s
}

// Reset restores the round-start ramp and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.lastSpawn = 0
	s.spawnBuffer = core.ToFixed(s.cfg.Asteroids.InitialBuffer)
	s.asteroidSpeed = core.ToFixed(s.cfg.Asteroids.InitialSpeed)
	s.lastFire = 0
	s.ready = false
}

// SpawnAsteroid creates an asteroid if more than spawnBuffer ticks have
// passed since the last one, then advances the difficulty ramp.
func (s *Spawner) SpawnAsteroid(tick int) (Entity, bool) {
	if core.FixedInt(tick) <= core.FixedInt(s.lastSpawn)+s.spawnBuffer {
		return Entity{}, false
	}

	width := int(s.cfg.Window.Width)
	margin := s.cfg.Asteroids.MarginX
	x := s.randInt(-margin, width+margin)

	// Three times in four the asteroid falls straight; otherwise its drift is
	// drawn from {-1, 0, 1}, so straight falls are slightly more likely still.
	drift := 0
	if s.rng.Intn(4) == 0 {
		drift = s.randInt(-1, 1)
	}

	size := s.cfg.Asteroids.Size
	a := NewEntity(KindAsteroid,
		core.Vec{X: core.FixedInt(x), Y: -core.ToFixed(s.cfg.Asteroids.MarginY)},
		core.V(size, size),
		core.Vec{X: core.FixedInt(drift), Y: s.asteroidSpeed},
	)

	s.lastSpawn = tick
	s.spawnBuffer = s.difficulty.NextSpawnBuffer(s.spawnBuffer)
	s.asteroidSpeed = s.difficulty.NextAsteroidSpeed(s.asteroidSpeed)
	return a, true
}

// ReadyLaser lets the next shot skip the laser buffer.
// Called when play starts so the opening shot is never held back.
func (s *Spawner) ReadyLaser() {
	s.ready = true
}

// FireLaser creates a laser above the ship if more than the laser buffer has
// passed since the last shot, or if the laser was readied.
func (s *Spawner) FireLaser(tick int, ship Entity) (Entity, bool) {
	if !s.ready && tick <= s.lastFire+s.cfg.Lasers.Buffer {
		return Entity{}, false
	}

	lc := s.cfg.Lasers
	offset := core.ToFixed(lc.Offset)
	l := NewEntity(KindLaser,
		core.Vec{X: ship.Rect().CenterX() - offset, Y: ship.Pos().Y - offset},
		core.V(lc.Width, lc.Height),
		core.V(0, -lc.Speed),
	)

	s.lastFire = tick
	s.ready = false
	return l, true
}

// SpawnStar creates a star on the top edge at a random column.
func (s *Spawner) SpawnStar() Entity {
	x := s.randInt(0, int(s.cfg.Window.Width))
	return s.star(x, 0)
}

// FillStars scatters the initial star population over the whole window.
func (s *Spawner) FillStars() []Entity {
	stars := make([]Entity, 0, s.cfg.Stars.Population)
	for i := 0; i < s.cfg.Stars.Population; i++ {
		x := s.randInt(0, int(s.cfg.Window.Width))
		y := s.randInt(0, int(s.cfg.Window.Height))
		stars = append(stars, s.star(x, y))
	}
	return stars
}

func (s *Spawner) star(x, y int) Entity {
	size := s.cfg.Stars.Size
	pos := core.Vec{X: core.FixedInt(x), Y: core.FixedInt(y)}
	return NewEntity(KindStar, pos, core.V(size, size), core.V(0, s.cfg.Stars.Speed))
}

// randInt returns a uniform integer in [lo, hi].
func (s *Spawner) randInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}
