package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Kind tags an Entity with its role. The kind decides which way the entity
// leaves the screen and which sprite draws it.
type Kind int

const (
	KindShip Kind = iota
	KindAsteroid
	KindLaser
	KindStar
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindLaser:
		return "laser"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Entity is a moving axis-aligned rectangle in fixed-point world units.
// Size and velocity are fixed at creation; only the position changes, so
// after n ticks the position is exactly start + n*velocity.
type Entity struct {
	kind Kind
	pos  core.Vec // Top-left corner
	size core.Vec
	vel  core.Vec // Fixed-point steps per tick
}

// NewEntity creates an entity at pos with the given size and velocity.
func NewEntity(kind Kind, pos, size, vel core.Vec) Entity {
	return Entity{kind: kind, pos: pos, size: size, vel: vel}
}

// Kind returns the entity's role.
func (e Entity) Kind() Kind { return e.kind }

// Pos returns the top-left corner.
func (e Entity) Pos() core.Vec { return e.pos }

// Size returns width and height.
func (e Entity) Size() core.Vec { return e.size }

// Vel returns the per-tick velocity.
func (e Entity) Vel() core.Vec { return e.vel }

// Rect returns the collision rectangle.
func (e Entity) Rect() core.Box {
	return core.NewBox(e.pos, e.size)
}

// Advance returns the entity moved by one tick of velocity.
func (e Entity) Advance() Entity {
	e.pos = e.pos.Add(e.vel)
	return e
}

// Shift returns the entity moved by d, independent of its velocity.
// Used for the player-steered ship.
func (e Entity) Shift(d core.Vec) Entity {
	e.pos = e.pos.Add(d)
	return e
}

// Offscreen reports whether the entity's vertical center has passed the edge
// it is travelling towards: the top for lasers, the bottom for asteroids and
// stars. The ship never leaves the screen.
func (e Entity) Offscreen(height core.Fixed) bool {
	cy := e.Rect().CenterY()
	switch e.kind {
	case KindLaser:
		return cy < 0
	case KindAsteroid, KindStar:
		return cy > height
	default:
		return false
	}
}

// advanceAll moves every entity in place by one tick.
func advanceAll(es []Entity) {
	for i := range es {
		es[i] = es[i].Advance()
	}
}

// cull removes offscreen entities, keeping order.
// Each entity is tested exactly once against its post-move position; the
// write index never passes the read index, so compaction in place is safe.
func cull(es []Entity, height core.Fixed) []Entity {
	kept := es[:0]
	for _, e := range es {
		if !e.Offscreen(height) {
			kept = append(kept, e)
		}
	}
	return kept
}
