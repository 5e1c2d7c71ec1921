package asteroids

// CollisionResult is the outcome of one collision pass.
type CollisionResult struct {
	Asteroids []Entity // Survivors, original order
	Lasers    []Entity // Survivors, original order
	Destroyed int      // Asteroid/laser pairs removed; one point each
	ShipHit   bool     // An asteroid overlaps the ship
}

// Collide tests every asteroid against the ship and against the live lasers.
//
// Hits are marked first and the survivor lists rebuilt afterwards, so no
// entity is skipped because an earlier one was removed. An asteroid is
// destroyed by the first overlapping laser in list order; a laser destroys at
// most one asteroid per pass. A ship hit leaves both lists untouched.
func Collide(ship Entity, asteroids, lasers []Entity) CollisionResult {
	res := CollisionResult{Asteroids: asteroids, Lasers: lasers}
	if len(asteroids) == 0 {
		return res
	}

	shipRect := ship.Rect()
	asteroidHit := make([]bool, len(asteroids))
	laserHit := make([]bool, len(lasers))

	for i, a := range asteroids {
		ar := a.Rect()
		if ar.Intersects(shipRect) {
			res.ShipHit = true
		}

		for j, l := range lasers {
			if laserHit[j] {
				continue
			}
			if ar.Intersects(l.Rect()) {
				asteroidHit[i] = true
				laserHit[j] = true
				res.Destroyed++
				break
			}
		}
	}

	if res.Destroyed == 0 {
		return res
	}

	res.Asteroids = survivors(asteroids, asteroidHit)
	res.Lasers = survivors(lasers, laserHit)
	return res
}

// survivors returns the entities whose hit flag is unset, in order.
func survivors(es []Entity, hit []bool) []Entity {
	out := make([]Entity, 0, len(es))
	for i, e := range es {
		if !hit[i] {
			out = append(out, e)
		}
	}
	return out
}
