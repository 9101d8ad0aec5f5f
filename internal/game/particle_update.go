package game

// Update advances all particles by dt and drops the expired ones in place.
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.P[:0]
	for _, p := range ps.P {
		p.Life += dt
		if p.Life < 0 {
			// Delayed start: hold position until the delay elapses.
			alive = append(alive, p)
			continue
		}
		if p.Life >= p.MaxLife {
			continue
		}

		switch p.Kind {
		case ParticleSpark:
			// Sparks slow down as they cool.
			p.VX *= 1.0 - 2.6*dt
			p.VY *= 1.0 - 2.6*dt
		case ParticleSmoke:
			p.VY -= 18 * dt // drift upward
		case ParticleConfetti:
			p.VY += 35 * dt // flutter down
			p.VX *= 1.0 - 0.8*dt
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt
		alive = append(alive, p)
	}
	ps.P = alive
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}
