package game

import "math"

// SpawnMatchBurst explodes an eliminated run: colored sparks scaled by run
// length plus a glow flash at the centroid.
func (ps *ParticleSystem) SpawnMatchBurst(x, y float64, baseCol RGB, count int) {
	r := NewRand(hash2D(ps.seed^0xA5A5A5A5, int(x), int(y)))
	intensity := clampF(float64(count)/3.0, 1.0, 3.0)

	for n := 0; n < int(26*intensity); n++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(60, 240) * intensity
		col := baseCol.Add(r.Range(-20, 20), r.Range(-20, 20), r.Range(-20, 20))
		ps.Add(Particle{
			X: x + r.RangeF(-4, 4), Y: y + r.RangeF(-4, 4),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(2.5, 5.0), MaxLife: r.RangeF(0.3, 0.7),
			Col: col, Kind: ParticleSpark,
		})
	}

	for n := 0; n < int(8*intensity); n++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(20, 90)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(14, 28), MaxLife: r.RangeF(0.15, 0.4),
			Col: Palette.Glow, Kind: ParticleGlow,
		})
	}

	for n := 0; n < int(10*intensity); n++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(10, 40)
		ps.Add(Particle{
			X: x + r.RangeF(-5, 5), Y: y + r.RangeF(-5, 5),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(8, 16), MaxLife: r.RangeF(0.3, 0.8),
			Col: Palette.Board.Add(60, 60, 65), Kind: ParticleSmoke,
		})
	}
}

// SpawnInsertSpark marks a projectile wedging into the chain.
func (ps *ParticleSystem) SpawnInsertSpark(x, y float64, col RGB) {
	r := NewRand(hash2D(ps.seed^0x1257A6, int(x), int(y)))
	for n := 0; n < 10; n++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(40, 130)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(1.8, 3.2), MaxLife: r.RangeF(0.15, 0.35),
			Col: col.Add(40, 40, 40), Kind: ParticleSpark,
		})
	}
}

// SpawnConfetti showers the board on level completion.
func (ps *ParticleSystem) SpawnConfetti(count int) {
	r := NewRand(ps.seed ^ 0xC0FE771)
	for i := 0; i < count; i++ {
		col := TokenColor(r.Intn(TokenColorCount)).RGB()
		ps.Add(Particle{
			X:  r.RangeF(0, float64(WorldWidth)),
			Y:  r.RangeF(-40, -5),
			VX: r.RangeF(-25, 25), VY: r.RangeF(60, 150),
			Size: r.RangeF(3, 6), MaxLife: r.RangeF(1.5, 3.5),
			Life: -r.RangeF(0, 1.2), // staggered start
			Col:  col, Kind: ParticleConfetti,
		})
	}
}
