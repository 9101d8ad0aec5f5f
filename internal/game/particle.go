package game

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota
	ParticleGlow
	ParticleSmoke
	ParticleConfetti
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// ParticleRenderData splits particles into glow (additive) and normal
// (alpha blend) buffers. Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) ParticleRenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		t := clampF(p.Life/p.MaxLife, 0, 1)

		col := p.Col
		a := 1.0 - t

		switch p.Kind {
		case ParticleGlow:
			a = (1.0 - t) * 1.15
		case ParticleSmoke:
			fadeIn := clampF(t/0.18, 0, 1)
			a = (1.0 - t) * fadeIn * 0.8
		case ParticleSpark:
			if t > 0.5 {
				col = lerpRGB(Palette.SparkHot, Palette.SparkCool, (t-0.5)*2.0)
			}
		}
		if a <= 0.01 {
			continue
		}

		sprite := []float32{
			float32(p.X), float32(p.Y), float32(p.Size),
			float32(col.R) / 255.0, float32(col.G) / 255.0, float32(col.B) / 255.0,
			float32(a), 0,
		}
		if p.Kind == ParticleGlow {
			// Pre-multiply brightness for the additive pass.
			sprite[3] *= float32(a)
			sprite[4] *= float32(a)
			sprite[5] *= float32(a)
			sprite[6] = 1
			glowBuf = append(glowBuf, sprite...)
		} else {
			normBuf = append(normBuf, sprite...)
		}
	}
	return glowBuf, normBuf
}
