package game

import "testing"

func TestParticleOverwriteWhenFull(t *testing.T) {
	ps := NewParticleSystem(4, 1)
	for i := 0; i < 4; i++ {
		ps.Add(Particle{X: float64(i), MaxLife: 1})
	}
	if len(ps.P) != 4 {
		t.Fatalf("len(P) = %d, want 4", len(ps.P))
	}

	// A full system recycles the oldest slots instead of growing.
	ps.Add(Particle{X: 99, MaxLife: 1})
	if len(ps.P) != 4 {
		t.Fatalf("len(P) = %d after overflow, want 4", len(ps.P))
	}
	if ps.P[0].X != 99 {
		t.Fatalf("P[0].X = %v, want overwritten 99", ps.P[0].X)
	}
}

func TestParticleExpiry(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{MaxLife: 0.1})
	ps.Add(Particle{MaxLife: 5})

	ps.Update(0.2)
	if len(ps.P) != 1 {
		t.Fatalf("len(P) = %d after expiry, want 1", len(ps.P))
	}
}

func TestParticleDelayedStart(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{X: 10, VX: 100, Life: -0.5, MaxLife: 1})

	// Held in place while the delay runs down.
	ps.Update(0.2)
	if got := ps.P[0].X; got != 10 {
		t.Fatalf("X = %v during delay, want 10", got)
	}

	ps.Update(0.4)
	if got := ps.P[0].X; got <= 10 {
		t.Fatalf("X = %v after delay elapsed, want motion", got)
	}
}

func TestParticleRenderDataSplitsGlow(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{Kind: ParticleGlow, Size: 10, MaxLife: 1, Col: Palette.Glow})
	ps.Add(Particle{Kind: ParticleSpark, Size: 3, MaxLife: 1, Col: Palette.SparkHot})

	glow, norm := ps.ParticleRenderData(nil, nil)
	if len(glow) != 8 {
		t.Fatalf("len(glow) = %d, want 8 (one sprite)", len(glow))
	}
	if len(norm) != 8 {
		t.Fatalf("len(norm) = %d, want 8 (one sprite)", len(norm))
	}
}

func TestSpawnMatchBurstAddsParticles(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 7)
	ps.SpawnMatchBurst(100, 100, TokenRed.RGB(), 3)
	few := len(ps.P)
	if few == 0 {
		t.Fatalf("no particles from a match burst")
	}

	ps.Clear()
	ps.SpawnMatchBurst(100, 100, TokenRed.RGB(), 9)
	if len(ps.P) <= few {
		t.Fatalf("run of 9 spawned %d particles, run of 3 spawned %d", len(ps.P), few)
	}
}
