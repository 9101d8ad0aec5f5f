package game

import "testing"

func TestRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRandBounds(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(6); v < 0 || v >= 6 {
			t.Fatalf("Intn(6) = %d", v)
		}
		if v := r.Range(10, 20); v < 10 || v > 20 {
			t.Fatalf("Range(10, 20) = %d", v)
		}
		if v := r.RangeF(-1, 1); v < -1 || v >= 1 {
			t.Fatalf("RangeF(-1, 1) = %v", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v", v)
		}
	}
}

func TestHash2DSpreads(t *testing.T) {
	seen := make(map[uint64]bool)
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			seen[hash2D(1, x, y)] = true
		}
	}
	if len(seen) != 256 {
		t.Fatalf("hash2D collided: %d unique of 256", len(seen))
	}
}

func TestClampF(t *testing.T) {
	if got := clampF(5, 0, 1); got != 1 {
		t.Fatalf("clampF(5, 0, 1) = %v", got)
	}
	if got := clampF(-5, 0, 1); got != 0 {
		t.Fatalf("clampF(-5, 0, 1) = %v", got)
	}
	if got := clampF(0.5, 0, 1); got != 0.5 {
		t.Fatalf("clampF(0.5, 0, 1) = %v", got)
	}
}
