package game

import (
	"math"
	"testing"
)

func TestFireCooldown(t *testing.T) {
	l := NewLauncher(400, 300, 4, 1)

	if !l.Fire(nil) {
		t.Fatalf("first Fire refused")
	}
	if l.Fire(nil) {
		t.Fatalf("Fire ignored cooldown")
	}

	l.Update(LauncherCooldown+0.01, nil, nil)
	if !l.Fire(nil) {
		t.Fatalf("Fire still refused after cooldown")
	}
}

func TestFireAdvancesQueue(t *testing.T) {
	l := NewLauncher(400, 300, 4, 1)
	next := l.Next

	l.Fire(nil)
	if l.Current != next {
		t.Fatalf("Current = %v after Fire, want queued %v", l.Current, next)
	}
	if len(l.Shots) != 1 {
		t.Fatalf("len(Shots) = %d, want 1", len(l.Shots))
	}
}

func TestSwap(t *testing.T) {
	l := NewLauncher(400, 300, 4, 1)
	cur, next := l.Current, l.Next

	l.Swap()
	if l.Current != next || l.Next != cur {
		t.Fatalf("Swap gave (%v, %v), want (%v, %v)", l.Current, l.Next, next, cur)
	}
}

func TestAimAt(t *testing.T) {
	l := NewLauncher(100, 100, 4, 1)

	l.AimAt(200, 100)
	if math.Abs(l.Angle) > 1e-9 {
		t.Fatalf("Angle = %v aiming right, want 0", l.Angle)
	}
	l.AimAt(100, 200)
	if math.Abs(l.Angle-math.Pi/2) > 1e-9 {
		t.Fatalf("Angle = %v aiming down, want pi/2", l.Angle)
	}
}

func TestPickColorPrefersLiveColors(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenPurple, Distance: 0},
	})

	l := NewLauncher(400, 300, 4, 1)
	for i := 0; i < 20; i++ {
		if got := l.pickColor(ch); got != TokenPurple {
			t.Fatalf("pickColor = %v with only purple in play", got)
		}
	}
}

func TestProjectileImpactInsertsAndMatches(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenRed, Distance: 100},
		{ID: 1, Color: TokenRed, Distance: 136},
	})

	var inserted, matched int
	var matchLen int
	bus := NewEventBus()
	bus.Subscribe(EventTokenInserted, func(e Event) { inserted++ })
	bus.Subscribe(EventTokensMatched, func(e Event) {
		matched++
		matchLen = e.Data
		if e.Combo != 1 {
			t.Errorf("Combo = %d on insertion match, want 1", e.Combo)
		}
	})

	l := NewLauncher(400, 300, 4, 1)
	// A red shot closing vertically on the first token at (100, 0).
	l.Shots = append(l.Shots, Projectile{
		X: 100, Y: -50, VY: 500, Color: TokenRed, Radius: ProjectileRadius,
	})

	l.Update(0.1, ch, bus)

	if inserted != 1 {
		t.Fatalf("inserted events = %d, want 1", inserted)
	}
	if matched != 1 || matchLen != 3 {
		t.Fatalf("matched events = %d (len %d), want 1 event of 3", matched, matchLen)
	}
	if !ch.Empty() {
		t.Fatalf("chain not cleared, tokens = %v", ch.Tokens)
	}
	if len(l.Shots) != 0 {
		t.Fatalf("projectile survived its impact")
	}
}

func TestProjectileCulledOffWorld(t *testing.T) {
	l := NewLauncher(400, 300, 4, 1)
	l.Shots = append(l.Shots, Projectile{
		X: float64(WorldWidth) - 1, Y: 300, VX: 5000, Radius: ProjectileRadius,
	})

	l.Update(0.1, nil, nil)
	if len(l.Shots) != 0 {
		t.Fatalf("off-world projectile not culled")
	}
}
