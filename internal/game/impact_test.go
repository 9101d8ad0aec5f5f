package game

import (
	"math"
	"testing"
)

func TestCheckCollisionFirstMatchWins(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenRed, Distance: 0},
		{ID: 1, Color: TokenBlue, Distance: 36},
	})

	// Dead center between both tokens: each overlaps, the lower index wins.
	p := Projectile{X: 18, Y: 0, Color: TokenGreen, Radius: ProjectileRadius}
	idx, ok := ch.CheckCollision(p)
	if !ok || idx != 0 {
		t.Fatalf("CheckCollision = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestCheckCollisionMiss(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenRed, Distance: 0},
	})

	p := Projectile{X: 0, Y: 100, Color: TokenGreen, Radius: ProjectileRadius}
	if _, ok := ch.CheckCollision(p); ok {
		t.Fatalf("CheckCollision hit a token 100 units away")
	}
}

func TestInsertAtHitDistance(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenRed, Distance: 0},
		{ID: 1, Color: TokenBlue, Distance: 36},
	})

	p := Projectile{X: 36, Y: 0, Color: TokenRed, Radius: ProjectileRadius}
	at := ch.Insert(p, 1)

	if at != 1 {
		t.Fatalf("Insert returned %d, want 1", at)
	}
	if len(ch.Tokens) != 3 {
		t.Fatalf("len(Tokens) = %d, want 3", len(ch.Tokens))
	}
	// New token takes the hit token's distance; the displaced one moves up.
	if got := ch.Tokens[1].Distance; math.Abs(got-36) > 1e-9 {
		t.Fatalf("inserted distance = %v, want 36", got)
	}
	if ch.Tokens[1].Color != TokenRed {
		t.Fatalf("inserted color = %v, want red", ch.Tokens[1].Color)
	}
	if got := ch.Tokens[2].Distance; math.Abs(got-72) > 1e-9 {
		t.Fatalf("displaced distance = %v, want 72", got)
	}
	if ch.Tokens[2].Color != TokenBlue {
		t.Fatalf("displaced color = %v, want blue", ch.Tokens[2].Color)
	}
}

func TestCheckMatchesTooShort(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenRed, Distance: 0},
		{ID: 1, Color: TokenRed, Distance: 36},
		{ID: 2, Color: TokenBlue, Distance: 72},
	})

	if got := ch.CheckMatches(1); got != 0 {
		t.Fatalf("CheckMatches = %d, want 0", got)
	}
	if len(ch.Tokens) != 3 {
		t.Fatalf("len(Tokens) = %d after failed match, want 3", len(ch.Tokens))
	}
}

func TestInsertionCompletesRun(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenRed, Distance: 0},
		{ID: 1, Color: TokenRed, Distance: 36},
		{ID: 2, Color: TokenBlue, Distance: 72},
	})

	p := Projectile{X: 72, Y: 0, Color: TokenRed, Radius: ProjectileRadius}
	at := ch.Insert(p, 2)
	count := ch.CheckMatches(at)

	if count != 3 {
		t.Fatalf("CheckMatches = %d, want 3", count)
	}
	if len(ch.Tokens) != 1 || ch.Tokens[0].Color != TokenBlue {
		t.Fatalf("tokens after match = %v, want single blue", ch.Tokens)
	}
	// The survivor kept the spacing-repaired position past the removed run.
	if got := ch.Tokens[0].Distance; math.Abs(got-108) > 1e-9 {
		t.Fatalf("survivor distance = %v, want 108", got)
	}

	if len(ch.Removed) != 1 {
		t.Fatalf("len(Removed) = %d, want 1", len(ch.Removed))
	}
	burst := ch.Removed[0]
	if !burst.Inserted || burst.Count != 3 || burst.Color != TokenRed {
		t.Fatalf("burst = %+v, want inserted red run of 3", burst)
	}
}

func TestCheckMatchesPivotOutOfRange(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenRed, Distance: 0},
	})

	if got := ch.CheckMatches(-1); got != 0 {
		t.Fatalf("CheckMatches(-1) = %d, want 0", got)
	}
	if got := ch.CheckMatches(5); got != 0 {
		t.Fatalf("CheckMatches(5) = %d, want 0", got)
	}
	if len(ch.Tokens) != 1 {
		t.Fatalf("out-of-range pivot mutated the chain")
	}
}

func TestCheckMatchesExtendsBothDirections(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenGreen, Distance: 0},
		{ID: 1, Color: TokenRed, Distance: 36},
		{ID: 2, Color: TokenRed, Distance: 72},
		{ID: 3, Color: TokenRed, Distance: 108},
		{ID: 4, Color: TokenRed, Distance: 144},
		{ID: 5, Color: TokenGreen, Distance: 180},
	})

	if got := ch.CheckMatches(2); got != 4 {
		t.Fatalf("CheckMatches = %d, want 4", got)
	}
	if len(ch.Tokens) != 2 {
		t.Fatalf("len(Tokens) = %d, want 2", len(ch.Tokens))
	}
	for _, tok := range ch.Tokens {
		if tok.Color != TokenGreen {
			t.Fatalf("survivor %v not green", tok)
		}
	}
}
