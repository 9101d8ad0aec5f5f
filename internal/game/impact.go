package game

import "math"

// Projectile is a fired ball in flight. Owned by the launcher; the chain
// only reads it during collision and insertion calls.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Color  TokenColor
	Radius float64
}

// CheckCollision scans live tokens in ascending order and returns the index
// of the first whose circle overlaps the projectile's. First match wins,
// not closest match: ascending-order scan keeps simultaneous candidates
// deterministic.
func (ch *Chain) CheckCollision(p Projectile) (int, bool) {
	for i, t := range ch.Tokens {
		x, y, _ := ch.curve.PointAt(t.Distance)
		if math.Hypot(p.X-x, p.Y-y) <= TokenRadius+p.Radius {
			return i, true
		}
	}
	return 0, false
}

// Insert splices a new token with the projectile's color at hitIndex,
// deliberately at the hit token's exact distance, then repairs spacing
// forward so an immediate match check sees non-overlapping state.
// Returns the index the new token lives at (= hitIndex).
func (ch *Chain) Insert(p Projectile, hitIndex int) int {
	tok := Token{
		ID:       ch.nextID,
		Color:    p.Color,
		Distance: ch.Tokens[hitIndex].Distance,
	}
	ch.nextID++

	ch.Tokens = append(ch.Tokens, Token{})
	copy(ch.Tokens[hitIndex+1:], ch.Tokens[hitIndex:])
	ch.Tokens[hitIndex] = tok

	ch.resolveOverlap(hitIndex + 1)
	return hitIndex
}

// CheckMatches extends left and right from pivot by color equality and
// removes the run when it reaches MatchMinRun, returning the removed count.
// The contact gap is not re-checked here: insertion has just enforced exact
// spacing from the pivot forward, and the hit token was touching by
// definition. An out-of-range pivot is a no-op, not an error.
func (ch *Chain) CheckMatches(pivot int) int {
	if pivot < 0 || pivot >= len(ch.Tokens) {
		return 0
	}
	color := ch.Tokens[pivot].Color
	start := pivot
	for start > 0 && ch.Tokens[start-1].Color == color {
		start--
	}
	end := pivot + 1
	for end < len(ch.Tokens) && ch.Tokens[end].Color == color {
		end++
	}
	count := end - start
	if count < MatchMinRun {
		return 0
	}
	ch.recordBurst(start, end, true)
	ch.Tokens = append(ch.Tokens[:start], ch.Tokens[end:]...)
	return count
}
