package game

import (
	"math"
	"sort"
)

// Token is one colored ball in the chain. ID is stable while the token
// lives; Distance is its arclength position along the curve.
type Token struct {
	ID       int
	Color    TokenColor
	Distance float64
}

// MatchBurst records a run removal from the last Update/CheckMatches call,
// for effects. X, Y is the run centroid on the curve.
type MatchBurst struct {
	X, Y     float64
	Color    TokenColor
	Count    int
	Inserted bool // true when triggered by a projectile insertion
}

// Chain owns the ordered token collection and all mutation of it: spawning,
// per-tick motion, overlap repair, match removal, and projectile insertion.
// Tokens is kept sorted by ascending Distance.
type Chain struct {
	curve  *Curve
	Tokens []Token

	speed         float64 // base advance speed of the leading segment
	spawnCap      int
	spawned       int
	spawnInterval float64
	spawnTimer    float64
	colors        int // palette size for this level

	nextID int
	rand   *Rand

	// Removed holds the runs eliminated since the start of the last Update
	// call (including insertion-triggered removals after it). Read-only for
	// callers; cleared on each Update.
	Removed []MatchBurst
}

// NewChain creates a chain with one token pre-placed at distance 0.
// The spawn interval equals diameter/speed so consecutive spawns touch.
func NewChain(curve *Curve, cfg LevelConfig, seed uint64) *Chain {
	ch := &Chain{
		curve:         curve,
		speed:         cfg.Speed,
		spawnCap:      cfg.SpawnCap,
		spawnInterval: TokenDiameter / cfg.Speed,
		colors:        cfg.Colors,
		rand:          NewRand(seed),
	}
	ch.Tokens = append(ch.Tokens, Token{
		ID:       ch.nextID,
		Color:    TokenColor(ch.rand.Intn(ch.colors)),
		Distance: 0,
	})
	ch.nextID++
	ch.spawned = 1
	return ch
}

// Update advances the simulation by dt seconds. onMatch is invoked once per
// removed run with the run length; it may be nil.
func (ch *Chain) Update(dt float64, onMatch func(count int)) {
	ch.Removed = ch.Removed[:0]

	ch.stepSpawn(dt)

	// Defensive: motion and insertion keep this ordering on their own, but
	// every pass below assumes it.
	sort.Slice(ch.Tokens, func(i, j int) bool {
		return ch.Tokens[i].Distance < ch.Tokens[j].Distance
	})

	ch.stepMotion(dt)
	ch.resolveOverlap(0)
	ch.scanMatches(onMatch)
}

// stepSpawn releases at most one token per tick at the low-distance end.
// Under a very large dt the timer passes several intervals but still only
// one token spawns; the surplus is dropped with the reset. See DESIGN.md.
func (ch *Chain) stepSpawn(dt float64) {
	if ch.spawned >= ch.spawnCap {
		return
	}
	ch.spawnTimer += dt
	if ch.spawnTimer < ch.spawnInterval {
		return
	}
	ch.spawnTimer = 0

	dist := 0.0
	if len(ch.Tokens) > 0 {
		nearest := ch.Tokens[0]
		for _, t := range ch.Tokens[1:] {
			if math.Abs(t.Distance) < math.Abs(nearest.Distance) {
				nearest = t
			}
		}
		dist = nearest.Distance - TokenDiameter
	}

	ch.Tokens = append([]Token{{
		ID:       ch.nextID,
		Color:    ch.pickSpawnColor(),
		Distance: dist,
	}}, ch.Tokens...)
	ch.nextID++
	ch.spawned++
}

// pickSpawnColor picks uniformly, resampling a bounded number of times when
// the two tokens nearest the spawn end already share a color. Best effort:
// after SpawnColorRetries failed draws the matching color is kept.
func (ch *Chain) pickSpawnColor() TokenColor {
	c := TokenColor(ch.rand.Intn(ch.colors))
	if len(ch.Tokens) < 2 || ch.Tokens[0].Color != ch.Tokens[1].Color {
		return c
	}
	for i := 0; i < SpawnColorRetries && c == ch.Tokens[0].Color; i++ {
		c = TokenColor(ch.rand.Intn(ch.colors))
	}
	return c
}

// segment is a maximal run of contact-contiguous tokens, as a half-open
// index range. Recomputed every tick, never stored across ticks.
type segment struct {
	start, end int
}

func (ch *Chain) segments() []segment {
	var segs []segment
	n := len(ch.Tokens)
	for i := 0; i < n; {
		j := i + 1
		for j < n && ch.Tokens[j].Distance-ch.Tokens[j-1].Distance <= TokenDiameter+ContactEpsilon {
			j++
		}
		segs = append(segs, segment{start: i, end: j})
		i = j
	}
	return segs
}

// stepMotion advances the leading segment at base speed and pulls every
// trailing segment backward toward its predecessor, producing the magnetic
// snap when a gap opens ahead of a cluster.
func (ch *Chain) stepMotion(dt float64) {
	segs := ch.segments()
	for k, seg := range segs {
		var v float64
		if k == 0 {
			v = ch.speed
		} else {
			prev := segs[k-1]
			gap := ch.Tokens[seg.start].Distance - ch.Tokens[prev.end-1].Distance - TokenDiameter
			scale := AttractionScaleMin + math.Min(gap/AttractionGapScale, AttractionScaleMax)
			v = -AttractionBaseSpeed * scale
		}
		for i := seg.start; i < seg.end; i++ {
			ch.Tokens[i].Distance += v * dt
		}
	}
}

// resolveOverlap walks forward from index `from`, clamping each token to at
// least one diameter behind its successor's minimum spacing. This restores
// the non-overlap invariant after motion over-advances a trailing cluster.
func (ch *Chain) resolveOverlap(from int) {
	if from < 1 {
		from = 1
	}
	for i := from; i < len(ch.Tokens); i++ {
		floor := ch.Tokens[i-1].Distance + TokenDiameter
		if ch.Tokens[i].Distance < floor {
			ch.Tokens[i].Distance = floor
		}
	}
}

// scanMatches removes every maximal same-color contact run of length
// MatchMinRun or more, invoking onMatch once per run with the run length.
// Exhaustive per tick: this is the authority for matches formed by motion
// alone, independent of the pivot scan used after insertion.
func (ch *Chain) scanMatches(onMatch func(count int)) {
	for i := 0; i < len(ch.Tokens); {
		j := i + 1
		for j < len(ch.Tokens) &&
			ch.Tokens[j].Color == ch.Tokens[i].Color &&
			ch.Tokens[j].Distance-ch.Tokens[j-1].Distance <= TokenDiameter+ContactEpsilon {
			j++
		}
		if j-i >= MatchMinRun {
			count := j - i
			ch.recordBurst(i, j, false)
			ch.Tokens = append(ch.Tokens[:i], ch.Tokens[j:]...)
			if onMatch != nil {
				onMatch(count)
			}
			// Subsequent tokens shifted down; rescan from the same index.
			continue
		}
		i = j
	}
}

func (ch *Chain) recordBurst(start, end int, inserted bool) {
	mid := (ch.Tokens[start].Distance + ch.Tokens[end-1].Distance) / 2
	x, y, _ := ch.curve.PointAt(mid)
	ch.Removed = append(ch.Removed, MatchBurst{
		X:        x,
		Y:        y,
		Color:    ch.Tokens[start].Color,
		Count:    end - start,
		Inserted: inserted,
	})
}

// ReachedEnd reports whether the foremost token has rolled into the pit.
// This is the level-failure signal.
func (ch *Chain) ReachedEnd() bool {
	n := len(ch.Tokens)
	return n > 0 && ch.Tokens[n-1].Distance >= ch.curve.Total
}

func (ch *Chain) Empty() bool {
	return len(ch.Tokens) == 0
}

// FinishedSpawning reports whether the spawn cap has been reached.
// Empty() && FinishedSpawning() is the level-victory signal.
func (ch *Chain) FinishedSpawning() bool {
	return ch.spawned >= ch.spawnCap
}

// Spawned returns how many tokens have been created so far.
func (ch *Chain) Spawned() int { return ch.spawned }

// SpawnCap returns the total number of tokens this chain will ever create.
func (ch *Chain) SpawnCap() int { return ch.spawnCap }

// ColorsInPlay returns the set of colors currently on the track.
func (ch *Chain) ColorsInPlay() []TokenColor {
	var seen [TokenColorCount]bool
	var out []TokenColor
	for _, t := range ch.Tokens {
		if !seen[t.Color] {
			seen[t.Color] = true
			out = append(out, t.Color)
		}
	}
	return out
}

// RenderData appends one beveled ball sprite per live token to buf.
// Format: [x, y, size, r, g, b, a, rotation] per sprite.
func (ch *Chain) RenderData(buf []float32) []float32 {
	for _, t := range ch.Tokens {
		x, y, ang := ch.curve.PointAt(t.Distance)
		col := t.Color.RGB()
		buf = append(buf,
			float32(x), float32(y), float32(TokenDiameter),
			float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, 1.0,
			float32(ang),
		)
	}
	return buf
}
