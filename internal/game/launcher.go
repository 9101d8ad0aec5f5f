package game

import "math"

// Launcher is the player-controlled cannon at the spiral center. It holds
// the current and queued colors and owns every projectile in flight.
type Launcher struct {
	X, Y  float64
	Angle float64 // current aim, radians

	Current TokenColor
	Next    TokenColor
	colors  int

	Cooldown float64
	Shots    []Projectile

	rand *Rand
}

func NewLauncher(x, y float64, colors int, seed uint64) *Launcher {
	l := &Launcher{X: x, Y: y, rand: NewRand(seed)}
	l.Reset(colors, seed)
	return l
}

// Reset rerolls the color queue for a new level.
func (l *Launcher) Reset(colors int, seed uint64) {
	l.colors = colors
	l.rand = NewRand(seed)
	l.Cooldown = 0
	l.Shots = l.Shots[:0]
	l.Current = TokenColor(l.rand.Intn(colors))
	l.Next = TokenColor(l.rand.Intn(colors))
}

// AimAt points the barrel at a world position.
func (l *Launcher) AimAt(wx, wy float64) {
	l.Angle = math.Atan2(wy-l.Y, wx-l.X)
}

// Swap exchanges the current and queued colors.
func (l *Launcher) Swap() {
	l.Current, l.Next = l.Next, l.Current
}

// Fire launches the current color along the aim direction and advances the
// queue. Refuses while cooling down.
func (l *Launcher) Fire(chain *Chain) bool {
	if l.Cooldown > 0 {
		return false
	}
	l.Cooldown = LauncherCooldown
	l.Shots = append(l.Shots, Projectile{
		X:      l.X + math.Cos(l.Angle)*LauncherBarrel,
		Y:      l.Y + math.Sin(l.Angle)*LauncherBarrel,
		VX:     math.Cos(l.Angle) * ProjectileSpeed,
		VY:     math.Sin(l.Angle) * ProjectileSpeed,
		Color:  l.Current,
		Radius: ProjectileRadius,
	})
	l.Current = l.Next
	l.Next = l.pickColor(chain)
	return true
}

// pickColor draws from the colors still on the track so late-game shots
// stay useful; uniform over the level palette when the chain is empty.
func (l *Launcher) pickColor(chain *Chain) TokenColor {
	if chain != nil {
		if live := chain.ColorsInPlay(); len(live) > 0 {
			return live[l.rand.Intn(len(live))]
		}
	}
	return TokenColor(l.rand.Intn(l.colors))
}

// Update moves projectiles, culls the ones that left the world, and
// resolves impacts: first overlapped token wins, then insert, then an
// immediate pivot match check. Events for hits and matches go to the bus.
func (l *Launcher) Update(dt float64, chain *Chain, bus *EventBus) {
	if l.Cooldown > 0 {
		l.Cooldown -= dt
	}

	alive := l.Shots[:0]
	for _, p := range l.Shots {
		p.X += p.VX * dt
		p.Y += p.VY * dt

		if p.X < -p.Radius || p.Y < -p.Radius ||
			p.X > float64(WorldWidth)+p.Radius || p.Y > float64(WorldHeight)+p.Radius {
			continue
		}

		if chain != nil {
			if idx, ok := chain.CheckCollision(p); ok {
				at := chain.Insert(p, idx)
				if bus != nil {
					bus.Emit(Event{Type: EventTokenInserted, X: p.X, Y: p.Y, Color: p.Color})
				}
				if count := chain.CheckMatches(at); count > 0 && bus != nil {
					burst := chain.Removed[len(chain.Removed)-1]
					bus.Emit(Event{
						Type:  EventTokensMatched,
						X:     burst.X,
						Y:     burst.Y,
						Data:  count,
						Color: burst.Color,
						Combo: 1,
					})
				}
				continue
			}
		}
		alive = append(alive, p)
	}
	l.Shots = alive
}

// RenderData appends ball sprites for the launcher body, the loaded ball,
// the queued ball, and every projectile in flight.
func (l *Launcher) RenderData(buf []float32) []float32 {
	body := Palette.Launcher
	buf = append(buf,
		float32(l.X), float32(l.Y), float32(TokenDiameter*1.3),
		float32(body.R)/255.0, float32(body.G)/255.0, float32(body.B)/255.0, 1.0,
		float32(l.Angle),
	)

	// Barrel stub halfway to the muzzle shows the aim direction.
	barrel := Palette.Barrel
	hx := l.X + math.Cos(l.Angle)*LauncherBarrel*0.55
	hy := l.Y + math.Sin(l.Angle)*LauncherBarrel*0.55
	buf = append(buf,
		float32(hx), float32(hy), float32(TokenDiameter*0.8),
		float32(barrel.R)/255.0, float32(barrel.G)/255.0, float32(barrel.B)/255.0, 1.0,
		float32(l.Angle),
	)

	// Loaded ball sits in the muzzle, queued ball behind the body.
	cur := l.Current.RGB()
	mx := l.X + math.Cos(l.Angle)*LauncherBarrel
	my := l.Y + math.Sin(l.Angle)*LauncherBarrel
	buf = append(buf,
		float32(mx), float32(my), float32(TokenDiameter),
		float32(cur.R)/255.0, float32(cur.G)/255.0, float32(cur.B)/255.0, 1.0,
		float32(l.Angle),
	)
	nxt := l.Next.RGB()
	bx := l.X - math.Cos(l.Angle)*LauncherBarrel*0.8
	by := l.Y - math.Sin(l.Angle)*LauncherBarrel*0.8
	buf = append(buf,
		float32(bx), float32(by), float32(TokenDiameter*0.6),
		float32(nxt.R)/255.0, float32(nxt.G)/255.0, float32(nxt.B)/255.0, 1.0,
		float32(l.Angle),
	)

	for _, p := range l.Shots {
		col := p.Color.RGB()
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Radius*2),
			float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, 1.0,
			0,
		)
	}
	return buf
}
