package game

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Initialize audio system.
	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartMenuMusic()
		}()
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("ZUMA_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Board.R)/255.0,
		float32(Palette.Board.G)/255.0,
		float32(Palette.Board.B)/255.0,
		1.0,
	)

	// Track.
	curve, err := NewWorldCurve()
	if err != nil {
		panic(fmt.Errorf("track curve: %w", err))
	}
	trackBuf := buildTrackSprites(curve)

	// Renderer.
	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// Systems.
	particles := NewParticleSystem(MaxParticles, seed^0xBEAD)
	session := NewGameSession()
	var chain *Chain
	px, py := curve.PitPos()
	launcher := NewLauncher(px, py, GetLevelConfig(1).Colors, seed^0x10ADE12)

	cam := Camera{
		X:    float64(WorldWidth) / 2,
		Y:    float64(WorldHeight) / 2,
		Zoom: 1.0,
	}
	input := NewInput()
	musicOn := true

	// Presentation systems hang off the bus so the simulation tick stays
	// free of audio and particle calls.
	bus := NewEventBus()
	bus.Subscribe(EventShotFired, func(e Event) {
		PlaySound(SoundFire)
	})
	bus.Subscribe(EventTokenInserted, func(e Event) {
		PlaySound(SoundInsert)
		particles.SpawnInsertSpark(e.X, e.Y, e.Color.RGB())
	})
	bus.Subscribe(EventTokensMatched, func(e Event) {
		PlayMatchSound(e.Data)
		particles.SpawnMatchBurst(e.X, e.Y, e.Color.RGB(), e.Data)
		session.AddMatchScore(e.Data, e.Combo > 0)
		if e.Combo > 0 && session.Combo > 1 {
			PlaySound(SoundCombo)
		}
		if e.Data >= ShakeRunLength {
			cam.AddShake(4.0+float64(e.Data), 0.3)
		}
	})
	bus.Subscribe(EventChainCleared, func(e Event) {
		particles.SpawnConfetti(140)
	})
	bus.Subscribe(EventChainReachedEnd, func(e Event) {
		cam.AddShake(12.0, 0.5)
	})

	// Motion-triggered runs surface through the same event type; the burst
	// scanMatches just recorded carries the centroid.
	onMatch := func(count int) {
		burst := chain.Removed[len(chain.Removed)-1]
		bus.Emit(Event{
			Type:  EventTokensMatched,
			X:     burst.X,
			Y:     burst.Y,
			Data:  count,
			Color: burst.Color,
		})
	}

	// Reusable render buffers.
	var chainBuf, launcherBuf, glowBuf, normBuf, pitBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyM) {
			musicOn = !musicOn
			if !musicOn {
				StopMusic()
			} else if session.State == StateMenu {
				StartMenuMusic()
			} else {
				StartLevelMusic(session.CurrentLevel)
			}
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch session.State {
		case StateMenu:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				if musicOn {
					StartLevelMusic(1)
				}
				session.StartLevel(1, curve, &chain, launcher, particles, seed)
			}

		case StatePlaying:
			mx, my := CursorWorldPos(window, cam, fbW, fbH)
			launcher.AimAt(mx, my)
			if input.JustClicked(window, glfw.MouseButtonLeft) {
				if launcher.Fire(chain) {
					bus.Emit(Event{Type: EventShotFired, X: launcher.X, Y: launcher.Y, Color: launcher.Current})
				}
			}
			if input.JustClicked(window, glfw.MouseButtonRight) || input.JustPressed(window, glfw.KeyTab) {
				launcher.Swap()
				PlaySound(SoundSwap)
			}

			chain.Update(dt, onMatch)
			launcher.Update(dt, chain, bus)
			particles.Update(dt)
			session.Update(dt)
			cam.UpdateShake(dt, seed^uint64(now*1000))

			prev := session.State
			session.CheckLevelEnd(chain)
			if session.State != prev {
				switch session.State {
				case StateLevelComplete:
					bus.Emit(Event{Type: EventChainCleared})
				case StateLevelFailed:
					ex, ey := curve.PitPos()
					bus.Emit(Event{Type: EventChainReachedEnd, X: ex, Y: ey})
				}
			}

		case StateLevelComplete:
			if input.JustPressed(window, glfw.KeySpace) {
				nextLevel := session.CurrentLevel + 1
				PlaySound(SoundMenuSelect)
				if musicOn {
					StartLevelMusic(nextLevel)
				}
				session.StartLevel(nextLevel, curve, &chain, launcher, particles, seed)
			}
			particles.Update(dt)
			cam.UpdateShake(dt, seed^uint64(now*1000))

		case StateLevelFailed:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				if musicOn {
					StartLevelMusic(session.CurrentLevel)
				}
				session.StartLevel(session.CurrentLevel, curve, &chain, launcher, particles, seed)
			}
			particles.Update(dt)
			cam.UpdateShake(dt, seed^uint64(now*1000))
		}

		// Always fit the full world on screen.
		UpdateAutoCamera(&cam, fbW, fbH)

		rend.BeginFrame(fbW, fbH)

		// Static track, then the pulsing pit glow.
		rend.DrawSprites(trackBuf, cam, fbW, fbH)
		pitBuf = pitGlowSprites(pitBuf[:0], curve, now)
		rend.DrawGlowSprites(pitBuf, cam, fbW, fbH)

		if chain != nil {
			chainBuf = chain.RenderData(chainBuf[:0])
			rend.DrawBallSprites(chainBuf, cam, fbW, fbH)
		}
		if session.State == StatePlaying {
			launcherBuf = launcher.RenderData(launcherBuf[:0])
			rend.DrawBallSprites(launcherBuf, cam, fbW, fbH)
		}

		glowBuf, normBuf = particles.ParticleRenderData(glowBuf[:0], normBuf[:0])
		rend.DrawSprites(normBuf, cam, fbW, fbH)
		rend.DrawGlowSprites(glowBuf, cam, fbW, fbH)

		RenderHUD(rend, session, chain, fbW, fbH)

		window.SwapBuffers()
	}
}

// buildTrackSprites lays two layers of dots along the curve: a wide edge
// groove and a narrower inner bed. Built once, the track never moves.
func buildTrackSprites(c *Curve) []float32 {
	var buf []float32
	edge := Palette.TrackEdge
	bed := Palette.Track
	const step = 10.0
	for d := 0.0; d <= c.Total; d += step {
		x, y, _ := c.PointAt(d)
		buf = append(buf,
			float32(x), float32(y), float32(TokenDiameter+10),
			float32(edge.R)/255.0, float32(edge.G)/255.0, float32(edge.B)/255.0, 1.0,
			0,
		)
	}
	for d := 0.0; d <= c.Total; d += step {
		x, y, _ := c.PointAt(d)
		buf = append(buf,
			float32(x), float32(y), float32(TokenDiameter+2),
			float32(bed.R)/255.0, float32(bed.G)/255.0, float32(bed.B)/255.0, 1.0,
			0,
		)
	}

	// Pit mouth at the spiral center.
	px, py := c.PitPos()
	pit := Palette.Pit
	buf = append(buf,
		float32(px), float32(py), float32(TokenDiameter*1.6),
		float32(pit.R)/255.0, float32(pit.G)/255.0, float32(pit.B)/255.0, 1.0,
		0,
	)
	return buf
}

// pitGlowSprites rebuilds the pulsing glow over the pit each frame.
func pitGlowSprites(buf []float32, c *Curve, now float64) []float32 {
	px, py := c.PitPos()
	pulse := 0.55 + 0.25*math.Sin(now*2.6)
	g := Palette.PitGlow
	return append(buf,
		float32(px), float32(py), float32(TokenDiameter*3.2),
		float32(g.R)/255.0*float32(pulse),
		float32(g.G)/255.0*float32(pulse),
		float32(g.B)/255.0*float32(pulse),
		1.0, 0,
	)
}
