package game

type GameState int

const (
	StateMenu          GameState = iota
	StatePlaying                 // main gameplay
	StateLevelComplete           // chain cleared after spawn cap
	StateLevelFailed             // chain reached the pit
)

type GameSession struct {
	State        GameState
	CurrentLevel int
	LevelTimer   float64
	Score        int

	// Combo: consecutive insertion-triggered matches within ComboWindow.
	Combo      int
	ComboTimer float64

	// Transient HUD label (combo announcements, warnings).
	Msg      string
	MsgTimer float64
	MsgCol   RGB
}

func NewGameSession() *GameSession {
	return &GameSession{State: StateMenu}
}

// StartLevel resets the chain and launcher and begins a new level.
func (s *GameSession) StartLevel(level int, curve *Curve, chain **Chain, launcher *Launcher, particles *ParticleSystem, seed uint64) {
	s.CurrentLevel = level
	s.State = StatePlaying
	s.LevelTimer = 0
	s.Combo = 0
	s.ComboTimer = 0
	s.Msg = ""
	s.MsgTimer = 0
	if level == 1 {
		s.Score = 0
	}

	cfg := GetLevelConfig(level)
	levelSeed := hash2D(seed^uint64(level)*0xA11CE5ED, level, cfg.SpawnCap)
	*chain = NewChain(curve, cfg, levelSeed)
	launcher.Reset(cfg.Colors, levelSeed^0x10ADE12)
	particles.Clear()
}

// Update advances the level timer and fades transient labels.
func (s *GameSession) Update(dt float64) {
	if s.State == StatePlaying {
		s.LevelTimer += dt
	}
	if s.ComboTimer > 0 {
		s.ComboTimer -= dt
		if s.ComboTimer <= 0 {
			s.Combo = 0
		}
	}
	if s.MsgTimer > 0 {
		s.MsgTimer -= dt
	}
}

// AddMatchScore credits an eliminated run. Insertion-triggered matches
// extend the combo; motion-triggered ones only score the tokens.
func (s *GameSession) AddMatchScore(count int, inserted bool) {
	s.Score += count * ScorePerToken
	if !inserted {
		return
	}
	s.Combo++
	s.ComboTimer = ComboWindow
	if s.Combo > 1 {
		s.Score += (s.Combo - 1) * ComboBonus
		s.announceCombo()
	}
}

func (s *GameSession) announceCombo() {
	labels := []string{"COMBO X2!", "COMBO X3!", "UNSTOPPABLE!", "CHAIN MASTER!"}
	idx := clamp(s.Combo-2, 0, len(labels)-1)
	s.Msg = labels[idx]
	s.MsgTimer = 1.8
	s.MsgCol = Palette.Glow
}

// CheckLevelEnd applies the chain's terminal signals.
func (s *GameSession) CheckLevelEnd(chain *Chain) {
	if s.State != StatePlaying || chain == nil {
		return
	}

	// Lose: the chain rolled into the pit.
	if chain.ReachedEnd() {
		s.State = StateLevelFailed
		PlaySound(SoundGameOver)
		return
	}

	// Win: every token spawned and eliminated.
	if chain.Empty() && chain.FinishedSpawning() {
		s.State = StateLevelComplete
		PlaySound(SoundLevelUp)
	}
}
