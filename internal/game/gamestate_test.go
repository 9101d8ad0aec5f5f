package game

import "testing"

func TestMatchScoring(t *testing.T) {
	s := NewGameSession()
	s.State = StatePlaying

	s.AddMatchScore(3, false)
	if s.Score != 3*ScorePerToken {
		t.Fatalf("Score = %d, want %d", s.Score, 3*ScorePerToken)
	}
	if s.Combo != 0 {
		t.Fatalf("motion match advanced combo to %d", s.Combo)
	}
}

func TestComboScoring(t *testing.T) {
	s := NewGameSession()
	s.State = StatePlaying

	s.AddMatchScore(3, true)
	if s.Combo != 1 {
		t.Fatalf("Combo = %d after first insertion match, want 1", s.Combo)
	}
	base := 3 * ScorePerToken
	if s.Score != base {
		t.Fatalf("Score = %d, want %d (no bonus on first match)", s.Score, base)
	}

	s.AddMatchScore(4, true)
	want := base + 4*ScorePerToken + ComboBonus
	if s.Score != want {
		t.Fatalf("Score = %d, want %d", s.Score, want)
	}
	if s.Combo != 2 {
		t.Fatalf("Combo = %d, want 2", s.Combo)
	}
	if s.Msg == "" || s.MsgTimer <= 0 {
		t.Fatalf("combo announcement not set")
	}
}

func TestComboWindowExpires(t *testing.T) {
	s := NewGameSession()
	s.State = StatePlaying

	s.AddMatchScore(3, true)
	s.Update(ComboWindow + 0.01)
	if s.Combo != 0 {
		t.Fatalf("Combo = %d after window expired, want 0", s.Combo)
	}
}

func TestCheckLevelEndFailure(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, []Token{
		{ID: 0, Color: TokenRed, Distance: 1000},
	})

	s := NewGameSession()
	s.State = StatePlaying
	s.CheckLevelEnd(ch)
	if s.State != StateLevelFailed {
		t.Fatalf("State = %v, want StateLevelFailed", s.State)
	}
}

func TestCheckLevelEndVictory(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, nil)

	s := NewGameSession()
	s.State = StatePlaying
	s.CheckLevelEnd(ch)
	if s.State != StateLevelComplete {
		t.Fatalf("State = %v, want StateLevelComplete", s.State)
	}
}

func TestCheckLevelEndKeepsPlaying(t *testing.T) {
	curve := straightCurve(t, 1000)
	ch := fixedChain(t, curve, nil)
	// Tokens still pending: an empty track is not yet a win.
	ch.spawned = ch.spawnCap - 10

	s := NewGameSession()
	s.State = StatePlaying
	s.CheckLevelEnd(ch)
	if s.State != StatePlaying {
		t.Fatalf("State = %v, want StatePlaying", s.State)
	}
}

func TestStartLevelResets(t *testing.T) {
	curve := straightCurve(t, 1000)
	s := NewGameSession()
	s.Score = 999

	var ch *Chain
	launcher := NewLauncher(0, 0, 4, 1)
	particles := NewParticleSystem(64, 1)

	s.StartLevel(1, curve, &ch, launcher, particles, 42)
	if s.Score != 0 {
		t.Fatalf("Score = %d after level 1 start, want 0", s.Score)
	}
	if ch == nil || ch.SpawnCap() != GetLevelConfig(1).SpawnCap {
		t.Fatalf("chain not rebuilt for level 1")
	}
	if s.State != StatePlaying {
		t.Fatalf("State = %v, want StatePlaying", s.State)
	}

	// Score carries across later levels.
	s.Score = 500
	s.StartLevel(2, curve, &ch, launcher, particles, 42)
	if s.Score != 500 {
		t.Fatalf("Score = %d after level 2 start, want 500", s.Score)
	}
	if ch.SpawnCap() != GetLevelConfig(2).SpawnCap {
		t.Fatalf("chain cap = %d, want level-2 cap", ch.SpawnCap())
	}
}
