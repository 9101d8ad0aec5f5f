package game

import "testing"

func TestLevelOneConfig(t *testing.T) {
	cfg := GetLevelConfig(1)
	if cfg.Speed != 55 {
		t.Fatalf("Speed = %v, want 55", cfg.Speed)
	}
	if cfg.SpawnCap != 50 {
		t.Fatalf("SpawnCap = %d, want 50", cfg.SpawnCap)
	}
	if cfg.Colors != 4 {
		t.Fatalf("Colors = %d, want 4", cfg.Colors)
	}
}

func TestLevelScaling(t *testing.T) {
	cases := []struct {
		level  int
		speed  float64
		cap    int
		colors int
	}{
		{2, 60, 60, 4},
		{4, 70, 80, 5},
		{7, 85, 110, 6},
		{12, 110, 160, 6},
	}
	for _, tc := range cases {
		cfg := GetLevelConfig(tc.level)
		if cfg.Speed != tc.speed || cfg.SpawnCap != tc.cap || cfg.Colors != tc.colors {
			t.Errorf("level %d: got %+v, want {%v %d %d}", tc.level, cfg, tc.speed, tc.cap, tc.colors)
		}
	}
}

func TestLevelClampsBelowOne(t *testing.T) {
	if got, want := GetLevelConfig(0), GetLevelConfig(1); got != want {
		t.Fatalf("GetLevelConfig(0) = %+v, want level-1 config %+v", got, want)
	}
	if got, want := GetLevelConfig(-3), GetLevelConfig(1); got != want {
		t.Fatalf("GetLevelConfig(-3) = %+v, want level-1 config %+v", got, want)
	}
}
