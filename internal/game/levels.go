package game

type LevelConfig struct {
	Speed    float64 // base advance speed of the leading segment
	SpawnCap int     // total tokens the chain will ever create
	Colors   int     // palette size drawn from for this level
}

// GetLevelConfig returns settings for a given level.
// Speed and cap follow base + level x increment; early levels keep a small
// palette so runs form often, later levels widen it.
func GetLevelConfig(level int) LevelConfig {
	if level < 1 {
		level = 1
	}

	cfg := LevelConfig{
		Speed:    50.0 + float64(level)*5.0,
		SpawnCap: 40 + level*10,
	}

	switch {
	case level <= 3:
		cfg.Colors = 4
	case level <= 6:
		cfg.Colors = 5
	default:
		cfg.Colors = 6
	}
	return cfg
}
