package game

// World dimensions (in world pixels). World space equals the default window
// size; the auto camera rescales when the framebuffer differs (HiDPI).
const (
	WorldWidth  = 800
	WorldHeight = 600
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Track spiral layout. The curve starts at the outer rim and winds inward
// to the pit at the center; distance 0 is the outer (spawn) end.
const (
	CurveSamples     = 480
	CurveCoils       = 3.4
	CurveOuterMargin = 40.0 // gap between outer coil and world edge
	CurveInnerRadius = 30.0 // radius of the innermost turn around the pit
)

// Token geometry.
const (
	TokenRadius    = 18.0
	TokenDiameter  = 2 * TokenRadius
	ContactEpsilon = 2.0 // distance slack still counted as touching
)

// Chain motion. Trailing segments close gaps at AttractionBaseSpeed scaled
// by AttractionScaleMin + min(gap/AttractionGapScale, AttractionScaleMax),
// so the snap speeds up on wide gaps.
const (
	AttractionBaseSpeed = 90.0
	AttractionGapScale  = 50.0
	AttractionScaleMin  = 0.5
	AttractionScaleMax  = 1.5
)

// Match rules.
const MatchMinRun = 3

// Spawn color heuristic: resample attempts before giving up on avoiding a
// same-color pair at the spawn end.
const SpawnColorRetries = 10

// Launcher.
const (
	ProjectileSpeed  = 620.0
	ProjectileRadius = TokenRadius
	LauncherCooldown = 0.22
	LauncherBarrel   = 26.0 // muzzle offset from launcher center
)

// Particles.
const (
	MaxParticles      = 4000
	MaxParticleRender = 6000
)

// Font atlas layout (built in code, see font.go): 16 columns of 6x8 cells.
const (
	FontGlyphW = 5
	FontGlyphH = 7
	FontCellW  = 6
	FontCellH  = 8
	FontCols   = 16
	FontRows   = 4
	FontAtlasW = FontCols * FontCellW
	FontAtlasH = FontRows * FontCellH
)

// Scoring.
const (
	ScorePerToken  = 10
	ComboBonus     = 25  // extra points per combo step on insertion matches
	ComboWindow    = 4.0 // seconds between insertion matches to keep a combo
	ShakeRunLength = 5   // runs at least this long shake the camera
)
