package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// TokenColor indexes the fixed token palette.
type TokenColor uint8

const (
	TokenRed TokenColor = iota
	TokenBlue
	TokenGreen
	TokenYellow
	TokenPurple
	TokenOrange

	TokenColorCount = 6
)

// TokenColorRGB maps a token color to its display colour.
// Order must match the TokenColor constants.
var TokenColorRGB = [TokenColorCount]RGB{
	{R: 220, G: 55, B: 50},   // red
	{R: 55, G: 110, B: 235},  // blue
	{R: 60, G: 190, B: 75},   // green
	{R: 240, G: 210, B: 60},  // yellow
	{R: 165, G: 80, B: 220},  // purple
	{R: 245, G: 140, B: 40},  // orange
}

func (c TokenColor) RGB() RGB {
	if int(c) >= len(TokenColorRGB) {
		return RGB{R: 255, G: 255, B: 255}
	}
	return TokenColorRGB[c]
}

var Palette = struct {
	Board      RGB
	Track      RGB
	TrackEdge  RGB
	Pit        RGB
	PitGlow    RGB
	Launcher   RGB
	Barrel     RGB
	Glow       RGB
	SparkHot   RGB
	SparkCool  RGB
	Confetti   RGB
}{
	Board:     RGB{R: 26, G: 30, B: 38},
	Track:     RGB{R: 52, G: 58, B: 72},
	TrackEdge: RGB{R: 70, G: 78, B: 96},
	Pit:       RGB{R: 12, G: 12, B: 16},
	PitGlow:   RGB{R: 150, G: 40, B: 30},
	Launcher:  RGB{R: 185, G: 190, B: 205},
	Barrel:    RGB{R: 120, G: 126, B: 140},
	Glow:      RGB{R: 255, G: 215, B: 110},
	SparkHot:  RGB{R: 255, G: 235, B: 170},
	SparkCool: RGB{R: 200, G: 110, B: 60},
	Confetti:  RGB{R: 240, G: 240, B: 250},
}
