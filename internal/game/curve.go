package game

import (
	"errors"
	"math"
)

// PathPoint is a 2D sample on the track polyline.
type PathPoint struct {
	X, Y float64
}

// Curve is the fixed track the chain rolls along: an immutable polyline with
// precomputed arclength. It is built once at startup and never mutated, so
// it is safe to read from the render pass while the simulation runs.
type Curve struct {
	Points []PathPoint
	segLen []float64 // length of segment i (Points[i] -> Points[i+1])
	cumLen []float64 // arclength at Points[i]; cumLen[0] = 0
	Total  float64
}

var errDegenerateCurve = errors.New("curve needs at least 2 sample points")

// NewCurve builds a spiral track: samples points from the outer rim winding
// inward to the pit at (cx, cy). Distance 0 is the outer (spawn) end.
func NewCurve(samples int, cx, cy, maxRadius, coils float64) (*Curve, error) {
	if samples < 2 {
		return nil, errDegenerateCurve
	}

	pts := make([]PathPoint, samples)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples-1) // 0 = outer start, 1 = pit
		ang := t * coils * 2 * math.Pi
		rad := lerpF(maxRadius, CurveInnerRadius, t)
		pts[i] = PathPoint{
			X: cx + math.Cos(ang)*rad,
			Y: cy + math.Sin(ang)*rad,
		}
	}
	return newCurveFromPoints(pts)
}

func newCurveFromPoints(pts []PathPoint) (*Curve, error) {
	if len(pts) < 2 {
		return nil, errDegenerateCurve
	}
	c := &Curve{
		Points: pts,
		segLen: make([]float64, len(pts)-1),
		cumLen: make([]float64, len(pts)),
	}
	for i := 0; i < len(pts)-1; i++ {
		c.segLen[i] = math.Hypot(pts[i+1].X-pts[i].X, pts[i+1].Y-pts[i].Y)
		c.cumLen[i+1] = c.cumLen[i] + c.segLen[i]
	}
	c.Total = c.cumLen[len(pts)-1]
	return c, nil
}

// PointAt maps an arclength distance to a position and tangent angle.
// Negative distances extrapolate linearly backward along the initial
// tangent; distances past the end clamp to the last sample point.
func (c *Curve) PointAt(dist float64) (x, y, angle float64) {
	first := c.Points[0]
	if dist < 0 {
		a := c.segAngle(0)
		return first.X + math.Cos(a)*dist, first.Y + math.Sin(a)*dist, a
	}
	if dist >= c.Total {
		last := c.Points[len(c.Points)-1]
		return last.X, last.Y, c.segAngle(len(c.segLen) - 1)
	}

	// Linear walk: curve resolution is a few hundred points, and the first
	// segment whose span contains dist wins ties at exact boundaries.
	for i, l := range c.segLen {
		if dist <= c.cumLen[i]+l {
			t := 0.0
			if l > 0 {
				t = (dist - c.cumLen[i]) / l
			}
			a := pathPointLerp(c.Points[i], c.Points[i+1], t)
			return a.X, a.Y, c.segAngle(i)
		}
	}

	// Floating error can leave dist just under Total but past the last
	// cumulative sum; resolve as the end clamp.
	last := c.Points[len(c.Points)-1]
	return last.X, last.Y, c.segAngle(len(c.segLen) - 1)
}

func (c *Curve) segAngle(i int) float64 {
	a := c.Points[i]
	b := c.Points[i+1]
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

func pathPointLerp(a, b PathPoint, t float64) PathPoint {
	return PathPoint{X: lerpF(a.X, b.X, t), Y: lerpF(a.Y, b.Y, t)}
}

// PitPos returns the terminal end of the track.
func (c *Curve) PitPos() (float64, float64) {
	p := c.Points[len(c.Points)-1]
	return p.X, p.Y
}

// StartPos returns the spawn end of the track.
func (c *Curve) StartPos() (float64, float64) {
	p := c.Points[0]
	return p.X, p.Y
}

// NewWorldCurve builds the spiral sized to the world, centered on the pit.
func NewWorldCurve() (*Curve, error) {
	cx := float64(WorldWidth) / 2
	cy := float64(WorldHeight) / 2
	maxRadius := math.Min(cx, cy) - CurveOuterMargin
	return NewCurve(CurveSamples, cx, cy, maxRadius, CurveCoils)
}
