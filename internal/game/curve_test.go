package game

import (
	"math"
	"testing"
)

func TestPointAtNegativeExtrapolates(t *testing.T) {
	c, err := newCurveFromPoints([]PathPoint{{0, 0}, {10, 0}})
	if err != nil {
		t.Fatalf("newCurveFromPoints: %v", err)
	}

	x, y, ang := c.PointAt(-10)
	if math.Abs(x-(-10)) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("PointAt(-10) = (%v, %v), want (-10, 0)", x, y)
	}
	if math.Abs(ang) > 1e-9 {
		t.Fatalf("angle = %v, want 0", ang)
	}
}

func TestPointAtPastEndClamps(t *testing.T) {
	c, err := newCurveFromPoints([]PathPoint{{0, 0}, {10, 0}})
	if err != nil {
		t.Fatalf("newCurveFromPoints: %v", err)
	}

	x, y, _ := c.PointAt(150)
	if math.Abs(x-10) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("PointAt(150) = (%v, %v), want (10, 0)", x, y)
	}
}

func TestPointAtSegmentBoundary(t *testing.T) {
	c, err := newCurveFromPoints([]PathPoint{{0, 0}, {10, 0}, {10, 10}})
	if err != nil {
		t.Fatalf("newCurveFromPoints: %v", err)
	}

	// Exactly on the corner: the first segment owns the boundary, so the
	// tangent is still horizontal.
	x, y, ang := c.PointAt(10)
	if math.Abs(x-10) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("PointAt(10) = (%v, %v), want (10, 0)", x, y)
	}
	if math.Abs(ang) > 1e-9 {
		t.Fatalf("boundary angle = %v, want 0 (first segment wins)", ang)
	}
}

func TestPointAtMidSegment(t *testing.T) {
	c, err := newCurveFromPoints([]PathPoint{{0, 0}, {10, 0}, {10, 10}})
	if err != nil {
		t.Fatalf("newCurveFromPoints: %v", err)
	}

	x, y, ang := c.PointAt(15)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-5) > 1e-9 {
		t.Fatalf("PointAt(15) = (%v, %v), want (10, 5)", x, y)
	}
	if math.Abs(ang-math.Pi/2) > 1e-9 {
		t.Fatalf("angle = %v, want pi/2", ang)
	}
}

func TestDegenerateCurveRejected(t *testing.T) {
	if _, err := newCurveFromPoints([]PathPoint{{0, 0}}); err == nil {
		t.Fatalf("single-point curve accepted")
	}
	if _, err := newCurveFromPoints(nil); err == nil {
		t.Fatalf("empty curve accepted")
	}
	if _, err := NewCurve(1, 0, 0, 100, 2); err == nil {
		t.Fatalf("single-sample spiral accepted")
	}
}

func TestWorldCurveShape(t *testing.T) {
	c, err := NewWorldCurve()
	if err != nil {
		t.Fatalf("NewWorldCurve: %v", err)
	}

	if c.Total <= 0 {
		t.Fatalf("Total = %v, want positive arclength", c.Total)
	}
	for i := 1; i < len(c.cumLen); i++ {
		if c.cumLen[i] < c.cumLen[i-1] {
			t.Fatalf("cumLen not monotonic at %d", i)
		}
	}

	// The pit end winds in close to the world center.
	px, py := c.PitPos()
	cx := float64(WorldWidth) / 2
	cy := float64(WorldHeight) / 2
	if math.Hypot(px-cx, py-cy) > CurveInnerRadius+1 {
		t.Fatalf("pit at (%v, %v), want within inner radius of center", px, py)
	}

	// And the spawn end sits out at the rim.
	sx, sy := c.StartPos()
	if math.Hypot(sx-cx, sy-cy) < CurveInnerRadius*2 {
		t.Fatalf("start at (%v, %v), too close to center", sx, sy)
	}
}

func TestPointAtCoversWholeTrack(t *testing.T) {
	c, err := NewWorldCurve()
	if err != nil {
		t.Fatalf("NewWorldCurve: %v", err)
	}

	// Walking the arclength never leaves the world bounds.
	for d := 0.0; d <= c.Total; d += c.Total / 500 {
		x, y, _ := c.PointAt(d)
		if x < 0 || y < 0 || x > WorldWidth || y > WorldHeight {
			t.Fatalf("PointAt(%v) = (%v, %v) outside world", d, x, y)
		}
	}
}
