package doodle

import (
	"math"
	"testing"
)

func approx(t *testing.T, got, want float64, what string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

// --- Line ---

func TestLineSetOffsetAndEnd(t *testing.T) {
	w, _ := newTestWorld(t)
	l := NewLine(w, nil).SetPos(10, 10).SetOffset(40, 40)
	if l.Offset() != (Vec2{40, 40}) {
		t.Errorf("Offset = %v, want (40, 40)", l.Offset())
	}
	if l.End() != (Vec2{50, 50}) {
		t.Errorf("End = %v, want (50, 50)", l.End())
	}
}

func TestLineEndComposesThroughParent(t *testing.T) {
	w, _ := newTestWorld(t)
	g := NewGroup(w, nil).SetPos(100, 0)
	l := NewLine(w, g).SetPos(10, 0).SetOffset(5, 5)
	if l.End() != (Vec2{115, 5}) {
		t.Errorf("End = %v, want (115, 5)", l.End())
	}
}

func TestLineSetVecPolarConversion(t *testing.T) {
	w, _ := newTestWorld(t)
	l := NewLine(w, nil)

	l.SetVec(0, 100)
	approx(t, l.Offset().X, 100, "offset.X at 0 degrees")
	approx(t, l.Offset().Y, 0, "offset.Y at 0 degrees")

	l.SetVec(90, 100)
	approx(t, l.Offset().X, 0, "offset.X at 90 degrees")
	approx(t, l.Offset().Y, 100, "offset.Y at 90 degrees")

	l.SetVec(180, 50)
	approx(t, l.Offset().X, -50, "offset.X at 180 degrees")
	approx(t, l.Offset().Y, 0, "offset.Y at 180 degrees")
}

func TestLineSetHeadingPreservesMagnitude(t *testing.T) {
	w, _ := newTestWorld(t)
	l := NewLine(w, nil).SetOffset(30, 40) // length 50
	l.SetHeading(0)
	approx(t, l.Offset().X, 50, "offset.X after SetHeading")
	approx(t, l.Offset().Y, 0, "offset.Y after SetHeading")
}

// --- Circle ---

func TestCircleRadiusAndGrow(t *testing.T) {
	w, _ := newTestWorld(t)
	c := NewCircle(w, nil).SetRadius(10).Grow(5).Grow(-3)
	if c.Radius() != 12 {
		t.Errorf("radius = %v, want 12", c.Radius())
	}
}

func TestNegativeRadiusPanics(t *testing.T) {
	w, _ := newTestWorld(t)
	c := NewCircle(w, nil)
	assertPanics(t, "negative radius", func() { c.SetRadius(-1) })
}

// --- Rect ---

func TestRectGrowBy(t *testing.T) {
	w, _ := newTestWorld(t)
	r := NewRect(w, nil).SetWidth(10).SetHeight(20).GrowBy(5, -5)
	if r.Width() != 15 || r.Height() != 15 {
		t.Errorf("size = %vx%v, want 15x15", r.Width(), r.Height())
	}
}

// --- Polygon ---

func TestPolygonAddAndSetPoint(t *testing.T) {
	w, _ := newTestWorld(t)
	p := NewPolygon(w, nil).AddPoint(Vec2{1, 1}).AddPoint(Vec2{2, 2})
	p.SetPoint(0, Vec2{9, 9})
	pts := p.Points()
	if len(pts) != 2 || pts[0] != (Vec2{9, 9}) || pts[1] != (Vec2{2, 2}) {
		t.Errorf("points = %v", pts)
	}
}

func TestPolygonSetPointOutOfRangePanics(t *testing.T) {
	w, _ := newTestWorld(t)
	p := NewPolygon(w, nil).AddPoint(Vec2{0, 0})
	assertPanics(t, "index 1", func() { p.SetPoint(1, Vec2{}) })
	assertPanics(t, "index -1", func() { p.SetPoint(-1, Vec2{}) })
}

func TestPolygonRandomPoints(t *testing.T) {
	w, _ := newTestWorld(t)
	p := NewPolygon(w, nil).RandomPoints(8)
	if len(p.Points()) != 8 {
		t.Fatalf("%d points, want 8", len(p.Points()))
	}
	for i, pt := range p.Points() {
		if pt.X < -50 || pt.X > 50 || pt.Y < -50 || pt.Y > 50 {
			t.Errorf("point %d = %v outside ±50", i, pt)
		}
	}
}

// --- Kind guards ---

func TestGeometrySettersGuardKind(t *testing.T) {
	w, _ := newTestWorld(t)
	c := NewCircle(w, nil)
	r := NewRect(w, nil)

	assertPanics(t, "SetOffset on circle", func() { c.SetOffset(1, 1) })
	assertPanics(t, "SetRadius on rect", func() { r.SetRadius(1) })
	assertPanics(t, "SetWidth on circle", func() { c.SetWidth(1) })
	assertPanics(t, "AddPoint on rect", func() { r.AddPoint(Vec2{}) })
	assertPanics(t, "SetText on circle", func() { c.SetText("hi") })
}
