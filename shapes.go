package doodle

import "math"

// polar converts an angle in degrees (counter-clockwise from the positive
// x-axis) and a magnitude into an offset vector.
func polar(degrees, magnitude float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{magnitude * math.Cos(rad), magnitude * math.Sin(rad)}
}

// --- Line ---

// SetOffset sets the line's end point relative to its position, so
// NewLine(w, nil).SetPos(10, 10).SetOffset(40, 40) runs from (10, 10) to
// (50, 50).
func (d *Doodle) SetOffset(x, y float64) *Doodle {
	d.mustKind(KindLine, "SetOffset")
	d.offset = Vec2{x, y}
	return d
}

// SetVec sets the line's offset from an angle in degrees and a magnitude.
func (d *Doodle) SetVec(degrees, magnitude float64) *Doodle {
	d.mustKind(KindLine, "SetVec")
	d.offset = polar(degrees, magnitude)
	return d
}

// SetHeading rotates the line to the given angle, keeping its current length.
func (d *Doodle) SetHeading(degrees float64) *Doodle {
	d.mustKind(KindLine, "SetHeading")
	magnitude := math.Hypot(d.offset.X, d.offset.Y)
	d.offset = polar(degrees, magnitude)
	return d
}

// Offset returns the line's end point offset, relative to its position.
func (d *Doodle) Offset() Vec2 {
	d.mustKind(KindLine, "Offset")
	return d.offset
}

// End returns the line's end point in world space.
func (d *Doodle) End() Vec2 {
	d.mustKind(KindLine, "End")
	return d.WorldPos().Add(d.offset)
}

// --- Circle ---

// SetRadius sets the circle's radius. Panics if r is negative.
func (d *Doodle) SetRadius(r float64) *Doodle {
	d.mustKind(KindCircle, "SetRadius")
	if r < 0 {
		panic("doodle: negative radius")
	}
	d.radius = r
	return d
}

// Grow changes the circle's radius by an amount. Negative shrinks.
func (d *Doodle) Grow(by float64) *Doodle {
	d.mustKind(KindCircle, "Grow")
	return d.SetRadius(d.radius + by)
}

// Radius returns the circle's radius.
func (d *Doodle) Radius() float64 {
	d.mustKind(KindCircle, "Radius")
	return d.radius
}

// --- Rect ---

// SetWidth sets the rectangle's width.
func (d *Doodle) SetWidth(w float64) *Doodle {
	d.mustKind(KindRect, "SetWidth")
	d.width = w
	return d
}

// SetHeight sets the rectangle's height.
func (d *Doodle) SetHeight(h float64) *Doodle {
	d.mustKind(KindRect, "SetHeight")
	d.height = h
	return d
}

// GrowBy changes the rectangle's width and height by deltas.
func (d *Doodle) GrowBy(dw, dh float64) *Doodle {
	d.mustKind(KindRect, "GrowBy")
	return d.SetWidth(d.width + dw).SetHeight(d.height + dh)
}

// Width returns the rectangle's width.
func (d *Doodle) Width() float64 {
	d.mustKind(KindRect, "Width")
	return d.width
}

// Height returns the rectangle's height.
func (d *Doodle) Height() float64 {
	d.mustKind(KindRect, "Height")
	return d.height
}

// --- Polygon ---

// AddPoint appends a vertex, relative to the polygon's position. Insertion
// order is drawing order; the outline closes back to the first point.
func (d *Doodle) AddPoint(p Vec2) *Doodle {
	d.mustKind(KindPolygon, "AddPoint")
	d.points = append(d.points, p)
	return d
}

// SetPoint replaces the vertex at index i. Panics if i is out of range.
func (d *Doodle) SetPoint(i int, p Vec2) *Doodle {
	d.mustKind(KindPolygon, "SetPoint")
	if i < 0 || i >= len(d.points) {
		panic("doodle: polygon point index out of range")
	}
	d.points[i] = p
	return d
}

// Points returns the polygon's vertices, relative to its position. The
// returned slice MUST NOT be mutated by the caller.
func (d *Doodle) Points() []Vec2 {
	d.mustKind(KindPolygon, "Points")
	return d.points
}

// RandomPoints appends n random vertices within ±50 of the polygon's
// position, drawn from the world's seeded random stream.
func (d *Doodle) RandomPoints(n int) *Doodle {
	d.mustKind(KindPolygon, "RandomPoints")
	rng := d.world.Rand()
	for range n {
		d.AddPoint(Vec2{rng.Float64()*100 - 50, rng.Float64()*100 - 50})
	}
	return d
}
