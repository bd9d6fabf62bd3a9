package doodle

// animEntry is one registered animation. The apply function takes the doodle
// as a parameter rather than closing over it, so entries re-bind naturally
// when a doodle is copied. noCopy entries (tweens) are dropped by Copy.
type animEntry struct {
	apply  func(d *Doodle, now float64)
	noCopy bool
}

func (d *Doodle) addAnim(e animEntry) *Doodle {
	d.anims = append(d.anims, e)
	return d
}

// Update applies every registered animation in registration order, each
// through its property setter, then runs OnUpdate if set. Called by the world
// once per fixed tick; now is the world's tick time in seconds.
//
// Two animations on the same property both run; the last registered wins
// because its setter runs last.
func (d *Doodle) Update(now float64) {
	for i := range d.anims {
		d.anims[i].apply(d, now)
	}
	if d.OnUpdate != nil {
		d.OnUpdate(d, now)
	}
}

// Animation registration. Each Animate method binds a pure function of time
// to one property of the doodle. Registration validates the target up front:
// a wrong-kind or out-of-range registration panics immediately rather than
// failing mid-tick. Nothing is evaluated until the next tick.

// AnimatePos animates the local position.
func (d *Doodle) AnimatePos(fn func(t float64) Vec2) *Doodle {
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		p := fn(now)
		d.SetPos(p.X, p.Y)
	}})
}

// AnimateColor animates the color. On a group the color cascades to children
// on every tick, as SetColor does.
func (d *Doodle) AnimateColor(fn func(t float64) Color) *Doodle {
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		d.SetColor(fn(now))
	}})
}

// AnimateAlpha animates the alpha channel.
func (d *Doodle) AnimateAlpha(fn func(t float64) uint8) *Doodle {
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		d.SetAlpha(fn(now))
	}})
}

// AnimateZ animates the draw-order key.
func (d *Doodle) AnimateZ(fn func(t float64) float64) *Doodle {
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		d.SetZ(fn(now))
	}})
}

// AnimateOffset animates a line's end point offset.
func (d *Doodle) AnimateOffset(fn func(t float64) Vec2) *Doodle {
	d.mustKind(KindLine, "AnimateOffset")
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		p := fn(now)
		d.SetOffset(p.X, p.Y)
	}})
}

// AnimateHeading animates a line's angle in degrees, keeping its length.
func (d *Doodle) AnimateHeading(fn func(t float64) float64) *Doodle {
	d.mustKind(KindLine, "AnimateHeading")
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		d.SetHeading(fn(now))
	}})
}

// AnimateRadius animates a circle's radius.
func (d *Doodle) AnimateRadius(fn func(t float64) float64) *Doodle {
	d.mustKind(KindCircle, "AnimateRadius")
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		d.SetRadius(fn(now))
	}})
}

// AnimateSize animates a rectangle's width and height.
func (d *Doodle) AnimateSize(fn func(t float64) (w, h float64)) *Doodle {
	d.mustKind(KindRect, "AnimateSize")
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		w, h := fn(now)
		d.SetWidth(w)
		d.SetHeight(h)
	}})
}

// AnimatePoint animates a single polygon vertex, so vertices can move
// independently. Panics at registration if i is out of range.
func (d *Doodle) AnimatePoint(i int, fn func(t float64) Vec2) *Doodle {
	d.mustKind(KindPolygon, "AnimatePoint")
	if i < 0 || i >= len(d.points) {
		panic("doodle: polygon point index out of range")
	}
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		d.SetPoint(i, fn(now))
	}})
}

// AnimateText animates a text doodle's content. The rendered cache refreshes
// whenever the setter runs, so prefer functions that change infrequently.
func (d *Doodle) AnimateText(fn func(t float64) string) *Doodle {
	d.mustKind(KindText, "AnimateText")
	return d.addAnim(animEntry{apply: func(d *Doodle, now float64) {
		d.SetText(fn(now))
	}})
}
