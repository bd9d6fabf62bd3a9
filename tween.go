package doodle

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Duration-based tweens, built on gween and driven by the world's fixed
// ticks like any other animation. A tween interpolates from the property's
// value at registration time to the target over duration seconds, then holds
// the final value.
//
// Tween entries own their progress state, so Copy drops them; register
// tweens on a copy after copying.

// tweenEntry wraps up to four gween lanes into an animation entry. The entry
// converts the world's absolute tick time into the deltas gween expects.
func tweenEntry(apply func(d *Doodle, vals [4]float32), tweens ...*gween.Tween) animEntry {
	last := math.NaN()
	done := false
	return animEntry{
		noCopy: true,
		apply: func(d *Doodle, now float64) {
			if done {
				return
			}
			if math.IsNaN(last) {
				last = now
			}
			dt := float32(now - last)
			last = now

			var vals [4]float32
			all := true
			for i, tw := range tweens {
				v, finished := tw.Update(dt)
				vals[i] = v
				if !finished {
					all = false
				}
			}
			apply(d, vals)
			done = all
		},
	}
}

// TweenPos animates the local position to (toX, toY) over duration seconds
// using the easing function.
func TweenPos(d *Doodle, toX, toY float64, duration float32, fn ease.TweenFunc) {
	d.addAnim(tweenEntry(
		func(d *Doodle, v [4]float32) {
			d.SetPos(float64(v[0]), float64(v[1]))
		},
		gween.New(float32(d.pos.X), float32(toX), duration, fn),
		gween.New(float32(d.pos.Y), float32(toY), duration, fn),
	))
}

// TweenColor animates the color to the target over duration seconds. On a
// group every interpolated step cascades to the children, as SetColor does.
func TweenColor(d *Doodle, to Color, duration float32, fn ease.TweenFunc) {
	d.addAnim(tweenEntry(
		func(d *Doodle, v [4]float32) {
			d.SetColor(Color{clamp8(v[0]), clamp8(v[1]), clamp8(v[2])})
		},
		gween.New(float32(d.color.R), float32(to.R), duration, fn),
		gween.New(float32(d.color.G), float32(to.G), duration, fn),
		gween.New(float32(d.color.B), float32(to.B), duration, fn),
	))
}

// TweenAlpha animates the alpha channel to the target over duration seconds.
func TweenAlpha(d *Doodle, to uint8, duration float32, fn ease.TweenFunc) {
	d.addAnim(tweenEntry(
		func(d *Doodle, v [4]float32) {
			d.SetAlpha(clamp8(v[0]))
		},
		gween.New(float32(d.alpha), float32(to), duration, fn),
	))
}

// TweenRadius animates a circle's radius to the target over duration seconds.
// Panics if d is not a circle.
func TweenRadius(d *Doodle, to float64, duration float32, fn ease.TweenFunc) {
	d.mustKind(KindCircle, "TweenRadius")
	d.addAnim(tweenEntry(
		func(d *Doodle, v [4]float32) {
			r := float64(v[0])
			if r < 0 {
				r = 0
			}
			d.SetRadius(r)
		},
		gween.New(float32(d.radius), float32(to), duration, fn),
	))
}

// clamp8 rounds a float lane value into the uint8 range.
func clamp8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
