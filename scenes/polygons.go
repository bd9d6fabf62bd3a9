package scenes

import "github.com/scrawlkit/doodle"

// Polygons scatters polygons of 3, 8, and 100 points and jitters every
// vertex independently each tick.
func Polygons(w *doodle.World) {
	rng := w.Rand()
	jitter := func(t float64) doodle.Vec2 {
		return doodle.Vec2{
			X: rng.Float64()*100 - 50,
			Y: rng.Float64()*100 - 50,
		}
	}
	for range 5 {
		for _, n := range []int{3, 8, 100} {
			p := doodle.NewPolygon(w, nil).Randomize().RandomPoints(n)
			for i := range n {
				p.AnimatePoint(i, jitter)
			}
		}
	}
}
