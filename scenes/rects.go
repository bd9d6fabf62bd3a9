package scenes

import "github.com/scrawlkit/doodle"

// Rects layers random rectangles in four size bands, darkest and largest at
// the back.
func Rects(w *doodle.World) {
	rng := w.Rand()
	bands := []struct {
		size  float64
		color doodle.Color
		z     float64
	}{
		{200, doodle.Black, 10},
		{150, doodle.DarkBlue, 15},
		{100, doodle.DarkGrey, 20},
		{50, doodle.LightGrey, 30},
	}
	for range 25 {
		for _, b := range bands {
			doodle.NewRect(w, nil).
				Randomize().
				SetWidth(10 + rng.Float64()*b.size).
				SetHeight(10 + rng.Float64()*b.size).
				SetColor(b.color).
				SetZ(b.z)
		}
	}
}
