package scenes

import "github.com/scrawlkit/doodle"

// Grid lays out line spirals in a 3x4 grid. Each spiral is a group of lines
// sharing an origin with stepped angles; roughly one in ten is skipped to
// keep the fans ragged.
func Grid(w *doodle.World) {
	rng := w.Rand()
	spirals := func(yield func(*doodle.Doodle) bool) {
		for {
			g := doodle.NewGroup(w, nil)
			for deg := 0.0; deg < 180; deg += 10 {
				if rng.Float64() > 0.1 {
					doodle.NewLine(w, g).SetVec(deg, 200-deg)
				}
			}
			if !yield(g) {
				return
			}
		}
	}
	doodle.MakeGrid(spirals, 3, 4, 250, 140, 70, 20)
}
