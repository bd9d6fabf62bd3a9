package scenes

import "github.com/scrawlkit/doodle"

// Circles draws concentric rings around the center. Negative z keyed to the
// radius draws the larger rings behind the smaller ones.
func Circles(w *doodle.World) {
	cycle := []doodle.Color{doodle.Red, doodle.Orange, doodle.Yellow}
	i := 0
	next := func() doodle.Color {
		c := cycle[i%len(cycle)]
		i++
		return c
	}

	g := doodle.NewGroup(w, nil).SetPos(400, 300)
	for r := 20.0; r < 100; r += 12 {
		doodle.NewCircle(w, g).SetRadius(r).SetColor(next()).SetZ(-r)
	}
	for r := 100.0; r < 250; r += 12 {
		doodle.NewCircle(w, g).SetRadius(r).SetColor(next()).SetZ(-r)
	}
}
