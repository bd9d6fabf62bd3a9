package scenes

import (
	"math"

	"github.com/scrawlkit/doodle"
)

// rainbow cycles through hues once per second.
func rainbow(t float64) doodle.Color {
	t = math.Mod(t, 1)
	channel := func(phase float64) uint8 {
		return uint8(255 * (1 + math.Sin(2*math.Pi*(t+phase))) / 2)
	}
	return doodle.Color{R: channel(0), G: channel(1.0 / 3), B: channel(2.0 / 3)}
}

// Liskov scatters a hundred doodles of random kinds. Randomize and
// AnimateColor work uniformly across kinds, which is the point of the scene.
func Liskov(w *doodle.World) {
	rng := w.Rand()
	ctors := []func(*doodle.World, *doodle.Doodle) *doodle.Doodle{
		doodle.NewPolygon,
		doodle.NewLine,
		doodle.NewRect,
		doodle.NewCircle,
	}
	for range 100 {
		d := ctors[rng.IntN(len(ctors))](w, nil)
		if d.Kind() == doodle.KindPolygon {
			d.RandomPoints(5)
		}
		d.Randomize().AnimateColor(rainbow)
	}
}
