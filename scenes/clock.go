package scenes

import (
	"math"

	"github.com/scrawlkit/doodle"
)

// Clock draws a dial with a hand that sweeps a full turn per minute,
// changing color every second.
func Clock(w *doodle.World) {
	g := doodle.NewGroup(w, nil).SetPos(400, 300)
	doodle.NewCircle(w, g).SetRadius(300).SetColor(doodle.Black).SetZ(1)
	doodle.NewCircle(w, g).SetRadius(290).SetColor(doodle.Brown).SetZ(10)
	doodle.NewCircle(w, g).SetRadius(20).SetColor(doodle.Black).SetZ(50)

	cycle := []doodle.Color{doodle.Red, doodle.Orange, doodle.Green, doodle.Blue}
	doodle.NewLine(w, g).
		SetVec(0, 200).
		SetZ(100).
		AnimateHeading(func(t float64) float64 {
			return math.Mod(t, 60) / 60 * 360
		}).
		AnimateColor(func(t float64) doodle.Color {
			return cycle[int(t)%len(cycle)]
		})
}
