package scenes

import "github.com/scrawlkit/doodle"

// Balls drops two rows of circles: blue ones fall at constant speed and wrap
// past the bottom edge, purple ones accelerate and bounce with dampening.
func Balls(w *doodle.World) {
	rng := w.Rand()

	for i := range 21 {
		speed := 9 + rng.Float64()*5
		b := doodle.NewCircle(w, nil).
			SetPos(float64(40*i), 0).
			SetRadius(10).
			SetColor(doodle.Blue)
		b.OnUpdate = func(d *doodle.Doodle, now float64) {
			d.Move(0, speed)
			if d.WorldPos().Y > w.Height()+20 {
				d.Move(0, -w.Height()-20)
			}
		}
	}

	for i := range 21 {
		speed := rng.Float64() * 10
		const accel = 0.5
		b := doodle.NewCircle(w, nil).
			SetPos(20+float64(40*i), 0).
			SetRadius(10).
			SetColor(doodle.Purple)
		b.OnUpdate = func(d *doodle.Doodle, now float64) {
			speed += accel
			d.Move(0, speed)
			if d.WorldPos().Y > w.Height()-10 {
				speed *= -0.98
				d.SetY(w.Height() - 10.01)
			}
		}
	}
}
