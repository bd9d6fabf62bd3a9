package scenes

import "github.com/scrawlkit/doodle"

// Copies builds a diagonal chain of circle copies inside a group, then
// copies the whole group twice, shifting and recoloring each copy.
func Copies(w *doodle.World) {
	g := doodle.NewGroup(w, nil)
	c := doodle.NewCircle(w, g).SetRadius(80).SetColor(doodle.Red).SetPos(0, 0)
	for range 15 {
		c = c.Copy().Move(45, 45)
		g.Add(c)
	}
	g.Copy().Move(200, 0).SetColor(doodle.Green)
	g.Copy().Move(400, 0).SetColor(doodle.Blue)
}
