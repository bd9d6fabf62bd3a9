// Package scenes holds the demo scenes. Each scene is a function that
// populates a world; cmd/doodle cycles through them with the arrow keys.
package scenes

import "github.com/scrawlkit/doodle"

// Scene pairs a name with its create function.
type Scene struct {
	Name   string
	Create func(w *doodle.World)
}

// All lists every scene in cycling order.
var All = []Scene{
	{"balls", Balls},
	{"circles", Circles},
	{"clock", Clock},
	{"copies", Copies},
	{"grid", Grid},
	{"liskov", Liskov},
	{"polygons", Polygons},
	{"rects", Rects},
	{"words", Words},
}

// Lookup finds a scene by name.
func Lookup(name string) (Scene, bool) {
	for _, s := range All {
		if s.Name == name {
			return s, true
		}
	}
	return Scene{}, false
}
