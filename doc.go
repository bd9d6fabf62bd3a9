// Package doodle is a small retained-mode 2D scene graph.
//
// Drawable doodles are created once, attached into a parent/child hierarchy,
// optionally bound to time-varying animation functions, and re-rendered every
// frame by a pluggable backend.
//
// # Quick start
//
// Create a [World] with a backend, populate it, and run a loop. The ebitendraw
// subpackage bundles a window and game loop:
//
//	eng := ebitendraw.New()
//	w := doodle.New(eng, doodle.Config{Width: 800, Height: 600})
//	if err := w.Init(); err != nil {
//		log.Fatal(err)
//	}
//	// ... create doodles ...
//	ebitendraw.Run(w, eng, ebitendraw.RunConfig{Title: "doodles"})
//
// # Doodles
//
// Every entity is a [Doodle]: a group, line, circle, rect, polygon, or text.
// Setters return the doodle, so construction chains:
//
//	g := doodle.NewGroup(w, nil).SetPos(400, 300)
//	doodle.NewCircle(w, g).SetRadius(20).SetColor(doodle.Red).SetZ(5)
//
// A doodle's world position composes through its ancestors: a circle at
// (10, 10) inside a group at (100, 100) draws at (110, 110). Moving the group
// moves everything in it.
//
// # Animation
//
// Animations are pure functions of time registered per property:
//
//	line.AnimateHeading(func(t float64) float64 {
//		return math.Mod(t, 60) / 60 * 360
//	})
//
// The world evaluates animations on a fixed timestep (default 60 ticks per
// second) regardless of the render rate. Duration-based tweens built on
// [gween] are available via [TweenPos], [TweenColor], and friends.
//
// # Backends
//
// Rendering goes through the [DrawEngine] capability: one draw method per
// shape kind, plus text pre-rendering and a font registry. The ebitendraw
// package renders with [Ebitengine]; the celldraw package renders into a
// terminal with tcell.
//
// The engine is single-threaded and synchronous: one goroutine owns a World
// and every doodle in it for their whole lifetime.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package doodle
