package doodle

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

// Config holds World construction parameters. Zero values pick defaults.
type Config struct {
	Width  int // viewport width in world units; default 800
	Height int // viewport height in world units; default 600
	TPS    int // fixed animation ticks per second; default 60

	// Background is the frame background; default White. Black is the Color
	// zero value and indistinguishable from unset here, so a black
	// background must be set with [World.SetBackground].
	Background Color

	Seed uint64 // random stream seed; 0 seeds from the clock
}

// World is the scene registry: the flat list of every live doodle plus the
// active backend. It drives the fixed-timestep update cycle and the per-frame
// render dispatch.
//
// A World is explicit state, not a singleton: it is threaded into every
// doodle constructor. One goroutine owns a World and all of its doodles;
// nothing here is safe for concurrent use.
type World struct {
	cfg        Config
	engine     DrawEngine
	doodles    []*Doodle
	background Color
	rng        *rand.Rand

	step    float64 // seconds per fixed tick
	acc     float64 // accumulated un-simulated wall time
	now     float64 // simulated time, advanced by step each tick
	inited  bool
	sortBuf []*Doodle // reused z-sort scratch
}

// New creates a World bound to a backend. The backend is required; rendering
// has nowhere else to go.
func New(engine DrawEngine, cfg Config) *World {
	if engine == nil {
		panic("doodle: nil draw engine")
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Background == (Color{}) {
		cfg.Background = White
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return &World{
		cfg:        cfg,
		engine:     engine,
		background: cfg.Background,
		rng:        rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		step:       1 / float64(cfg.TPS),
	}
}

// Init performs one-time setup, delegating to the backend. Calling Init a
// second time is a configuration error.
func (w *World) Init() error {
	if w.inited {
		return fmt.Errorf("doodle: world already initialized")
	}
	if err := w.engine.Init(w); err != nil {
		return fmt.Errorf("init draw engine: %w", err)
	}
	w.inited = true
	return nil
}

// Clear empties the doodle registry, for switching between independent
// scenes. Scheduler state (accumulated and simulated time) is untouched.
// Doodles still referenced by a parent in another scene would keep drawing
// their subtree; only use Clear when no cross-scene parent links exist.
func (w *World) Clear() {
	for i := range w.doodles {
		w.doodles[i] = nil
	}
	w.doodles = w.doodles[:0]
}

// add registers a doodle. Called from construction and Copy only; there is no
// removal path other than Clear.
func (w *World) add(d *Doodle) {
	w.doodles = append(w.doodles, d)
}

// Doodles returns the registry in registration order. The returned slice
// MUST NOT be mutated by the caller.
func (w *World) Doodles() []*Doodle {
	return w.doodles
}

// Rand returns the world's seeded random stream.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Width returns the viewport width in world units.
func (w *World) Width() float64 { return float64(w.cfg.Width) }

// Height returns the viewport height in world units.
func (w *World) Height() float64 { return float64(w.cfg.Height) }

// TPS returns the fixed tick rate.
func (w *World) TPS() int { return w.cfg.TPS }

// Now returns the simulated time in seconds: ticks so far times the step.
func (w *World) Now() float64 { return w.now }

// Background returns the frame background color.
func (w *World) Background() Color { return w.background }

// SetBackground sets the frame background color.
func (w *World) SetBackground(c Color) {
	w.background = c
}

// Advance accumulates dt seconds of wall time and runs fixed ticks while a
// full step is available. Ticks run at exactly TPS regardless of how callers
// chunk their deltas: zero or many ticks may run per call, and N*step seconds
// always produce exactly N ticks.
func (w *World) Advance(dt float64) {
	w.acc += dt
	for w.acc >= w.step {
		w.acc -= w.step
		w.tick()
	}
}

// tick advances simulated time one step and updates every doodle in
// registration order.
func (w *World) tick() {
	w.now += w.step
	for _, d := range w.doodles {
		d.Update(w.now)
	}
}

// Render draws one frame: a copy of the registry is stably sorted by z
// (ascending, ties keep registration order) and handed to the backend.
//
// Sorting every frame instead of maintaining an ordered structure is a
// deliberate tradeoff at the scale of tens to hundreds of doodles.
func (w *World) Render() {
	w.sortBuf = w.sortBuf[:0]
	w.sortBuf = append(w.sortBuf, w.doodles...)
	slices.SortStableFunc(w.sortBuf, func(a, b *Doodle) int {
		return cmp.Compare(a.z, b.z)
	})
	w.engine.Render(w.background, w.sortBuf)
}

// Frame advances the fixed-step scheduler by dt seconds and renders once.
// The typical per-frame call.
func (w *World) Frame(dt float64) {
	w.Advance(dt)
	w.Render()
}
