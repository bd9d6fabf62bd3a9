package scenes

import (
	"fmt"
	"testing"

	"github.com/scrawlkit/doodle"
)

// nullEngine satisfies doodle.DrawEngine without drawing anything, enough to
// run every scene headless.
type nullEngine struct {
	fonts map[string]doodle.Font
}

func newNullEngine() *nullEngine {
	return &nullEngine{fonts: map[string]doodle.Font{"": doodle.Font("default")}}
}

func (e *nullEngine) Init(w *doodle.World) error {
	for _, name := range []string{"small", "medium", "large"} {
		if err := e.MakeFont(name, 0, doodle.FontOptions{}); err != nil {
			return err
		}
	}
	return nil
}

func (e *nullEngine) Render(bg doodle.Color, doodles []*doodle.Doodle) {
	for _, d := range doodles {
		d.Draw()
	}
}

func (e *nullEngine) LineDraw(d *doodle.Doodle)    {}
func (e *nullEngine) CircleDraw(d *doodle.Doodle)  {}
func (e *nullEngine) RectDraw(d *doodle.Doodle)    {}
func (e *nullEngine) PolygonDraw(d *doodle.Doodle) {}
func (e *nullEngine) TextDraw(d *doodle.Doodle)    {}

func (e *nullEngine) TextRender(content string, font doodle.Font, c doodle.Color, alpha uint8) doodle.RenderedText {
	return content
}

func (e *nullEngine) MakeFont(name string, size float64, opts doodle.FontOptions) error {
	if _, ok := e.fonts[name]; ok {
		return fmt.Errorf("font %q already registered", name)
	}
	e.fonts[name] = doodle.Font("font:" + name)
	return nil
}

func (e *nullEngine) GetFont(name string) (doodle.Font, error) {
	f, ok := e.fonts[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}
	return f, nil
}

func newSceneWorld(t *testing.T) *doodle.World {
	t.Helper()
	w := doodle.New(newNullEngine(), doodle.Config{Seed: 1})
	if err := w.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return w
}

func TestEverySceneCreatesAndRuns(t *testing.T) {
	for _, s := range All {
		t.Run(s.Name, func(t *testing.T) {
			w := newSceneWorld(t)
			s.Create(w)
			if len(w.Doodles()) == 0 {
				t.Fatal("scene created no doodles")
			}
			// A few seconds of ticks plus renders shakes out bad
			// animations and draw dispatch.
			for range 180 {
				w.Advance(1.0 / 60)
			}
			w.Render()
		})
	}
}

func TestLookup(t *testing.T) {
	if s, ok := Lookup("clock"); !ok || s.Name != "clock" {
		t.Errorf("Lookup(clock) = %v, %v", s.Name, ok)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup of unknown scene should fail")
	}
}

func TestCopiesBuildsThreeChains(t *testing.T) {
	w := newSceneWorld(t)
	Copies(w)
	// One original group of 16 circles plus two deep copies of it.
	groups := 0
	circles := 0
	for _, d := range w.Doodles() {
		switch d.Kind() {
		case doodle.KindGroup:
			groups++
		case doodle.KindCircle:
			circles++
		}
	}
	if groups != 3 {
		t.Errorf("%d groups, want 3", groups)
	}
	if circles != 48 {
		t.Errorf("%d circles, want 48", circles)
	}
}

func TestBallsFallOnTick(t *testing.T) {
	w := newSceneWorld(t)
	Balls(w)
	before := w.Doodles()[0].Pos()
	w.Advance(1.0 / 60)
	after := w.Doodles()[0].Pos()
	if after.Y <= before.Y {
		t.Errorf("ball did not fall: %v -> %v", before, after)
	}
}

func TestClockHandSweeps(t *testing.T) {
	w := newSceneWorld(t)
	Clock(w)
	var hand *doodle.Doodle
	for _, d := range w.Doodles() {
		if d.Kind() == doodle.KindLine {
			hand = d
		}
	}
	if hand == nil {
		t.Fatal("clock has no hand")
	}
	for range 60 {
		w.Advance(1.0 / 60)
	}
	// One second in: 1/60 of a turn, 6 degrees off the +x axis.
	end := hand.Offset()
	if end.Y <= 0 {
		t.Errorf("hand offset = %v, want a positive Y component after one second", end)
	}
}
