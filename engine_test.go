package doodle

import (
	"fmt"
	"slices"
	"testing"
)

// stubEngine records every backend call so tests can assert on the render
// dispatch contract without a real display.
type stubEngine struct {
	inits       int
	renders     int
	lastBG      Color
	lastOrder   []*Doodle
	drawn       []*Doodle
	textRenders int
	fonts       map[string]Font
}

type stubRendered struct {
	content string
	font    Font
	color   Color
	alpha   uint8
}

func newStubEngine() *stubEngine {
	return &stubEngine{fonts: map[string]Font{"": "default"}}
}

func (e *stubEngine) Init(w *World) error {
	e.inits++
	if e.inits > 1 {
		return fmt.Errorf("stub engine initialized twice")
	}
	return nil
}

func (e *stubEngine) Render(bg Color, doodles []*Doodle) {
	e.renders++
	e.lastBG = bg
	e.lastOrder = slices.Clone(doodles)
	e.drawn = e.drawn[:0]
	for _, d := range doodles {
		d.Draw()
	}
}

func (e *stubEngine) LineDraw(d *Doodle)    { e.drawn = append(e.drawn, d) }
func (e *stubEngine) CircleDraw(d *Doodle)  { e.drawn = append(e.drawn, d) }
func (e *stubEngine) RectDraw(d *Doodle)    { e.drawn = append(e.drawn, d) }
func (e *stubEngine) PolygonDraw(d *Doodle) { e.drawn = append(e.drawn, d) }
func (e *stubEngine) TextDraw(d *Doodle)    { e.drawn = append(e.drawn, d) }

func (e *stubEngine) TextRender(content string, font Font, c Color, alpha uint8) RenderedText {
	e.textRenders++
	return stubRendered{content: content, font: font, color: c, alpha: alpha}
}

func (e *stubEngine) MakeFont(name string, size float64, opts FontOptions) error {
	if _, ok := e.fonts[name]; ok {
		return fmt.Errorf("font %q already registered", name)
	}
	e.fonts[name] = "font:" + name
	return nil
}

func (e *stubEngine) GetFont(name string) (Font, error) {
	f, ok := e.fonts[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}
	return f, nil
}

// newTestWorld builds a seeded world on a stub engine.
func newTestWorld(t *testing.T) (*World, *stubEngine) {
	t.Helper()
	eng := newStubEngine()
	w := New(eng, Config{Seed: 1})
	if err := w.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return w, eng
}

func assertPanics(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic: %s", what)
		}
	}()
	fn()
}
