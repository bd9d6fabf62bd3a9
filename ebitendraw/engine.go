// Package ebitendraw renders doodles with Ebitengine.
//
// The engine draws every frame into an offscreen buffer image sized to the
// world; Run blits the buffer to the window each frame. Shapes use the
// ebiten/vector helpers, polygons a fan triangulation over a shared white
// pixel, and text the text/v2 faces backed by the Go fonts.
package ebitendraw

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/scrawlkit/doodle"
)

const defaultFontSize = 24

// Engine is a doodle.DrawEngine backed by Ebitengine.
type Engine struct {
	world  *doodle.World
	buffer *ebiten.Image
	white  *ebiten.Image
	fonts  map[string]*fontEntry
	inited bool

	// reused polygon triangulation buffers
	verts []ebiten.Vertex
	inds  []uint16
}

// fontEntry is the engine's Font handle: a text/v2 face plus its line height.
type fontEntry struct {
	face *text.GoTextFace
	lh   float64
}

// renderedText is the engine's prepared text form: the content pre-drawn to
// an image, with color and alpha baked in.
type renderedText struct {
	img  *ebiten.Image
	w, h float64
}

// New creates an uninitialized engine. Pass it to doodle.New; the world's
// Init performs the actual setup.
func New() *Engine {
	return &Engine{fonts: make(map[string]*fontEntry)}
}

// Init allocates the offscreen buffer and registers the stock fonts
// ("small" 16, "medium" 24, "large" 48). Fails when called twice.
func (e *Engine) Init(w *doodle.World) error {
	if e.inited {
		return fmt.Errorf("ebitendraw: engine already initialized")
	}
	e.world = w
	e.buffer = ebiten.NewImage(int(w.Width()), int(w.Height()))
	e.white = ebiten.NewImage(1, 1)
	e.white.Fill(color.White)

	for _, f := range []struct {
		name string
		size float64
	}{
		{"small", 16},
		{"medium", 24},
		{"large", 48},
	} {
		if err := e.MakeFont(f.name, f.size, doodle.FontOptions{}); err != nil {
			return err
		}
	}
	e.inited = true
	return nil
}

// Buffer returns the offscreen frame buffer. Valid after Init.
func (e *Engine) Buffer() *ebiten.Image {
	return e.buffer
}

// Render fills the background and draws every doodle in the given order.
func (e *Engine) Render(bg doodle.Color, doodles []*doodle.Doodle) {
	e.buffer.Fill(bg.NRGBA(0xff))
	for _, d := range doodles {
		d.Draw()
	}
}

// --- Shape draws ---

// LineDraw strokes the line from its world position to its end point.
func (e *Engine) LineDraw(d *doodle.Doodle) {
	p := d.WorldPos()
	q := d.End()
	vector.StrokeLine(e.buffer,
		float32(p.X), float32(p.Y), float32(q.X), float32(q.Y),
		1, d.RGBA(), true)
}

// CircleDraw fills the circle at its world position.
func (e *Engine) CircleDraw(d *doodle.Doodle) {
	p := d.WorldPos()
	vector.DrawFilledCircle(e.buffer,
		float32(p.X), float32(p.Y), float32(d.Radius()), d.RGBA(), true)
}

// RectDraw fills the rectangle centered at its world position.
func (e *Engine) RectDraw(d *doodle.Doodle) {
	p := d.WorldPos()
	w := d.Width()
	h := d.Height()
	vector.DrawFilledRect(e.buffer,
		float32(p.X-w/2), float32(p.Y-h/2), float32(w), float32(h),
		d.RGBA(), true)
}

// PolygonDraw fills the polygon using a fan triangulation over the shared
// white pixel. Polygons with fewer than three points draw nothing.
func (e *Engine) PolygonDraw(d *doodle.Doodle) {
	pts := d.Points()
	n := len(pts)
	if n < 3 {
		return
	}
	origin := d.WorldPos()

	// Premultiplied vertex color.
	a := float32(d.Alpha()) / 255
	c := d.Color()
	cr := float32(c.R) / 255 * a
	cg := float32(c.G) / 255 * a
	cb := float32(c.B) / 255 * a

	e.verts = e.verts[:0]
	e.inds = e.inds[:0]
	for _, p := range pts {
		e.verts = append(e.verts, ebiten.Vertex{
			DstX:   float32(origin.X + p.X),
			DstY:   float32(origin.Y + p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: a,
		})
	}
	for i := 0; i < n-2; i++ {
		e.inds = append(e.inds, 0, uint16(i+1), uint16(i+2))
	}

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	e.buffer.DrawTriangles(e.verts, e.inds, e.white, &op)
}

// TextDraw blits the pre-rendered text image centered at the doodle's world
// position. Text that has never been set draws nothing.
func (e *Engine) TextDraw(d *doodle.Doodle) {
	rt, ok := d.Rendered().(*renderedText)
	if !ok || rt == nil || rt.img == nil {
		return
	}
	p := d.WorldPos()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(p.X-rt.w/2, p.Y-rt.h/2)
	e.buffer.DrawImage(rt.img, &op)
}

// TextRender pre-renders content to an image with color and alpha baked in.
// Empty content yields an empty prepared form that draws nothing.
func (e *Engine) TextRender(content string, font doodle.Font, c doodle.Color, alpha uint8) doodle.RenderedText {
	fe, ok := font.(*fontEntry)
	if !ok {
		panic("ebitendraw: font handle from a different engine")
	}
	if content == "" {
		return &renderedText{}
	}
	w, h := text.Measure(content, fe.face, fe.lh)
	if w <= 0 || h <= 0 {
		return &renderedText{}
	}
	img := ebiten.NewImage(int(w)+1, int(h)+1)
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(c.NRGBA(alpha))
	op.LineSpacing = fe.lh
	text.Draw(img, content, fe.face, op)
	return &renderedText{img: img, w: w, h: h}
}

// --- Font registry ---

// MakeFont registers a font under a name. The family selects a Go font:
// "" or "sans" for Go Regular, "mono" for Go Mono; Bold and Italic pick the
// matching variants of the sans family. Each name loads at most once.
func (e *Engine) MakeFont(name string, size float64, opts doodle.FontOptions) error {
	if _, ok := e.fonts[name]; ok {
		return fmt.Errorf("ebitendraw: font %q already registered", name)
	}
	ttf, err := fontData(opts)
	if err != nil {
		return err
	}
	fe, err := newFontEntry(ttf, size)
	if err != nil {
		return err
	}
	e.fonts[name] = fe
	return nil
}

// GetFont returns a registered font, or the default Go Regular face at size
// 24 when name is empty. Unknown names are an error.
func (e *Engine) GetFont(name string) (doodle.Font, error) {
	if name == "" {
		if f, ok := e.fonts[""]; ok {
			return f, nil
		}
		fe, err := newFontEntry(goregular.TTF, defaultFontSize)
		if err != nil {
			return nil, err
		}
		e.fonts[""] = fe
		return fe, nil
	}
	f, ok := e.fonts[name]
	if !ok {
		return nil, fmt.Errorf("ebitendraw: unknown font %q", name)
	}
	return f, nil
}

// fontData picks the TTF bytes for a font options combination.
func fontData(opts doodle.FontOptions) ([]byte, error) {
	switch opts.Family {
	case "", "sans":
		switch {
		case opts.Bold && opts.Italic:
			return gobolditalic.TTF, nil
		case opts.Bold:
			return gobold.TTF, nil
		case opts.Italic:
			return goitalic.TTF, nil
		default:
			return goregular.TTF, nil
		}
	case "mono":
		return gomono.TTF, nil
	default:
		return nil, fmt.Errorf("ebitendraw: unknown font family %q", opts.Family)
	}
}

// newFontEntry parses TTF data into a face at the given size.
func newFontEntry(ttf []byte, size float64) (*fontEntry, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("ebitendraw: parse font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &fontEntry{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}
