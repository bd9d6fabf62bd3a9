// Package celldraw renders doodles into a terminal with tcell.
//
// World coordinates map onto the cell grid by scaling each axis to the
// screen size, so a scene written for an 800x600 window shows the same
// composition in any terminal. Shapes fill cells with block runes; text
// draws as styled runes, with bold and italic standing in for font
// variants since cells have a single size.
package celldraw

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/scrawlkit/doodle"
)

var errNotInitialized = errors.New("celldraw: world not initialized")

// Engine is a doodle.DrawEngine that draws to a tcell.Screen.
type Engine struct {
	screen tcell.Screen
	world  *doodle.World
	cols   int
	rows   int
	sx     float64
	sy     float64
	fonts  map[string]cellFont
	inited bool
	owns   bool
}

// cellFont is the engine's Font handle. Size has no meaning in a cell
// grid, so only the style attributes survive registration.
type cellFont struct {
	bold   bool
	italic bool
}

// cellText is the engine's prepared text form.
type cellText struct {
	runes []rune
	bold  bool
	ital  bool
	color doodle.Color
	dim   bool
}

// New creates an engine that allocates its own terminal screen at Init.
func New() *Engine {
	return &Engine{fonts: make(map[string]cellFont), owns: true}
}

// NewWithScreen creates an engine over a caller-provided screen, such as a
// tcell simulation screen in tests. The caller keeps ownership; Fini is
// never called on it.
func NewWithScreen(s tcell.Screen) *Engine {
	return &Engine{screen: s, fonts: make(map[string]cellFont)}
}

// Init opens the screen and fixes the world-to-cell scale from its size.
func (e *Engine) Init(w *doodle.World) error {
	if e.inited {
		return fmt.Errorf("celldraw: engine already initialized")
	}
	if e.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("celldraw: open screen: %w", err)
		}
		e.screen = s
	}
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("celldraw: init screen: %w", err)
	}
	e.world = w
	e.cols, e.rows = e.screen.Size()
	e.sx = float64(e.cols) / w.Width()
	e.sy = float64(e.rows) / w.Height()

	// Stock names mirror the ebiten backend; size maps to weight here, the
	// only emphasis a cell grid has.
	for name, opts := range map[string]doodle.FontOptions{
		"small":  {},
		"medium": {},
		"large":  {Bold: true},
	} {
		if err := e.MakeFont(name, 0, opts); err != nil {
			return err
		}
	}
	e.inited = true
	return nil
}

// Screen exposes the underlying screen for event polling.
func (e *Engine) Screen() tcell.Screen {
	return e.screen
}

// Fini releases the terminal if the engine opened it.
func (e *Engine) Fini() {
	if e.owns && e.screen != nil {
		e.screen.Fini()
	}
}

// Render clears to the background and draws every doodle in order.
func (e *Engine) Render(bg doodle.Color, doodles []*doodle.Doodle) {
	e.screen.Fill(' ', tcell.StyleDefault.Background(cellColor(bg)))
	for _, d := range doodles {
		d.Draw()
	}
	e.screen.Show()
}

// --- Cell mapping ---

func (e *Engine) toCell(v doodle.Vec2) (int, int) {
	return int(v.X * e.sx), int(v.Y * e.sy)
}

func (e *Engine) set(x, y int, style tcell.Style) {
	if x < 0 || y < 0 || x >= e.cols || y >= e.rows {
		return
	}
	e.screen.SetContent(x, y, '█', nil, style)
}

func cellColor(c doodle.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// style builds the block style for a doodle. Low alpha maps to the dim
// attribute, the closest a terminal gets to translucency.
func (e *Engine) style(d *doodle.Doodle) tcell.Style {
	s := tcell.StyleDefault.Foreground(cellColor(d.Color()))
	if d.Alpha() < 128 {
		s = s.Dim(true)
	}
	return s
}

// --- Shape draws ---

// LineDraw plots the line between the endpoint cells with Bresenham.
func (e *Engine) LineDraw(d *doodle.Doodle) {
	x0, y0 := e.toCell(d.WorldPos())
	x1, y1 := e.toCell(d.End())
	e.plotLine(x0, y0, x1, y1, e.style(d))
}

func (e *Engine) plotLine(x0, y0, x1, y1 int, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	stepX := 1
	if x0 > x1 {
		stepX = -1
	}
	stepY := 1
	if y0 > y1 {
		stepY = -1
	}
	err := dx + dy
	for {
		e.set(x0, y0, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += stepX
		}
		if e2 <= dx {
			err += dx
			y0 += stepY
		}
	}
}

// CircleDraw fills every cell whose center falls inside the circle.
func (e *Engine) CircleDraw(d *doodle.Doodle) {
	p := d.WorldPos()
	r := d.Radius()
	style := e.style(d)
	x0, y0 := e.toCell(doodle.Vec2{X: p.X - r, Y: p.Y - r})
	x1, y1 := e.toCell(doodle.Vec2{X: p.X + r, Y: p.Y + r})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx := (float64(cx) + 0.5) / e.sx
			wy := (float64(cy) + 0.5) / e.sy
			ddx := wx - p.X
			ddy := wy - p.Y
			if ddx*ddx+ddy*ddy <= r*r {
				e.set(cx, cy, style)
			}
		}
	}
}

// RectDraw fills the cells covered by the rectangle.
func (e *Engine) RectDraw(d *doodle.Doodle) {
	p := d.WorldPos()
	hw := d.Width() / 2
	hh := d.Height() / 2
	style := e.style(d)
	x0, y0 := e.toCell(doodle.Vec2{X: p.X - hw, Y: p.Y - hh})
	x1, y1 := e.toCell(doodle.Vec2{X: p.X + hw, Y: p.Y + hh})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			e.set(cx, cy, style)
		}
	}
}

// PolygonDraw traces the polygon outline edge by edge, closing the loop.
// Cell resolution is too coarse for a filled scanline pass to read well.
func (e *Engine) PolygonDraw(d *doodle.Doodle) {
	pts := d.Points()
	if len(pts) < 2 {
		return
	}
	origin := d.WorldPos()
	style := e.style(d)
	for i := range pts {
		a := origin.Add(pts[i])
		b := origin.Add(pts[(i+1)%len(pts)])
		x0, y0 := e.toCell(a)
		x1, y1 := e.toCell(b)
		e.plotLine(x0, y0, x1, y1, style)
	}
}

// TextDraw writes the prepared runes centered on the doodle's cell.
func (e *Engine) TextDraw(d *doodle.Doodle) {
	ct, ok := d.Rendered().(*cellText)
	if !ok || ct == nil || len(ct.runes) == 0 {
		return
	}
	cx, cy := e.toCell(d.WorldPos())
	style := tcell.StyleDefault.
		Foreground(cellColor(ct.color)).
		Bold(ct.bold).
		Italic(ct.ital).
		Dim(ct.dim)
	if cy < 0 || cy >= e.rows {
		return
	}
	x := cx - len(ct.runes)/2
	for i, r := range ct.runes {
		px := x + i
		if px < 0 || px >= e.cols {
			continue
		}
		e.screen.SetContent(px, cy, r, nil, style)
	}
}

// TextRender prepares content as styled runes.
func (e *Engine) TextRender(content string, font doodle.Font, c doodle.Color, alpha uint8) doodle.RenderedText {
	cf, ok := font.(cellFont)
	if !ok {
		panic("celldraw: font handle from a different engine")
	}
	return &cellText{
		runes: []rune(content),
		bold:  cf.bold,
		ital:  cf.italic,
		color: c,
		dim:   alpha < 128,
	}
}

// --- Font registry ---

// MakeFont registers a named font. Only the Bold and Italic options carry
// through; size and family are accepted and ignored.
func (e *Engine) MakeFont(name string, size float64, opts doodle.FontOptions) error {
	if _, ok := e.fonts[name]; ok {
		return fmt.Errorf("celldraw: font %q already registered", name)
	}
	e.fonts[name] = cellFont{bold: opts.Bold, italic: opts.Italic}
	return nil
}

// GetFont returns a registered font, or the plain style for the empty name.
func (e *Engine) GetFont(name string) (doodle.Font, error) {
	if name == "" {
		if f, ok := e.fonts[""]; ok {
			return f, nil
		}
		f := cellFont{}
		e.fonts[""] = f
		return f, nil
	}
	f, ok := e.fonts[name]
	if !ok {
		return nil, fmt.Errorf("celldraw: unknown font %q", name)
	}
	return f, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
