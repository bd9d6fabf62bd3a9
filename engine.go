package doodle

// Font is a backend-owned font handle. The core never inspects it; it only
// threads the handle between the font registry and TextRender.
type Font any

// RenderedText is a backend-prepared form of a text doodle's content,
// produced by TextRender when the content or font changes and handed back
// verbatim at draw time. Opaque to the core.
type RenderedText any

// FontOptions carries the optional parts of a font registration.
type FontOptions struct {
	Family string // backend-interpreted family name; "" picks the default
	Bold   bool
	Italic bool
}

// DrawEngine is the rendering capability a World drives once per frame.
// Concrete backends turn doodles into pixels (or terminal cells); the core
// holds no drawing logic of its own.
//
// The shape draw methods receive the concrete doodle and read whatever they
// need from it: world position, color and alpha, geometry.
type DrawEngine interface {
	// Init performs one-time backend setup. It is called by World.Init and
	// must fail when invoked twice.
	Init(w *World) error

	// Render draws one full frame: fill the background, then draw each doodle
	// in the given order. The slice arrives already sorted by z; backends
	// must not reorder it.
	Render(background Color, doodles []*Doodle)

	LineDraw(d *Doodle)
	CircleDraw(d *Doodle)
	RectDraw(d *Doodle)
	PolygonDraw(d *Doodle)
	TextDraw(d *Doodle)

	// TextRender produces the backend's prepared form of a piece of text.
	TextRender(content string, font Font, c Color, alpha uint8) RenderedText

	// MakeFont registers a font under a name. Fonts are keyed by name and
	// loaded at most once; registering an existing name is an error.
	MakeFont(name string, size float64, opts FontOptions) error

	// GetFont returns a registered font by name, or the backend's default
	// font when name is empty. An unknown name is an error.
	GetFont(name string) (Font, error)
}
