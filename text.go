package doodle

// Text doodles keep a backend-prepared copy of their content, refreshed only
// when the content or font changes. Rendering text is much more expensive
// than drawing it, and draw runs every frame while the text rarely changes.

// SetText sets the text content and refreshes the rendered cache. If no font
// has been chosen yet, the backend's default font is fetched first.
func (d *Doodle) SetText(s string) *Doodle {
	d.mustKind(KindText, "SetText")
	d.content = s
	d.renderText()
	return d
}

// SetFont switches to a font previously registered with the backend by name,
// and refreshes the rendered cache with the current content. Requesting an
// unregistered font is a configuration error and panics.
func (d *Doodle) SetFont(name string) *Doodle {
	d.mustKind(KindText, "SetFont")
	f, err := d.world.engine.GetFont(name)
	if err != nil {
		panic("doodle: " + err.Error())
	}
	d.font = f
	d.renderText()
	return d
}

// renderText refreshes the cache through the backend. The cache is opaque:
// the core stores it and passes it back at draw time, nothing more.
func (d *Doodle) renderText() {
	eng := d.world.engine
	if d.font == nil {
		f, err := eng.GetFont("")
		if err != nil {
			panic("doodle: " + err.Error())
		}
		d.font = f
	}
	d.rendered = eng.TextRender(d.content, d.font, d.color, d.alpha)
}

// Text returns the text content.
func (d *Doodle) Text() string {
	d.mustKind(KindText, "Text")
	return d.content
}

// Font returns the backend font handle, or nil before the first SetText or
// SetFont call.
func (d *Doodle) Font() Font {
	d.mustKind(KindText, "Font")
	return d.font
}

// Rendered returns the backend-prepared form of the content, or nil if
// SetText has never run.
func (d *Doodle) Rendered() RenderedText {
	d.mustKind(KindText, "Rendered")
	return d.rendered
}
