package doodle

import (
	"image/color"
	"slices"
)

// Vec2 is a 2D vector used for positions, offsets, and polygon points.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Kind distinguishes the drawing behavior of a Doodle. The set is closed:
// backends implement exactly one draw method per kind.
type Kind uint8

const (
	KindGroup Kind = iota // container with children, no visual output
	KindLine
	KindCircle
	KindRect
	KindPolygon
	KindText
)

// String returns the lowercase kind name, used in panic messages.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindPolygon:
		return "polygon"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Doodle is the scene graph entity. A single flat struct is used for all
// kinds; shape-specific fields are only meaningful for their own kind, and
// shape-specific setters panic when called on the wrong kind.
//
// Every doodle belongs to exactly one World and is registered with it at
// construction time. A doodle has at most one parent group; the parent
// reference is only ever set by Add, keeping the ownership single-owner.
type Doodle struct {
	kind   Kind
	world  *World
	parent *Doodle

	pos   Vec2
	color Color
	alpha uint8
	z     float64
	anims []animEntry

	// OnUpdate, when set, runs once per fixed tick after registered
	// animations, letting a doodle carry per-object behavior (falling balls,
	// spinners) without an animation function.
	OnUpdate func(d *Doodle, now float64)

	// Group
	children []*Doodle

	// Line
	offset Vec2

	// Circle
	radius float64

	// Rect
	width, height float64

	// Polygon
	points []Vec2

	// Text
	content  string
	font     Font
	rendered RenderedText
}

// newDoodle builds the common base: defaults, color inheritance, parent
// attachment, and world registration.
func newDoodle(w *World, parent *Doodle, kind Kind) *Doodle {
	if w == nil {
		panic("doodle: nil world")
	}
	d := &Doodle{
		kind:  kind,
		world: w,
		color: Black,
		alpha: 0xff,
	}
	if parent != nil {
		d.color = parent.color
		d.alpha = parent.alpha
		parent.Add(d)
	}
	w.add(d)
	return d
}

// NewGroup creates a group doodle: an invisible container whose position and
// color cascade to its children.
func NewGroup(w *World, parent *Doodle) *Doodle {
	return newDoodle(w, parent, KindGroup)
}

// NewLine creates a line from the doodle's position to position + offset.
// The default offset is (10, 0).
func NewLine(w *World, parent *Doodle) *Doodle {
	d := newDoodle(w, parent, KindLine)
	d.offset = Vec2{10, 0}
	return d
}

// NewCircle creates a circle centered at the doodle's position.
func NewCircle(w *World, parent *Doodle) *Doodle {
	return newDoodle(w, parent, KindCircle)
}

// NewRect creates a rectangle centered at the doodle's position, extending
// half its width and height in each direction. The default size is 100x100.
func NewRect(w *World, parent *Doodle) *Doodle {
	d := newDoodle(w, parent, KindRect)
	d.width = 100
	d.height = 100
	return d
}

// NewPolygon creates an empty polygon. Points are added with AddPoint and
// are relative to the doodle's position; consecutive points are connected
// and the outline is implicitly closed.
func NewPolygon(w *World, parent *Doodle) *Doodle {
	return newDoodle(w, parent, KindPolygon)
}

// NewText creates an empty text doodle, drawn centered at its position.
// Call SetText to give it content; the backend's default font is used until
// SetFont picks a registered one.
func NewText(w *World, parent *Doodle) *Doodle {
	return newDoodle(w, parent, KindText)
}

// mustKind panics unless the doodle has the expected kind. Shape-specific
// operations on the wrong kind are configuration errors, caught immediately.
func (d *Doodle) mustKind(k Kind, op string) {
	if d.kind != k {
		panic("doodle: " + op + " called on " + d.kind.String() + " doodle")
	}
}

// --- Accessors ---

// Kind returns the doodle's kind tag.
func (d *Doodle) Kind() Kind { return d.kind }

// World returns the world this doodle is registered with.
func (d *Doodle) World() *World { return d.world }

// Parent returns the owning group, or nil for a root doodle.
func (d *Doodle) Parent() *Doodle { return d.parent }

// Pos returns the local position, relative to the parent.
func (d *Doodle) Pos() Vec2 { return d.pos }

// Color returns the doodle's color.
func (d *Doodle) Color() Color { return d.color }

// Alpha returns the doodle's alpha (0 transparent, 255 opaque).
func (d *Doodle) Alpha() uint8 { return d.alpha }

// Z returns the draw-order key. Lower values draw first.
func (d *Doodle) Z() float64 { return d.z }

// RGBA returns color and alpha combined, ready for backend draw calls.
func (d *Doodle) RGBA() color.NRGBA { return d.color.NRGBA(d.alpha) }

// WorldPos resolves the doodle's position in world space by adding local
// offsets up the parent chain. O(depth), not cached: parents move between
// calls.
func (d *Doodle) WorldPos() Vec2 {
	if d.parent != nil {
		return d.parent.WorldPos().Add(d.pos)
	}
	return d.pos
}

// --- Setters ---

// All setters mutate and return the doodle, so calls chain.

// SetPos sets the local position.
func (d *Doodle) SetPos(x, y float64) *Doodle {
	d.pos = Vec2{x, y}
	return d
}

// SetX sets the x component of the local position.
func (d *Doodle) SetX(x float64) *Doodle { return d.SetPos(x, d.pos.Y) }

// SetY sets the y component of the local position.
func (d *Doodle) SetY(y float64) *Doodle { return d.SetPos(d.pos.X, y) }

// Move shifts the local position by a delta. Moving a group moves every
// descendant implicitly, through world position resolution; no child is
// touched.
func (d *Doodle) Move(dx, dy float64) *Doodle {
	return d.SetPos(d.pos.X+dx, d.pos.Y+dy)
}

// SetColor sets the doodle's color. On a group the color cascades to every
// current child; children added afterwards inherit the group's color at their
// own construction time only.
func (d *Doodle) SetColor(c Color) *Doodle {
	d.color = c
	for _, child := range d.children {
		child.SetColor(c)
	}
	return d
}

// SetAlpha sets the doodle's alpha.
func (d *Doodle) SetAlpha(a uint8) *Doodle {
	d.alpha = a
	return d
}

// SetZ sets the draw-order key.
func (d *Doodle) SetZ(z float64) *Doodle {
	d.z = z
	return d
}

// Randomize sets a uniformly random position inside the world's bounds and a
// random palette color, drawn from the world's seeded random stream. Shape
// kinds add their own randomized geometry; polygons keep their points (see
// RandomPoints).
func (d *Doodle) Randomize() *Doodle {
	rng := d.world.Rand()
	d.SetPos(rng.Float64()*d.world.Width(), rng.Float64()*d.world.Height())
	d.SetColor(RandomColor(rng))
	switch d.kind {
	case KindLine:
		d.SetVec(rng.Float64()*360, rng.Float64()*100)
	case KindCircle:
		d.SetRadius(10 + rng.Float64()*90)
	case KindRect:
		d.SetWidth(10 + rng.Float64()*100)
		d.SetHeight(10 + rng.Float64()*100)
	}
	return d
}

// --- Group operations ---

// Add appends child to this group and takes ownership of it. This is the only
// code path that sets a doodle's parent.
//
// Panics if the receiver is not a group, child is nil, child already has a
// parent (including a second Add of the same child), or the addition would
// create a cycle.
func (d *Doodle) Add(child *Doodle) *Doodle {
	d.mustKind(KindGroup, "Add")
	if child == nil {
		panic("doodle: cannot add nil child")
	}
	if child.parent != nil {
		panic("doodle: child already has a parent")
	}
	if isAncestor(child, d) {
		panic("doodle: adding child would create a cycle")
	}
	child.parent = d
	d.children = append(d.children, child)
	return d
}

// Children returns the group's child list in insertion order. The returned
// slice MUST NOT be mutated by the caller. Insertion order is irrelevant to
// drawing; z governs that.
func (d *Doodle) Children() []*Doodle {
	return d.children
}

// NumChildren returns the number of children.
func (d *Doodle) NumChildren() int {
	return len(d.children)
}

// isAncestor reports whether candidate is node or one of node's ancestors.
func isAncestor(candidate, node *Doodle) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Copy ---

// Copy produces an independent duplicate of the doodle, freshly registered
// with the world and detached from any parent. For a group the copy is deep:
// every descendant is cloned and re-parented under the new group, so no
// doodle ever has two parents and no two groups share a child.
//
// Pure animation functions carry over and re-bind to the copy. Tween entries
// do not: a tween owns its progress state, and sharing it would advance both
// doodles from one timeline.
func (d *Doodle) Copy() *Doodle {
	n := new(Doodle)
	*n = *d
	n.parent = nil
	n.children = nil
	n.points = slices.Clone(d.points)
	n.anims = nil
	for _, a := range d.anims {
		if !a.noCopy {
			n.anims = append(n.anims, a)
		}
	}
	d.world.add(n)
	for _, child := range d.children {
		c := child.Copy()
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// --- Drawing ---

// Draw dispatches to the backend's draw method for this doodle's kind.
// Groups draw nothing themselves: their children are registered with the
// world individually and draw on their own.
func (d *Doodle) Draw() {
	switch d.kind {
	case KindLine:
		d.world.engine.LineDraw(d)
	case KindCircle:
		d.world.engine.CircleDraw(d)
	case KindRect:
		d.world.engine.RectDraw(d)
	case KindPolygon:
		d.world.engine.PolygonDraw(d)
	case KindText:
		d.world.engine.TextDraw(d)
	}
}
