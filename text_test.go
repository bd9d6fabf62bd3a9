package doodle

import "testing"

// --- Cache lifecycle ---

func TestSetTextRendersOnce(t *testing.T) {
	w, eng := newTestWorld(t)
	txt := NewText(w, nil).SetText("hello")

	if eng.textRenders != 1 {
		t.Fatalf("%d text renders, want 1", eng.textRenders)
	}
	r, ok := txt.Rendered().(stubRendered)
	if !ok {
		t.Fatal("rendered cache should be the backend's prepared form")
	}
	if r.content != "hello" {
		t.Errorf("rendered content = %q, want %q", r.content, "hello")
	}
}

func TestDrawDoesNotRerender(t *testing.T) {
	w, eng := newTestWorld(t)
	NewText(w, nil).SetText("static")
	before := eng.textRenders

	for range 10 {
		w.Render()
	}
	if eng.textRenders != before {
		t.Errorf("rendering frames re-rendered the text %d extra times", eng.textRenders-before)
	}
}

func TestSetFontRefreshesCache(t *testing.T) {
	w, eng := newTestWorld(t)
	if err := eng.MakeFont("big", 48, FontOptions{}); err != nil {
		t.Fatalf("MakeFont: %v", err)
	}
	txt := NewText(w, nil).SetText("hi")
	before := eng.textRenders

	txt.SetFont("big")
	if eng.textRenders != before+1 {
		t.Error("SetFont should refresh the rendered cache")
	}
	if r := txt.Rendered().(stubRendered); r.font != Font("font:big") {
		t.Errorf("cache rendered with %v, want the new font", r.font)
	}
}

func TestDefaultFontFetchedLazily(t *testing.T) {
	w, _ := newTestWorld(t)
	txt := NewText(w, nil)
	if txt.Font() != nil {
		t.Error("font should be nil before first SetText/SetFont")
	}
	txt.SetText("x")
	if txt.Font() != Font("default") {
		t.Errorf("font = %v, want backend default", txt.Font())
	}
}

func TestUnknownFontPanics(t *testing.T) {
	w, _ := newTestWorld(t)
	txt := NewText(w, nil)
	assertPanics(t, "unregistered font", func() { txt.SetFont("nope") })
}

func TestTextCacheCarriesColorAndAlpha(t *testing.T) {
	w, _ := newTestWorld(t)
	txt := NewText(w, nil).SetColor(Pink).SetAlpha(77).SetText("tinted")
	r := txt.Rendered().(stubRendered)
	if r.color != Pink || r.alpha != 77 {
		t.Errorf("cache rendered with %v/%d, want pink/77", r.color, r.alpha)
	}
}

// --- Font registry semantics (via the stub, mirroring the contract) ---

func TestMakeFontDuplicateNameErrors(t *testing.T) {
	_, eng := newTestWorld(t)
	if err := eng.MakeFont("small", 16, FontOptions{}); err != nil {
		t.Fatalf("MakeFont: %v", err)
	}
	if err := eng.MakeFont("small", 24, FontOptions{}); err == nil {
		t.Error("fonts are loaded at most once per name; re-registration should error")
	}
}
