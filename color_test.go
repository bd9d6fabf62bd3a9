package doodle

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestPaletteHoldsAllNamedColors(t *testing.T) {
	if len(Palette) != 16 {
		t.Fatalf("palette has %d entries, want 16", len(Palette))
	}
	seen := map[Color]bool{}
	for _, c := range Palette {
		if seen[c] {
			t.Errorf("duplicate palette entry %v", c)
		}
		seen[c] = true
	}
}

func TestRandomColorDrawsFromPalette(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for range 50 {
		c := RandomColor(rng)
		found := false
		for _, p := range Palette {
			if p == c {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("RandomColor returned %v, not in palette", c)
		}
	}
}

func TestRandomColorDeterministicBySeed(t *testing.T) {
	a := rand.New(rand.NewPCG(9, 9))
	b := rand.New(rand.NewPCG(9, 9))
	for range 10 {
		if RandomColor(a) != RandomColor(b) {
			t.Fatal("same seed should produce the same color sequence")
		}
	}
}

func TestNRGBA(t *testing.T) {
	got := Red.NRGBA(128)
	want := color.NRGBA{R: 255, G: 0, B: 77, A: 128}
	if got != want {
		t.Errorf("NRGBA = %v, want %v", got, want)
	}
}
