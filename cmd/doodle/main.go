// Command doodle runs the demo scenes. The left and right arrow keys cycle
// through them; Escape or q quits.
package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/scrawlkit/doodle"
	"github.com/scrawlkit/doodle/celldraw"
	"github.com/scrawlkit/doodle/ebitendraw"
	"github.com/scrawlkit/doodle/scenes"
)

func main() {
	var (
		scene   = flag.String("scene", "", "scene to start with (default: first)")
		backend = flag.String("backend", "ebiten", "draw backend: ebiten or term")
		seed    = flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
		width   = flag.Int("width", 800, "world width")
		height  = flag.Int("height", 600, "world height")
		fps     = flag.Bool("fps", false, "show the frame rate")
	)
	flag.Parse()

	idx := 0
	if *scene != "" {
		found := false
		for i, s := range scenes.All {
			if s.Name == *scene {
				idx = i
				found = true
				break
			}
		}
		if !found {
			log.Fatalf("unknown scene %q; known scenes: %v", *scene, sceneNames())
		}
	}

	cfg := doodle.Config{Width: *width, Height: *height, Seed: *seed}
	var err error
	switch *backend {
	case "ebiten":
		err = runEbiten(cfg, idx, *fps)
	case "term":
		err = runTerm(cfg, idx)
	default:
		log.Fatalf("unknown backend %q, want ebiten or term", *backend)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func sceneNames() []string {
	names := make([]string, len(scenes.All))
	for i, s := range scenes.All {
		names[i] = s.Name
	}
	return names
}

func runEbiten(cfg doodle.Config, idx int, showFPS bool) error {
	eng := ebitendraw.New()
	w := doodle.New(eng, cfg)
	if err := w.Init(); err != nil {
		return err
	}
	load := func() {
		w.Clear()
		scenes.All[idx].Create(w)
		ebiten.SetWindowTitle("doodles: " + scenes.All[idx].Name)
	}
	load()
	return ebitendraw.Run(w, eng, ebitendraw.RunConfig{
		Title:   "doodles: " + scenes.All[idx].Name,
		ShowFPS: showFPS,
		Update: func() error {
			switch {
			case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
				idx = (idx + 1) % len(scenes.All)
				load()
			case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
				idx = (idx - 1 + len(scenes.All)) % len(scenes.All)
				load()
			}
			return nil
		},
	})
}

func runTerm(cfg doodle.Config, idx int) error {
	eng := celldraw.New()
	w := doodle.New(eng, cfg)
	if err := w.Init(); err != nil {
		return err
	}
	load := func() {
		w.Clear()
		scenes.All[idx].Create(w)
	}
	load()
	return celldraw.Run(w, eng, celldraw.RunConfig{
		OnKey: func(ev *tcell.EventKey) {
			switch ev.Key() {
			case tcell.KeyRight:
				idx = (idx + 1) % len(scenes.All)
				load()
			case tcell.KeyLeft:
				idx = (idx - 1 + len(scenes.All)) % len(scenes.All)
				load()
			}
		},
	})
}
