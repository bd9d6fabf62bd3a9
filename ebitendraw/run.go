package ebitendraw

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/scrawlkit/doodle"
)

// RunConfig tunes the window Run opens.
type RunConfig struct {
	// Title of the window. Defaults to "doodles".
	Title string

	// ShowFPS overlays the frame and tick rates in the top-left corner.
	ShowFPS bool

	// Update, when set, runs once per frame before the world advances.
	// Returning an error stops the loop; return ebiten.Termination for a
	// clean quit.
	Update func() error
}

// game adapts a world plus engine to the ebiten.Game interface.
type game struct {
	world *doodle.World
	eng   *Engine
	cfg   RunConfig
	last  time.Time
}

func (g *game) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	g.world.Advance(now.Sub(g.last).Seconds())
	g.last = now
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.world.Render()
	screen.DrawImage(g.eng.Buffer(), nil)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen,
			fmt.Sprintf("FPS: %0.1f\nTPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.world.Width()), int(g.world.Height())
}

// Run opens a window sized to the world and drives it until the window
// closes or the update hook returns an error. The world must already be
// initialized so scenes can register fonts before the loop starts.
func Run(w *doodle.World, eng *Engine, cfg RunConfig) error {
	if eng.buffer == nil {
		return fmt.Errorf("ebitendraw: world not initialized")
	}
	if cfg.Title == "" {
		cfg.Title = "doodles"
	}
	ebiten.SetWindowSize(int(w.Width()), int(w.Height()))
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(&game{world: w, eng: eng, cfg: cfg}); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
