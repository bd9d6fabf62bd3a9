package celldraw

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/scrawlkit/doodle"
)

// RunConfig tunes the terminal loop.
type RunConfig struct {
	// FPS caps the render rate. Defaults to 30; terminals gain nothing
	// from more.
	FPS int

	// OnKey, when set, receives every key event after the built-in quit
	// keys are handled.
	OnKey func(ev *tcell.EventKey)
}

// Run drives the world in the terminal until Escape, q, or Ctrl-C. The
// world must already be initialized.
func Run(w *doodle.World, eng *Engine, cfg RunConfig) error {
	if !eng.inited {
		return errNotInitialized
	}
	defer eng.Fini()

	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go func() {
		for {
			ev := eng.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					close(quit)
					return nil
				}
				if cfg.OnKey != nil {
					cfg.OnKey(ev)
				}
			case *tcell.EventResize:
				eng.cols, eng.rows = eng.screen.Size()
				eng.sx = float64(eng.cols) / w.Width()
				eng.sy = float64(eng.rows) / w.Height()
				eng.screen.Sync()
			}
		case now := <-ticker.C:
			w.Advance(now.Sub(last).Seconds())
			last = now
			w.Render()
		}
	}
}
