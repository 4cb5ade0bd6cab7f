package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/tumble/pkg/models"
	"github.com/taigrr/tumble/pkg/render"
)

// view runs the interactive terminal loop until ctx ends or the user
// quits. The projection aspect is fixed at startup; resizing only
// changes the viewport.
func view(ctx context.Context, mesh *models.Mesh, cfg render.Config, opts *options) error {
	bg, err := render.ParseColor(opts.background)
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()
	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if !opts.sizeSet {
		cfg.Width, cfg.Height = render.TerminalSize(cols, rows)
	}

	pipeline, err := render.NewPipeline(mesh, cfg)
	if err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(cols, rows); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	fb := render.NewFramebuffer(render.TerminalSize(cols, rows))
	hud := NewHUD(filepath.Base(mesh.Name), mesh.TriangleCount(), opts.fps)
	timer := render.NewTimer()

	ticker := time.NewTicker(time.Duration(harmonica.FPS(opts.fps) * float64(time.Second)))
	defer ticker.Stop()

	events := term.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				cols, rows = ev.Width, ev.Height
				term.Erase()
				if err := term.Resize(cols, rows); err != nil {
					return fmt.Errorf("resize terminal: %w", err)
				}
				fb.Resize(render.TerminalSize(cols, rows))
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("q", "escape", "ctrl+c"):
					return nil
				case ev.MatchString("?", "shift+/"):
					hud.Toggle()
				}
			}

		case now := <-ticker.C:
			fb.Clear(bg)
			stats := pipeline.Render(timer.Elapsed(), fb)
			if !fb.TakeRedraw() {
				continue
			}
			fb.Draw(term, term.Bounds())
			hud.Tick(now)
			hud.Draw(term, stats, cfg.Mode)
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
