package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/tumble/pkg/render"
)

var (
	hudBg    = color.RGBA{0, 0, 0, 255}
	hudFg    = color.RGBA{230, 230, 230, 255}
	hudGreen = color.RGBA{80, 250, 123, 255}
	hudCyan  = color.RGBA{139, 233, 253, 255}
)

// HUD draws an overlay with model info and frame statistics.
type HUD struct {
	filename  string
	triangles int
	visible   bool

	// FPS readout eased toward the measured rate so it doesn't flicker
	fps       float64
	fpsVel    float64
	fpsSpring harmonica.Spring
	lastFrame time.Time
}

// NewHUD creates a HUD for a run targeting fps frames per second.
func NewHUD(filename string, triangles, fps int) *HUD {
	return &HUD{
		filename:  filename,
		triangles: triangles,
		visible:   true,
		fpsSpring: harmonica.NewSpring(harmonica.FPS(fps), 2.0, 1.0),
	}
}

// Toggle shows or hides the overlay.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Tick records a frame finished at now.
func (h *HUD) Tick(now time.Time) {
	if !h.lastFrame.IsZero() {
		if dt := now.Sub(h.lastFrame).Seconds(); dt > 0 {
			h.fps, h.fpsVel = h.fpsSpring.Update(h.fps, h.fpsVel, 1/dt)
		}
	}
	h.lastFrame = now
}

// FPS returns the smoothed frame rate.
func (h *HUD) FPS() float64 { return h.fps }

// Draw writes the overlay onto the top and bottom rows of scr.
func (h *HUD) Draw(scr uv.Screen, stats render.Stats, mode render.DrawMode) {
	if !h.visible {
		return
	}
	area := scr.Bounds()
	if area.Dy() < 2 {
		return
	}
	top, bottom := area.Min.Y, area.Max.Y-1

	drawText(scr, area.Min.X, top, fmt.Sprintf(" %.0f FPS ", h.fps), hudGreen, uv.AttrBold)

	title := " " + h.filename + " "
	drawText(scr, max(area.Min.X+(area.Dx()-len(title))/2, area.Min.X), top, title, hudFg, uv.AttrBold)

	counts := fmt.Sprintf(" %d/%d tris ", stats.Drawn, h.triangles)
	drawText(scr, max(area.Max.X-len(counts), area.Min.X), top, counts, hudCyan, 0)

	status := fmt.Sprintf(" mode: %s  culled: %d  ?: hide  q: quit ", mode, stats.Culled)
	drawText(scr, area.Min.X, bottom, status, hudFg, 0)
}

// drawText writes s one cell per rune starting at (x, y), clipped to
// the screen.
func drawText(scr uv.Screen, x, y int, s string, fg color.Color, attrs uint8) {
	area := scr.Bounds()
	for _, r := range s {
		if x >= area.Max.X {
			return
		}
		scr.SetCell(x, y, &uv.Cell{
			Content: string(r),
			Width:   1,
			Style:   uv.Style{Fg: fg, Bg: hudBg, Attrs: attrs},
		})
		x++
	}
}
