package main

import (
	"fmt"

	"github.com/taigrr/tumble/pkg/models"
	"github.com/taigrr/tumble/pkg/render"
)

// snapshot renders the frame at time t and writes it to path as PNG.
func snapshot(mesh *models.Mesh, cfg render.Config, path string, t float64, background string) error {
	bg, err := render.ParseColor(background)
	if err != nil {
		return err
	}
	pipeline, err := render.NewPipeline(mesh, cfg)
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(cfg.Width, cfg.Height)
	fb.Clear(bg)
	stats := pipeline.Render(t, fb)
	if err := fb.SavePNG(path); err != nil {
		return err
	}
	fmt.Printf("%s: %d of %d triangles drawn at t=%.2fs\n", path, stats.Drawn, stats.Submitted, t)
	return nil
}
