package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/taigrr/tumble/pkg/models"
	"github.com/taigrr/tumble/pkg/render"
)

// options holds everything the command line can set.
type options struct {
	modelPath string
	sizeSet   bool // --width or --height given explicitly

	mode       string
	width      int
	height     int
	fov        float64
	near       float64
	far        float64
	offset     float64
	ambient    float64
	color      string
	background string
	noSort     bool
	fit        float64
	fps        int
	snapshot   string
	time       float64
	logPath    string
}

func defaultOptions() *options {
	cfg := render.DefaultConfig()
	return &options{
		mode:       cfg.Mode.String(),
		width:      cfg.Width,
		height:     cfg.Height,
		fov:        cfg.FOV,
		near:       cfg.Near,
		far:        cfg.Far,
		offset:     cfg.Offset,
		ambient:    cfg.Ambient,
		color:      "#ffffff",
		background: "#000000",
		fps:        60,
	}
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.mode, "mode", "m", o.mode, "draw mode: filled, wireframe or both")
	fs.IntVar(&o.width, "width", o.width, "surface width in pixels (default: terminal width)")
	fs.IntVar(&o.height, "height", o.height, "surface height in pixels (default: 2x terminal rows)")
	fs.Float64Var(&o.fov, "fov", o.fov, "field of view in degrees")
	fs.Float64Var(&o.near, "near", o.near, "near plane distance")
	fs.Float64Var(&o.far, "far", o.far, "far plane distance")
	fs.Float64Var(&o.offset, "offset", o.offset, "distance the mesh is pushed along +Z")
	fs.Float64Var(&o.ambient, "ambient", o.ambient, "minimum face brightness in [0,1]")
	fs.StringVarP(&o.color, "color", "c", o.color, "base color as #rrggbb")
	fs.StringVar(&o.background, "bg", o.background, "background color as #rrggbb")
	fs.BoolVar(&o.noSort, "no-sort", o.noSort, "disable back-to-front depth sorting")
	fs.Float64Var(&o.fit, "fit", o.fit, "center the mesh and scale its largest side to this size (0 keeps it as loaded)")
	fs.IntVar(&o.fps, "fps", o.fps, "target frames per second")
	fs.StringVarP(&o.snapshot, "snapshot", "o", o.snapshot, "render one frame to this PNG file and exit")
	fs.Float64VarP(&o.time, "time", "t", o.time, "elapsed seconds of the snapshot frame")
	fs.StringVar(&o.logPath, "log", o.logPath, "write debug logs to this file")
}

// config converts the flags to a validated render configuration.
func (o *options) config() (render.Config, error) {
	cfg := render.DefaultConfig()

	mode, err := render.ParseDrawMode(o.mode)
	if err != nil {
		return cfg, err
	}
	base, err := render.ParseColor(o.color)
	if err != nil {
		return cfg, err
	}
	if _, err := render.ParseColor(o.background); err != nil {
		return cfg, err
	}
	if o.fps <= 0 {
		return cfg, fmt.Errorf("fps %d must be positive: %w", o.fps, render.ErrInvalidConfig)
	}

	cfg.Mode = mode
	cfg.Color = base
	cfg.Width, cfg.Height = o.width, o.height
	cfg.FOV, cfg.Near, cfg.Far = o.fov, o.near, o.far
	cfg.Offset = o.offset
	cfg.Ambient = o.ambient
	cfg.DepthSort = !o.noSort
	return cfg, cfg.Validate()
}

// loadMesh loads path, or the unit cube when path is empty.
func loadMesh(path string, fit float64) (*models.Mesh, error) {
	mesh := models.Cube()
	if path != "" {
		var err error
		if mesh, err = models.Load(path); err != nil {
			return nil, err
		}
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("%s: no triangles", mesh.Name)
	}
	if fit > 0 {
		mesh.Fit(fit)
	}
	return mesh, nil
}

// setupLogging sends render logs to path. Nothing is logged when path
// is empty; stderr would corrupt the alternate screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	render.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() {
		render.SetLogger(nil)
		f.Close()
	}, nil
}
