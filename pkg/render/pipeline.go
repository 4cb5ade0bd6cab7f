package render

import (
	"fmt"

	"github.com/taigrr/tumble/pkg/math3d"
	"github.com/taigrr/tumble/pkg/models"
)

// Stats counts what happened to the mesh in one frame.
type Stats struct {
	Submitted int // Triangles in the mesh
	Culled    int // Back-facing or degenerate
	Drawn     int // Dispatched to the surface
}

// Pipeline renders one immutable mesh with a fixed projection. Each
// frame is an independent pass driven only by elapsed time.
type Pipeline struct {
	mesh  *models.Mesh
	cfg   Config
	proj  math3d.Mat4
	light math3d.Vec3
	stats Stats
}

// NewPipeline validates cfg and builds the projection matrix. The
// pipeline renders its own copy of mesh, so later changes to mesh do
// not reach a running session.
func NewPipeline(mesh *models.Mesh, cfg Config) (*Pipeline, error) {
	if mesh == nil {
		return nil, fmt.Errorf("nil mesh: %w", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{
		mesh:  mesh.Clone(),
		cfg:   cfg,
		proj:  Projection(cfg),
		light: cfg.Light.Normalize(),
	}
	Logger().Info("pipeline ready",
		"mesh", mesh.Name,
		"triangles", mesh.TriangleCount(),
		"aspect", cfg.AspectRatio(),
		"fov", cfg.FOV,
		"mode", cfg.Mode.String())
	return p, nil
}

// Config returns the settings the pipeline was built with.
func (p *Pipeline) Config() Config { return p.cfg }

// Stats returns the counters of the last frame.
func (p *Pipeline) Stats() Stats { return p.stats }

// Build runs the transform, visibility, lighting, projection and sort
// stages for time t on a surface of width x height pixels. The returned
// batch is freshly allocated and belongs to the caller.
func (p *Pipeline) Build(t float64, width, height int) []ScreenTriangle {
	rot := Rotations(t)
	batch := make([]ScreenTriangle, 0, len(p.mesh.Triangles))
	stats := Stats{Submitted: len(p.mesh.Triangles)}

	for i, src := range p.mesh.Triangles {
		tri := TransformTriangle(src, rot, p.cfg.Offset)

		normal := FaceNormal(tri)
		if !Visible(normal, tri.V[0], p.cfg.Camera) {
			stats.Culled++
			continue
		}

		intensity := Intensity(normal, p.light, p.cfg.Ambient)
		batch = append(batch, ScreenTriangle{
			P:         ProjectToScreen(tri.V, p.proj, width, height),
			Intensity: intensity,
			Color:     ShadeColor(Tint(src.Color, p.cfg.Color), intensity),
			Index:     i,
		})
	}

	if p.cfg.DepthSort {
		SortBackToFront(batch)
	}
	stats.Drawn = len(batch)
	p.stats = stats
	return batch
}

// Render draws the frame at time t onto s and requests a redraw.
func (p *Pipeline) Render(t float64, s Surface) Stats {
	width, height := s.Size()
	batch := p.Build(t, width, height)
	Dispatch(s, batch, p.cfg.Mode)
	s.RequestRedraw()

	Logger().Debug("frame",
		"t", t,
		"submitted", p.stats.Submitted,
		"culled", p.stats.Culled,
		"drawn", p.stats.Drawn)
	return p.stats
}
