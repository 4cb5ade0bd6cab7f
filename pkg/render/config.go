package render

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/taigrr/tumble/pkg/math3d"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// DrawMode selects which primitives a triangle is drawn with.
type DrawMode int

const (
	DrawFilled    DrawMode = iota // Filled triangle only
	DrawWireframe                 // Edges and vertex markers only
	DrawBoth                      // Filled, then wireframe on top
)

func (m DrawMode) String() string {
	switch m {
	case DrawFilled:
		return "filled"
	case DrawWireframe:
		return "wireframe"
	case DrawBoth:
		return "both"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}

// ParseDrawMode parses "filled", "wireframe" or "both".
func ParseDrawMode(s string) (DrawMode, error) {
	switch strings.ToLower(s) {
	case "filled", "fill":
		return DrawFilled, nil
	case "wireframe", "wire":
		return DrawWireframe, nil
	case "both":
		return DrawBoth, nil
	default:
		return 0, fmt.Errorf("draw mode %q: %w", s, ErrInvalidConfig)
	}
}

// Config holds the static settings of a rendering session.
type Config struct {
	// Surface size at startup. It fixes the aspect ratio of the
	// projection; later resizes only change the viewport mapping.
	Width, Height int

	Near, Far float64 // Projection planes
	FOV       float64 // Field of view in degrees

	Offset  float64     // Distance the rotated mesh is pushed along +Z
	Camera  math3d.Vec3 // Reference point for back-face culling
	Light   math3d.Vec3 // Direction of the light, normalized on use
	Ambient float64     // Minimum intensity of a lit face, in [0,1]
	Color   Color       // Tint applied to every triangle's own color

	Mode      DrawMode
	DepthSort bool
}

// DefaultConfig returns the settings of the classic spinning cube.
func DefaultConfig() Config {
	return Config{
		Width:     512,
		Height:    480,
		Near:      0.1,
		Far:       1000,
		FOV:       90,
		Offset:    2,
		Camera:    math3d.Zero3(),
		Light:     math3d.V3(0, 0, -1),
		Ambient:   0,
		Color:     ColorWhite,
		Mode:      DrawBoth,
		DepthSort: true,
	}
}

// AspectRatio returns Width / Height.
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Validate reports the first setting that cannot produce a valid
// projection or lighting. NaN and infinite values are rejected.
func (c Config) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"near plane", c.Near},
		{"far plane", c.Far},
		{"field of view", c.FOV},
		{"offset", c.Offset},
		{"ambient", c.Ambient},
		{"camera x", c.Camera.X}, {"camera y", c.Camera.Y}, {"camera z", c.Camera.Z},
		{"light x", c.Light.X}, {"light y", c.Light.Y}, {"light z", c.Light.Z},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v must be finite: %w", f.name, f.v, ErrInvalidConfig)
		}
	}

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("surface size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.Near <= 0:
		return fmt.Errorf("near plane %v must be positive: %w", c.Near, ErrInvalidConfig)
	case c.Far <= c.Near:
		return fmt.Errorf("far plane %v must exceed near plane %v: %w", c.Far, c.Near, ErrInvalidConfig)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("field of view %v must be in (0, 180) degrees: %w", c.FOV, ErrInvalidConfig)
	case c.Light.Len() == 0:
		return fmt.Errorf("light direction is zero: %w", ErrInvalidConfig)
	case c.Ambient < 0 || c.Ambient > 1:
		return fmt.Errorf("ambient %v must be in [0, 1]: %w", c.Ambient, ErrInvalidConfig)
	case c.Mode < DrawFilled || c.Mode > DrawBoth:
		return fmt.Errorf("%v: %w", c.Mode, ErrInvalidConfig)
	}
	return nil
}
