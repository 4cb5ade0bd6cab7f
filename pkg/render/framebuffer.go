// Package render turns a tumbling triangle mesh into flat-shaded 2D
// draw calls and provides a pixel surface to receive them.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/taigrr/tumble/pkg/math3d"
	"golang.org/x/image/vector"
)

// guardBand is how many surface sizes a coordinate may stray outside
// the surface before a primitive is dropped. Vertices behind the
// camera project to huge or non-finite positions.
const guardBand = 8

// circleSegments approximates vertex markers.
const circleSegments = 16

// Framebuffer is an in-memory Surface. In the terminal each column is
// one pixel wide and each row holds two pixels via half-blocks (▀▄).
type Framebuffer struct {
	Width  int // Width in "pixels" (same as terminal columns)
	Height int // Height in "pixels" (2x terminal rows due to half-blocks)

	img    *image.RGBA
	raster *vector.Rasterizer
	redraw bool
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(width, height),
	}
}

// Resize reallocates the pixel buffer. Contents are lost.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	*fb = *NewFramebuffer(width, height)
}

// Size reports the current pixel dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.Width, fb.Height
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	draw.Draw(fb.img, fb.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.img.SetRGBA(x, y, c)
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.img.RGBAAt(x, y)
}

// FillTriangle fills the triangle abc with an anti-aliased edge.
// Triangles with a vertex outside the guard band are skipped.
func (fb *Framebuffer) FillTriangle(a, b, c math3d.Vec2, col Color) {
	if !fb.inGuard(a) || !fb.inGuard(b) || !fb.inGuard(c) {
		return
	}
	z := fb.beginPath()
	z.MoveTo(float32(a.X), float32(a.Y))
	z.LineTo(float32(b.X), float32(b.Y))
	z.LineTo(float32(c.X), float32(c.Y))
	z.ClosePath()
	fb.fill(z, col)
}

// DrawCircle fills a circle of radius r around center.
func (fb *Framebuffer) DrawCircle(center math3d.Vec2, r float64, col Color) {
	if r <= 0 || !fb.inGuard(center) {
		return
	}
	z := fb.beginPath()
	for i := range circleSegments {
		theta := 2 * math.Pi * float64(i) / circleSegments
		x := float32(center.X + r*math.Cos(theta))
		y := float32(center.Y + r*math.Sin(theta))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	fb.fill(z, col)
}

// DrawLine draws a one pixel line from a to b using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(a, b math3d.Vec2, c Color) {
	if !fb.inGuard(a) || !fb.inGuard(b) {
		return
	}
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// RequestRedraw marks the framebuffer as holding a finished frame.
func (fb *Framebuffer) RequestRedraw() {
	fb.redraw = true
}

// TakeRedraw reports whether a frame finished since the last call and
// clears the flag.
func (fb *Framebuffer) TakeRedraw() bool {
	r := fb.redraw
	fb.redraw = false
	return r
}

// beginPath resets the rasterizer, which also restores draw.Over.
func (fb *Framebuffer) beginPath() *vector.Rasterizer {
	fb.raster.Reset(fb.Width, fb.Height)
	return fb.raster
}

func (fb *Framebuffer) fill(z *vector.Rasterizer, c Color) {
	z.Draw(fb.img, fb.img.Rect, image.NewUniform(c), image.Point{})
}

// inGuard reports whether p is finite and near enough to the surface
// to rasterize.
func (fb *Framebuffer) inGuard(p math3d.Vec2) bool {
	limit := float64(guardBand * max(fb.Width, fb.Height, 1))
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		math.Abs(p.X) <= limit && math.Abs(p.Y) <= limit
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, fb.img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
