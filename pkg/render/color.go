package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// ShadeColor scales base by a light intensity. Channels are clamped,
// so out-of-range intensities still give a representable opaque color.
func ShadeColor(base Color, intensity float64) Color {
	c, ok := colorful.MakeColor(base)
	if !ok {
		return ColorBlack
	}
	lit := colorful.Color{
		R: c.R * intensity,
		G: c.G * intensity,
		B: c.B * intensity,
	}.Clamped()
	r, g, b := lit.RGB255()
	return RGB(r, g, b)
}

// Tint multiplies two colors channel by channel. A fully transparent
// input tints to black.
func Tint(a, b Color) Color {
	ca, okA := colorful.MakeColor(a)
	cb, okB := colorful.MakeColor(b)
	if !okA || !okB {
		return ColorBlack
	}
	r, g, bl := colorful.Color{
		R: ca.R * cb.R,
		G: ca.G * cb.G,
		B: ca.B * cb.B,
	}.RGB255()
	return RGB(r, g, bl)
}
