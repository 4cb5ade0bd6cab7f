package render

import "github.com/taigrr/tumble/pkg/math3d"

// MarkerRadius is the radius of the wireframe vertex markers in pixels.
const MarkerRadius = 3

// Surface receives the draw calls of a frame. Framebuffer implements it.
type Surface interface {
	// Size returns the current pixel dimensions.
	Size() (width, height int)
	FillTriangle(a, b, c math3d.Vec2, col Color)
	DrawLine(a, b math3d.Vec2, col Color)
	DrawCircle(center math3d.Vec2, r float64, col Color)
	// RequestRedraw is called once after every frame.
	RequestRedraw()
}

// edgeColors are the wireframe colors of edges 0-1, 1-2 and 2-0.
var edgeColors = [3]Color{ColorRed, ColorGreen, ColorBlue}

// DrawTriangle issues the draw calls for one triangle.
func DrawTriangle(s Surface, tri ScreenTriangle, mode DrawMode) {
	p := tri.Points()
	if mode == DrawFilled || mode == DrawBoth {
		s.FillTriangle(p[0], p[1], p[2], tri.Color)
	}
	if mode == DrawWireframe || mode == DrawBoth {
		for i := range 3 {
			s.DrawLine(p[i], p[(i+1)%3], edgeColors[i])
		}
		for i := range 3 {
			s.DrawCircle(p[i], MarkerRadius, tri.Color)
		}
	}
}

// Dispatch draws batch in order.
func Dispatch(s Surface, batch []ScreenTriangle, mode DrawMode) {
	for _, tri := range batch {
		DrawTriangle(s, tri, mode)
	}
}
