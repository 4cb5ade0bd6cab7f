package render

import (
	"fmt"

	"github.com/taigrr/tumble/pkg/math3d"
)

// recorder is a Surface that logs every call.
type recorder struct {
	width, height int
	calls         []string
	fills         [][3]math3d.Vec2
	fillColors    []Color
	redraws       int
}

func newRecorder(width, height int) *recorder {
	return &recorder{width: width, height: height}
}

func (r *recorder) Size() (int, int) { return r.width, r.height }

func (r *recorder) FillTriangle(a, b, c math3d.Vec2, col Color) {
	r.calls = append(r.calls, "fill")
	r.fills = append(r.fills, [3]math3d.Vec2{a, b, c})
	r.fillColors = append(r.fillColors, col)
}

func (r *recorder) DrawLine(a, b math3d.Vec2, col Color) {
	r.calls = append(r.calls, fmt.Sprintf("line %d,%d,%d", col.R, col.G, col.B))
}

func (r *recorder) DrawCircle(center math3d.Vec2, radius float64, col Color) {
	r.calls = append(r.calls, fmt.Sprintf("circle %g", radius))
}

func (r *recorder) RequestRedraw() {
	r.calls = append(r.calls, "redraw")
	r.redraws++
}
