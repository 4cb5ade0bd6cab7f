package render

import (
	"cmp"
	"slices"

	"github.com/taigrr/tumble/pkg/math3d"
)

// ScreenTriangle is a visible triangle after projection. P holds pixel
// X/Y and the projected depth in Z.
type ScreenTriangle struct {
	P         [3]math3d.Vec3
	Intensity float64
	Color     Color
	Index     int // Position in the source mesh
}

// Depth is the mean projected z of the three vertices.
func (t ScreenTriangle) Depth() float64 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3
}

// Points returns the pixel positions.
func (t ScreenTriangle) Points() [3]math3d.Vec2 {
	return [3]math3d.Vec2{t.P[0].XY(), t.P[1].XY(), t.P[2].XY()}
}

// SortBackToFront orders batch farthest first. Equal depths keep their
// mesh order.
func SortBackToFront(batch []ScreenTriangle) {
	slices.SortStableFunc(batch, func(a, b ScreenTriangle) int {
		return cmp.Compare(b.Depth(), a.Depth())
	})
}
