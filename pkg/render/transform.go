package render

import (
	"github.com/taigrr/tumble/pkg/math3d"
	"github.com/taigrr/tumble/pkg/models"
)

// SecondarySpeed is the rate of the Y/Z plane rotation relative to the
// Z rotation.
const SecondarySpeed = 0.5

// FrameRotation holds the rotation matrices of one frame.
type FrameRotation struct {
	Z math3d.Mat4 // About Z by t radians
	X math3d.Mat4 // About X by t*SecondarySpeed radians

	combined math3d.Mat4 // Z then X
}

// Rotations builds the rotation matrices for elapsed time t in seconds.
// Z and X are composed once here, Z first.
func Rotations(t float64) FrameRotation {
	r := FrameRotation{
		Z: math3d.RotateZ(t),
		X: math3d.RotateX(t * SecondarySpeed),
	}
	r.combined = r.Z.Mul(r.X)
	return r
}

// Apply rotates v about Z, then about X.
func (r FrameRotation) Apply(v math3d.Vec3) math3d.Vec3 {
	return r.combined.MulVec3(v)
}

// TransformTriangle rotates each vertex and then pushes it offset
// units along +Z. The input is not modified.
func TransformTriangle(tri models.Triangle, rot FrameRotation, offset float64) models.Triangle {
	out := tri
	for i, v := range tri.V {
		v = rot.Apply(v)
		v.Z += offset
		out.V[i] = v
	}
	return out
}
