package render

import (
	"math"
	"testing"

	"github.com/taigrr/tumble/pkg/math3d"
	"github.com/taigrr/tumble/pkg/models"
)

func nearVec3(a, b math3d.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestRotationsAngles(t *testing.T) {
	rot := Rotations(math.Pi)

	// Z turns by t: X axis goes to -X.
	if got := rot.Z.MulVec3(math3d.V3(1, 0, 0)); !nearVec3(got, math3d.V3(-1, 0, 0), 1e-12) {
		t.Errorf("Z rotation of X axis = %v, want (-1, 0, 0)", got)
	}
	// The second axis turns at half speed: Y goes to +Z.
	if got := rot.X.MulVec3(math3d.V3(0, 1, 0)); !nearVec3(got, math3d.V3(0, 0, 1), 1e-12) {
		t.Errorf("X rotation of Y axis = %v, want (0, 0, 1)", got)
	}
}

func TestRotationOrder(t *testing.T) {
	rot := Rotations(0.8)
	points := []math3d.Vec3{
		math3d.V3(1, 2, 3),
		math3d.V3(-0.5, 0.25, 1),
		math3d.V3(0.3, -2, 0.7),
	}
	for _, p := range points {
		want := rot.X.MulVec3(rot.Z.MulVec3(p))
		if got := rot.Apply(p); !nearVec3(got, want, 1e-12) {
			t.Errorf("Apply(%v) = %v, want Z then X = %v", p, got, want)
		}
		swapped := rot.Z.MulVec3(rot.X.MulVec3(p))
		if nearVec3(swapped, want, 1e-9) {
			t.Errorf("swapping rotation order left %v unchanged", p)
		}
	}
}

func TestTransformTriangle(t *testing.T) {
	src := models.NewTriangle(math3d.V3(1, 0, 0), math3d.V3(0, 1, 0), math3d.V3(0, 0, 1))
	orig := src

	got := TransformTriangle(src, Rotations(0), 2)
	want := [3]math3d.Vec3{math3d.V3(1, 0, 2), math3d.V3(0, 1, 2), math3d.V3(0, 0, 3)}
	if got.V != want {
		t.Errorf("TransformTriangle at t=0 = %v, want %v", got.V, want)
	}
	if src != orig {
		t.Error("TransformTriangle modified its input")
	}
	if got.Color != src.Color {
		t.Errorf("color = %v, want %v", got.Color, src.Color)
	}
}

func TestTransformRotatesBeforeOffset(t *testing.T) {
	rot := Rotations(math.Pi)
	src := models.NewTriangle(math3d.V3(0, 1, 0), math3d.V3(0, 1, 0), math3d.V3(0, 1, 0))

	got := TransformTriangle(src, rot, 2).V[0]
	// (0,1,0) -> Z by π -> (0,-1,0) -> X by π/2 -> (0,0,-1) -> +2 on Z.
	if !nearVec3(got, math3d.V3(0, 0, 1), 1e-12) {
		t.Errorf("vertex = %v, want (0, 0, 1)", got)
	}
}
