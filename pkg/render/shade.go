package render

import (
	"github.com/taigrr/tumble/pkg/math3d"
	"github.com/taigrr/tumble/pkg/models"
)

// FaceNormal returns the unit normal (v1-v0) × (v2-v0) of tri, or the
// zero vector when tri is degenerate.
func FaceNormal(tri models.Triangle) math3d.Vec3 {
	return tri.Normal()
}

// Facing returns dot(normal, v0 - camera). Negative means the face
// points toward the camera.
func Facing(normal, v0, camera math3d.Vec3) float64 {
	return normal.Dot(v0.Sub(camera))
}

// Visible reports whether a face with the given normal and first
// vertex is front-facing as seen from camera. A zero result (edge-on
// or degenerate) is culled.
func Visible(normal, v0, camera math3d.Vec3) bool {
	return Facing(normal, v0, camera) < 0
}

// Lambert returns the unclamped cosine between the face normal and the
// light direction. Both are normalized first.
func Lambert(normal, light math3d.Vec3) float64 {
	return normal.Normalize().Dot(light.Normalize())
}

// Intensity is Lambert clamped to [ambient, 1]. Faces lit from behind
// get the ambient floor rather than a negative brightness.
func Intensity(normal, light math3d.Vec3, ambient float64) float64 {
	return min(max(Lambert(normal, light), ambient), 1)
}
