package render

import "github.com/taigrr/tumble/pkg/math3d"

// Projection builds the perspective matrix for cfg. The aspect ratio
// comes from the startup surface size.
func Projection(cfg Config) math3d.Mat4 {
	return math3d.Perspective(cfg.Near, cfg.Far, cfg.FOV, cfg.AspectRatio())
}

// Project applies proj to v and performs the homogeneous divide.
// A vertex on the camera plane (w == 0) is returned undivided.
func Project(v math3d.Vec3, proj math3d.Mat4) math3d.Vec3 {
	return proj.MulPoint(v).PerspectiveDivide()
}

// Viewport maps normalized device coordinates to pixels of a surface
// width x height, origin top-left. Z passes through unchanged.
func Viewport(v math3d.Vec3, width, height int) math3d.Vec3 {
	return math3d.Vec3{
		X: (v.X + 1) * 0.5 * float64(width),
		Y: (v.Y + 1) * 0.5 * float64(height),
		Z: v.Z,
	}
}

// ProjectToScreen runs Project then Viewport on each vertex.
func ProjectToScreen(v [3]math3d.Vec3, proj math3d.Mat4, width, height int) [3]math3d.Vec3 {
	var out [3]math3d.Vec3
	for i := range v {
		out[i] = Viewport(Project(v[i], proj), width, height)
	}
	return out
}
