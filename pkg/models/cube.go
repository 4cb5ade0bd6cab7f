package models

import "github.com/taigrr/tumble/pkg/math3d"

// Cube returns the unit cube spanning (0,0,0)-(1,1,1) as 12 triangles
// wound counter-clockwise from outside.
func Cube() *Mesh {
	v := math3d.V3
	mesh := NewMesh("cube")
	mesh.Triangles = []Triangle{
		// South
		NewTriangle(v(0, 0, 0), v(0, 1, 0), v(1, 1, 0)),
		NewTriangle(v(0, 0, 0), v(1, 1, 0), v(1, 0, 0)),
		// East
		NewTriangle(v(1, 0, 0), v(1, 1, 0), v(1, 1, 1)),
		NewTriangle(v(1, 0, 0), v(1, 1, 1), v(1, 0, 1)),
		// North
		NewTriangle(v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)),
		NewTriangle(v(1, 0, 1), v(0, 1, 1), v(0, 0, 1)),
		// West
		NewTriangle(v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)),
		NewTriangle(v(0, 0, 1), v(0, 1, 0), v(0, 0, 0)),
		// Top
		NewTriangle(v(0, 1, 0), v(0, 1, 1), v(1, 1, 1)),
		NewTriangle(v(0, 1, 0), v(1, 1, 1), v(1, 1, 0)),
		// Bottom
		NewTriangle(v(1, 0, 1), v(0, 0, 1), v(0, 0, 0)),
		NewTriangle(v(1, 0, 1), v(0, 0, 0), v(1, 0, 0)),
	}
	mesh.CalculateBounds()
	return mesh
}
