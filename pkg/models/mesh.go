// Package models provides triangle meshes and their loaders for tumble.
package models

import (
	"image/color"

	"github.com/taigrr/tumble/pkg/math3d"
)

// White is the shade a triangle carries until lighting assigns one.
var White = color.RGBA{255, 255, 255, 255}

// Triangle is three vertices plus a flat color.
// Vertex order defines the winding: counter-clockwise as seen from
// outside gives an outward normal.
type Triangle struct {
	V     [3]math3d.Vec3
	Color color.RGBA
}

// NewTriangle creates a white triangle.
func NewTriangle(a, b, c math3d.Vec3) Triangle {
	return Triangle{
		V:     [3]math3d.Vec3{a, b, c},
		Color: White,
	}
}

// Normal returns the unit face normal (v1-v0) × (v2-v0).
// A degenerate triangle has the zero normal.
func (t Triangle) Normal() math3d.Vec3 {
	edge1 := t.V[1].Sub(t.V[0])
	edge2 := t.V[2].Sub(t.V[0])
	return edge1.Cross(edge2).Normalize()
}

// Mesh is an ordered list of triangles. Order is preserved from load
// but carries no rendering meaning. A mesh is not modified once
// rendering starts.
type Mesh struct {
	Name      string
	Triangles []Triangle

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]Triangle, 0),
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Triangles) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Triangles[0].V[0]
	m.BoundsMax = m.Triangles[0].V[0]

	for _, t := range m.Triangles {
		for _, v := range t.V {
			m.BoundsMin = m.BoundsMin.Min(v)
			m.BoundsMax = m.BoundsMax.Max(v)
		}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Transform applies an affine matrix to every vertex.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Triangles {
		for j := range 3 {
			m.Triangles[i].V[j] = mat.MulVec3(m.Triangles[i].V[j])
		}
	}
	m.CalculateBounds()
}

// Fit centers the mesh on the origin and scales it so its largest
// extent equals size. Empty and flat-point meshes are left alone.
func (m *Mesh) Fit(size float64) {
	m.CalculateBounds()
	extent := m.Size()
	maxDim := max(extent.X, extent.Y, extent.Z)
	if maxDim <= 0 {
		return
	}
	s := size / maxDim
	m.Transform(math3d.Translate(m.Center().Negate()).Mul(math3d.ScaleUniform(s)))
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Triangles: make([]Triangle, len(m.Triangles)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Triangles, m.Triangles)
	return clone
}
