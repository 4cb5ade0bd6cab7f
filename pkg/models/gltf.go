package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/tumble/pkg/math3d"
)

// LoadGLB loads the triangle primitives of a binary or JSON glTF file.
// Node transforms, materials and textures are ignored.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := meshFromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

// meshFromDocument flattens every mesh of doc into one triangle list.
func meshFromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	for _, m := range doc.Meshes {
		for i, prim := range m.Primitives {
			if err := appendPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", m.Name, i, err)
			}
		}
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		// Skip lines, points and strips
		return nil
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	if posIdx < 0 || posIdx >= len(doc.Accessors) {
		return fmt.Errorf("position accessor %d: %w", posIdx, ErrFaceIndex)
	}

	raw, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}
	positions := make([]math3d.Vec3, len(raw))
	for i, p := range raw {
		positions[i] = math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))
	}

	var indices []uint32
	if prim.Indices != nil {
		idxAcc := *prim.Indices
		if idxAcc < 0 || idxAcc >= len(doc.Accessors) {
			return fmt.Errorf("index accessor %d: %w", idxAcc, ErrFaceIndex)
		}
		indices, err = modeler.ReadIndices(doc, doc.Accessors[idxAcc], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		// No indices, assume sequential triangles
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	// glTF winds front faces counter-clockwise, same as OBJ.
	for i := 0; i+2 < len(indices); i += 3 {
		var v [3]math3d.Vec3
		for j := range 3 {
			idx := int(indices[i+j])
			if idx >= len(positions) {
				return fmt.Errorf("index %d with %d vertices: %w", idx, len(positions), ErrFaceIndex)
			}
			v[j] = positions[idx]
		}
		mesh.Triangles = append(mesh.Triangles, NewTriangle(v[0], v[1], v[2]))
	}
	return nil
}
