package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads a mesh from path, choosing the loader by extension.
// .glb and .gltf go through the glTF loader; .obj or no extension is read as OBJ.
func Load(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		return LoadGLB(path)
	case ".obj", "":
		return LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj or .glb)", ext)
	}
}
