package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/tumble/pkg/math3d"
)

var (
	// ErrMalformed reports a directive with missing or non-numeric tokens.
	ErrMalformed = errors.New("malformed directive")
	// ErrFaceIndex reports a face index outside the vertices read so far.
	ErrFaceIndex = errors.New("face index out of range")
)

// LoadOBJ loads the triangles of an OBJ file.
//
// Only "v x y z" and "f i j k" lines are read; indices are 1-based into
// the vertices defined above the face. Faces with more than three
// indices keep the first three. Everything else is skipped.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ReadOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

// ReadOBJ parses OBJ text from r into a mesh called name.
func ReadOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	var verts []math3d.Vec3

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 2 || line[1] != ' ' {
			continue
		}

		switch line[0] {
		case 'v':
			v, err := parseVertex(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			verts = append(verts, v)
		case 'f':
			tri, err := parseFace(line, verts)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Triangles = append(mesh.Triangles, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

func parseVertex(line string) (math3d.Vec3, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d: %w", len(fields), ErrMalformed)
	}

	var xyz [3]float64
	for i := range 3 {
		n, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[i], ErrMalformed)
		}
		xyz[i] = n
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

func parseFace(line string, verts []math3d.Vec3) (Triangle, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) < 3 {
		return Triangle{}, fmt.Errorf("face needs 3 indices, got %d: %w", len(fields), ErrMalformed)
	}

	var v [3]math3d.Vec3
	for i := range 3 {
		idx, err := strconv.Atoi(fields[i])
		if err != nil {
			return Triangle{}, fmt.Errorf("face index %q: %w", fields[i], ErrMalformed)
		}
		if idx < 1 || idx > len(verts) {
			return Triangle{}, fmt.Errorf("index %d with %d vertices: %w", idx, len(verts), ErrFaceIndex)
		}
		v[i] = verts[idx-1]
	}
	return NewTriangle(v[0], v[1], v[2]), nil
}
