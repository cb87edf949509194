package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshData holds indexed triangle geometry read from a file
type MeshData struct {
	Positions []mgl64.Vec3 // Unique vertex positions
	Indices   []int        // Three indices per triangle
}

// TriangleCount returns the number of triangles
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// LoadMesh loads a mesh, choosing the parser from the file extension
func LoadMesh(filename string) (*MeshData, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".obj":
		return LoadOBJ(filename)
	case ".ply":
		return LoadPLY(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
}
