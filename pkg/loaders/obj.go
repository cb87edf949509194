package loaders

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl64"
)

// LoadOBJ loads a Wavefront OBJ file. Faces are triangulated by the parser
// and shared corners are merged so each distinct position is stored once.
func LoadOBJ(filename string) (*MeshData, error) {
	mesh, err := fauxgl.LoadOBJ(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load OBJ file: %w", err)
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("OBJ file %s has no faces", filename)
	}

	return fromTriangles(mesh.Triangles), nil
}

// fromTriangles converts a triangle soup into indexed form
func fromTriangles(triangles []*fauxgl.Triangle) *MeshData {
	data := &MeshData{
		Indices: make([]int, 0, len(triangles)*3),
	}
	lookup := make(map[mgl64.Vec3]int)

	index := func(v fauxgl.Vertex) int {
		p := mgl64.Vec3{v.Position.X, v.Position.Y, v.Position.Z}
		if i, ok := lookup[p]; ok {
			return i
		}
		i := len(data.Positions)
		lookup[p] = i
		data.Positions = append(data.Positions, p)
		return i
	}

	for _, t := range triangles {
		data.Indices = append(data.Indices, index(t.V1), index(t.V2), index(t.V3))
	}
	return data
}
