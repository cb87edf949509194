package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/loaders"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMeshPath is the model loaded by the mesh scene when no path is given
const DefaultMeshPath = "resources/icosahedron.obj"

// NewMeshScene places the mesh at meshPath (OBJ or PLY) in the reference room,
// scaled by two, back-face culled and white
func NewMeshScene(meshPath string) (*Scene, error) {
	if meshPath == "" {
		meshPath = findResource(DefaultMeshPath)
	}

	data, err := loaders.LoadMesh(meshPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh scene: %w", err)
	}

	s := NewScene(renderer.NewCamera(mgl64.Vec3{0, 3, -9}, 45))
	room := addRoom(s)

	mesh, err := geometry.NewTriangleMesh(data.Positions, data.Indices, geometry.BackFaceCulling, room.white)
	if err != nil {
		return nil, fmt.Errorf("invalid mesh %s: %w", meshPath, err)
	}
	mesh.Scale(mgl64.Vec3{2, 2, 2})
	s.AddMesh(mesh)

	return s, nil
}

// findResource looks for a repo-relative path from the working directory and
// its parent, so binaries started from web/ still find resources/
func findResource(path string) string {
	for _, candidate := range []string{path, filepath.Join("..", path)} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}
