package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testCubeFaceOBJ = `# two triangles sharing an edge, written as a quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

func writeTestFile(t *testing.T, name, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return filename
}

func TestLoadOBJ_MergesSharedVertices(t *testing.T) {
	filename := writeTestFile(t, "quad.obj", testCubeFaceOBJ)

	data, err := LoadOBJ(filename)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}

	if data.TriangleCount() != 2 {
		t.Fatalf("Expected quad split into 2 triangles, got %d", data.TriangleCount())
	}
	if len(data.Positions) != 4 {
		t.Errorf("Expected 4 unique positions, got %d", len(data.Positions))
	}

	// Every index points at a position from the file
	valid := map[mgl64.Vec3]bool{{0, 0, 0}: true, {1, 0, 0}: true, {1, 1, 0}: true, {0, 1, 0}: true}
	for _, idx := range data.Indices {
		if idx < 0 || idx >= len(data.Positions) {
			t.Fatalf("Index %d out of range", idx)
		}
		if !valid[data.Positions[idx]] {
			t.Errorf("Unexpected position %v", data.Positions[idx])
		}
	}
}

func TestLoadOBJ_Errors(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Expected error for missing file")
	}

	empty := writeTestFile(t, "empty.obj", "# nothing here\nv 0 0 0\n")
	if _, err := LoadOBJ(empty); err == nil {
		t.Error("Expected error for a file without faces")
	}
}

func TestLoadMesh_DispatchesOnExtension(t *testing.T) {
	obj := writeTestFile(t, "QUAD.OBJ", testCubeFaceOBJ)
	data, err := LoadMesh(obj)
	if err != nil {
		t.Fatalf("LoadMesh(obj): %v", err)
	}
	if data.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", data.TriangleCount())
	}

	ply := filepath.Join(t.TempDir(), "quad.ply")
	createTestPLY(t, ply)
	if data, err = LoadMesh(ply); err != nil {
		t.Fatalf("LoadMesh(ply): %v", err)
	}
	if data.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", data.TriangleCount())
	}

	if _, err := LoadMesh("model.stl"); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}
