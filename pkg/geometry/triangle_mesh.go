package geometry

import (
	"fmt"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// TriangleMesh is an indexed triangle list with a scale/rotate/translate transform.
// World-space positions and bounds are cached and rebuilt by every mutator, so
// the mesh is always ready to be hit-tested between mutations.
type TriangleMesh struct {
	CullMode      CullMode
	MaterialIndex int

	positions []mgl64.Vec3 // Object-space vertex positions
	indices   []int        // Three indices per triangle

	scale       mgl64.Mat4
	rotation    mgl64.Mat4
	translation mgl64.Mat4

	pitch, yaw, roll float64

	bounds            core.AABB    // Object-space bounds
	transformedBounds core.AABB    // World-space bounds
	transformed       []mgl64.Vec3 // World-space positions
}

// NewTriangleMesh creates a mesh from vertex positions and face indices.
// indices must hold a multiple of three entries, each a valid position index.
func NewTriangleMesh(positions []mgl64.Vec3, indices []int, cullMode CullMode, materialIndex int) (*TriangleMesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= len(positions) {
			return nil, fmt.Errorf("face index %d at position %d out of bounds [0, %d)", idx, i, len(positions))
		}
	}

	tm := &TriangleMesh{
		positions:     append([]mgl64.Vec3(nil), positions...),
		indices:       append([]int(nil), indices...),
		CullMode:      cullMode,
		MaterialIndex: materialIndex,
		scale:         mgl64.Ident4(),
		rotation:      mgl64.Ident4(),
		translation:   mgl64.Ident4(),
	}
	tm.UpdateTransforms()
	return tm, nil
}

// NewEmptyTriangleMesh creates a mesh meant to be filled with AppendTriangle
func NewEmptyTriangleMesh(cullMode CullMode, materialIndex int) *TriangleMesh {
	tm, _ := NewTriangleMesh(nil, nil, cullMode, materialIndex)
	return tm
}

// Translate sets the translation component
func (tm *TriangleMesh) Translate(offset mgl64.Vec3) {
	tm.translation = mgl64.Translate3D(offset[0], offset[1], offset[2])
	tm.UpdateTransforms()
}

// RotateX sets the pitch in radians
func (tm *TriangleMesh) RotateX(pitch float64) {
	tm.pitch = pitch
	tm.updateRotation()
}

// RotateY sets the yaw in radians
func (tm *TriangleMesh) RotateY(yaw float64) {
	tm.yaw = yaw
	tm.updateRotation()
}

// RotateZ sets the roll in radians
func (tm *TriangleMesh) RotateZ(roll float64) {
	tm.roll = roll
	tm.updateRotation()
}

// Scale sets the per-axis scale component
func (tm *TriangleMesh) Scale(factors mgl64.Vec3) {
	tm.scale = mgl64.Scale3D(factors[0], factors[1], factors[2])
	tm.UpdateTransforms()
}

// Rotation returns the current pitch, yaw and roll in radians
func (tm *TriangleMesh) Rotation() (pitch, yaw, roll float64) {
	return tm.pitch, tm.yaw, tm.roll
}

// updateRotation rebuilds the rotation matrix: pitch, then yaw, then roll
func (tm *TriangleMesh) updateRotation() {
	tm.rotation = mgl64.HomogRotate3DZ(tm.roll).
		Mul4(mgl64.HomogRotate3DY(tm.yaw)).
		Mul4(mgl64.HomogRotate3DX(tm.pitch))
	tm.UpdateTransforms()
}

// AppendTriangle adds a triangle with three new vertices and refreshes the world-space cache
func (tm *TriangleMesh) AppendTriangle(tri Triangle) {
	tm.AppendTriangleDeferred(tri)
	tm.UpdateTransforms()
}

// AppendTriangleDeferred adds a triangle without refreshing the cache.
// Callers must call UpdateTransforms before the mesh is hit-tested.
func (tm *TriangleMesh) AppendTriangleDeferred(tri Triangle) {
	start := len(tm.positions)
	tm.positions = append(tm.positions, tri.V0, tri.V1, tri.V2)
	tm.indices = append(tm.indices, start, start+1, start+2)
}

// Transform returns the composed object-to-world matrix (scale, then rotation, then translation)
func (tm *TriangleMesh) Transform() mgl64.Mat4 {
	return tm.translation.Mul4(tm.rotation).Mul4(tm.scale)
}

// UpdateTransforms recomputes world-space positions and bounds from the current transform
func (tm *TriangleMesh) UpdateTransforms() {
	final := tm.Transform()

	tm.bounds = core.NewAABBFromPoints(tm.positions...)

	if cap(tm.transformed) < len(tm.positions) {
		tm.transformed = make([]mgl64.Vec3, len(tm.positions))
	}
	tm.transformed = tm.transformed[:len(tm.positions)]
	for i, p := range tm.positions {
		tm.transformed[i] = mgl64.TransformCoordinate(p, final)
	}

	tm.transformedBounds = tm.bounds.Transform(final)
}

// Positions returns the object-space positions. The slice must not be modified.
func (tm *TriangleMesh) Positions() []mgl64.Vec3 {
	return tm.positions
}

// Indices returns the face indices. The slice must not be modified.
func (tm *TriangleMesh) Indices() []int {
	return tm.indices
}

// TransformedPositions returns the cached world-space positions
func (tm *TriangleMesh) TransformedPositions() []mgl64.Vec3 {
	return tm.transformed
}

// ObjectBounds returns the object-space bounding box
func (tm *TriangleMesh) ObjectBounds() core.AABB {
	return tm.bounds
}

// BoundingBox returns the world-space bounding box
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.transformedBounds
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.indices) / 3
}

// triangle builds the world-space triangle starting at index offset i
func (tm *TriangleMesh) triangle(i int) Triangle {
	return Triangle{
		V0:            tm.transformed[tm.indices[i]],
		V1:            tm.transformed[tm.indices[i+1]],
		V2:            tm.transformed[tm.indices[i+2]],
		CullMode:      tm.CullMode,
		MaterialIndex: tm.MaterialIndex,
	}
}

// Hit finds the nearest triangle hit. Ties keep the lower triangle index.
func (tm *TriangleMesh) Hit(ray core.Ray, rec *core.HitRecord) bool {
	hit := false
	for i := 0; i+2 < len(tm.indices); i += 3 {
		if tm.triangle(i).Hit(ray, rec) {
			hit = true
		}
	}

	if hit {
		rec.MaterialIndex = tm.MaterialIndex
	}
	return hit
}

// AnyHit returns as soon as any triangle blocks the ray
func (tm *TriangleMesh) AnyHit(ray core.Ray) bool {
	for i := 0; i+2 < len(tm.indices); i += 3 {
		if tm.triangle(i).AnyHit(ray) {
			return true
		}
	}
	return false
}
