package geometry

import (
	"fmt"
	"strings"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// CullMode decides which face of a triangle a ray may hit
type CullMode int

const (
	BackFaceCulling CullMode = iota
	FrontFaceCulling
	NoCulling
)

// String returns the flag spelling of the cull mode
func (c CullMode) String() string {
	switch c {
	case BackFaceCulling:
		return "back"
	case FrontFaceCulling:
		return "front"
	case NoCulling:
		return "none"
	default:
		return fmt.Sprintf("CullMode(%d)", int(c))
	}
}

// ParseCullMode parses "back", "front" or "none"
func ParseCullMode(s string) (CullMode, error) {
	switch strings.ToLower(s) {
	case "back":
		return BackFaceCulling, nil
	case "front":
		return FrontFaceCulling, nil
	case "none":
		return NoCulling, nil
	}
	return 0, fmt.Errorf("unknown cull mode %q", s)
}

// triangleEpsilon bounds the determinant below which a ray counts as parallel
const triangleEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices.
// Mesh traversal builds these on the fly; they are plain values.
type Triangle struct {
	V0, V1, V2    mgl64.Vec3
	Normal        mgl64.Vec3
	CullMode      CullMode
	MaterialIndex int
}

// NewTriangle creates a triangle and derives its normal from the winding order
func NewTriangle(v0, v1, v2 mgl64.Vec3, cullMode CullMode, materialIndex int) Triangle {
	return Triangle{
		V0:            v0,
		V1:            v1,
		V2:            v2,
		Normal:        v1.Sub(v0).Cross(v2.Sub(v0)).Normalize(),
		CullMode:      cullMode,
		MaterialIndex: materialIndex,
	}
}

// NewTriangleWithNormal creates a triangle with a supplied normal
func NewTriangleWithNormal(v0, v1, v2, normal mgl64.Vec3, cullMode CullMode, materialIndex int) Triangle {
	return Triangle{
		V0:            v0,
		V1:            v1,
		V2:            v2,
		Normal:        normal.Normalize(),
		CullMode:      cullMode,
		MaterialIndex: materialIndex,
	}
}

// culled applies the cull policy to the determinant a. Shadow queries flip the
// sign test: a shadow ray leaves the surface toward the light, so it sees the
// opposite face from the light.
func (tri Triangle) culled(a float64, shadow bool) bool {
	switch tri.CullMode {
	case BackFaceCulling:
		if shadow {
			return a > -triangleEpsilon
		}
		return a < triangleEpsilon
	case FrontFaceCulling:
		if shadow {
			return a < triangleEpsilon
		}
		return a > -triangleEpsilon
	case NoCulling:
		if shadow {
			return a > -triangleEpsilon
		}
		return a > -triangleEpsilon && a < triangleEpsilon
	}
	return false
}

// intersect runs Möller-Trumbore and returns t and the two edges
func (tri Triangle) intersect(ray core.Ray, shadow bool) (t float64, edge1, edge2 mgl64.Vec3, ok bool) {
	edge1 = tri.V1.Sub(tri.V0)
	edge2 = tri.V2.Sub(tri.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	if tri.culled(a, shadow) {
		return 0, edge1, edge2, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(tri.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, edge1, edge2, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, edge1, edge2, false
	}

	t = f * edge2.Dot(q)
	if !ray.InRange(t) {
		return 0, edge1, edge2, false
	}
	return t, edge1, edge2, true
}

// Hit tests if a ray intersects with the triangle
func (tri Triangle) Hit(ray core.Ray, rec *core.HitRecord) bool {
	t, edge1, edge2, ok := tri.intersect(ray, false)
	if !ok || !rec.Accepts(t) {
		return false
	}

	rec.DidHit = true
	rec.T = t
	rec.Origin = ray.At(t)
	rec.Normal = edge1.Cross(edge2).Normalize()
	rec.MaterialIndex = tri.MaterialIndex
	return true
}

// AnyHit reports whether a shadow ray is blocked by the triangle
func (tri Triangle) AnyHit(ray core.Ray) bool {
	_, _, _, ok := tri.intersect(ray, true)
	return ok
}
