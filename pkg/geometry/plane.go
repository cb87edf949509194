package geometry

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Origin        mgl64.Vec3 // A point on the plane
	Normal        mgl64.Vec3 // Unit normal
	MaterialIndex int
}

// NewPlane creates a new plane, normalizing the given normal
func NewPlane(origin, normal mgl64.Vec3, materialIndex int) Plane {
	return Plane{
		Origin:        origin,
		Normal:        normal.Normalize(),
		MaterialIndex: materialIndex,
	}
}

// intersect returns the ray parameter of the plane crossing.
// A ray parallel to the plane divides by zero and fails the range test.
func (p Plane) intersect(ray core.Ray) (float64, bool) {
	t := p.Origin.Sub(ray.Origin).Dot(p.Normal) / ray.Direction.Dot(p.Normal)
	return t, ray.InRange(t)
}

// Hit tests if a ray intersects with the plane
func (p Plane) Hit(ray core.Ray, rec *core.HitRecord) bool {
	t, ok := p.intersect(ray)
	if !ok || !rec.Accepts(t) {
		return false
	}

	rec.DidHit = true
	rec.T = t
	rec.Origin = ray.At(t)
	rec.Normal = p.Normal
	rec.MaterialIndex = p.MaterialIndex
	return true
}

// AnyHit reports whether the ray crosses the plane inside its range
func (p Plane) AnyHit(ray core.Ray) bool {
	_, ok := p.intersect(ray)
	return ok
}
