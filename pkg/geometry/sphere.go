package geometry

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Sphere represents a sphere shape
type Sphere struct {
	Origin        mgl64.Vec3
	Radius        float64
	RadiusSquared float64
	MaterialIndex int
}

// NewSphere creates a new sphere
func NewSphere(origin mgl64.Vec3, radius float64, materialIndex int) Sphere {
	return Sphere{
		Origin:        origin,
		Radius:        radius,
		RadiusSquared: radius * radius,
		MaterialIndex: materialIndex,
	}
}

// intersect solves the ray-sphere intersection with the geometric method.
// The direction must be normalized for tca to be a distance.
func (s Sphere) intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	toCenter := s.Origin.Sub(ray.Origin)

	// Projection of that vector on the ray, and squared distance of closest approach
	tca := toCenter.Dot(ray.Direction)
	od2 := toCenter.LenSqr() - tca*tca

	// Tangent rays count as a miss
	if od2 >= s.RadiusSquared {
		return 0, false
	}

	// Half chord length
	thc := math.Sqrt(s.RadiusSquared - od2)

	t := tca - thc
	if !(t > ray.TMin) {
		t = tca + thc
	}

	if !ray.InRange(t) {
		return 0, false
	}
	return t, true
}

// Hit tests if a ray intersects with the sphere
func (s Sphere) Hit(ray core.Ray, rec *core.HitRecord) bool {
	t, ok := s.intersect(ray)
	if !ok || !rec.Accepts(t) {
		return false
	}

	point := ray.At(t)
	rec.DidHit = true
	rec.T = t
	rec.Origin = point
	rec.Normal = point.Sub(s.Origin).Normalize()
	rec.MaterialIndex = s.MaterialIndex
	return true
}

// AnyHit reports whether the ray intersects the sphere
func (s Sphere) AnyHit(ray core.Ray) bool {
	_, ok := s.intersect(ray)
	return ok
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s Sphere) BoundingBox() core.AABB {
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	return core.NewAABB(s.Origin.Sub(r), s.Origin.Add(r))
}
