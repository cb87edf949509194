package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultTMin keeps a ray from re-hitting the surface it starts on
	DefaultTMin = 0.0001
	// MaxDistance is the largest finite ray extent; directional lights use it as "infinitely far"
	MaxDistance = math.MaxFloat32
)

// Ray represents a ray with an origin, a direction and a valid parameter range
// The direction is expected to be normalized by the caller
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a new ray with the default parameter range
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: DefaultTMin, TMax: MaxDistance}
}

// NewBoundedRay creates a new ray limited to [tMin, tMax]
func NewBoundedRay(origin, direction mgl64.Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// InRange reports whether t lies inside [TMin, TMax]. NaN is never in range.
func (r Ray) InRange(t float64) bool {
	return t >= r.TMin && t <= r.TMax
}
