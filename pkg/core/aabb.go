package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3 // Minimum corner
	Max mgl64.Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max mgl64.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...mgl64.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min = minVec(min, point)
		max = maxVec(max, point)
	}

	return AABB{Min: min, Max: max}
}

// Corners returns the eight corners of the box
func (aabb AABB) Corners() [8]mgl64.Vec3 {
	lo, hi := aabb.Min, aabb.Max
	return [8]mgl64.Vec3{
		{lo[0], lo[1], lo[2]},
		{hi[0], lo[1], lo[2]},
		{hi[0], lo[1], hi[2]},
		{lo[0], lo[1], hi[2]},
		{lo[0], hi[1], lo[2]},
		{hi[0], hi[1], lo[2]},
		{hi[0], hi[1], hi[2]},
		{lo[0], hi[1], hi[2]},
	}
}

// Transform returns the box that bounds this box after applying m.
// All eight corners are transformed since rotation can make any of them extremal.
func (aabb AABB) Transform(m mgl64.Mat4) AABB {
	corners := aabb.Corners()
	for i := range corners {
		corners[i] = mgl64.TransformCoordinate(corners[i], m)
	}
	return NewAABBFromPoints(corners[:]...)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: minVec(aabb.Min, other.Min), Max: maxVec(aabb.Max, other.Max)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() mgl64.Vec3 {
	return aabb.Min.Add(aabb.Max).Mul(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() mgl64.Vec3 {
	return aabb.Max.Sub(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min[0] <= aabb.Max[0] &&
		aabb.Min[1] <= aabb.Max[1] &&
		aabb.Min[2] <= aabb.Max[2]
}

// ApproxEqual reports whether every corner component is within threshold
func (aabb AABB) ApproxEqual(other AABB, threshold float64) bool {
	return ApproxEqualVec(aabb.Min, other.Min, threshold) &&
		ApproxEqualVec(aabb.Max, other.Max, threshold)
}

func minVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

func maxVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}
