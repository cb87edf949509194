package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Origin        mgl64.Vec3 // Point of intersection
	Normal        mgl64.Vec3 // Unit surface normal at intersection
	T             float64    // Parameter t along the ray
	DidHit        bool       // Whether the record holds an intersection
	MaterialIndex int        // Index into the scene's material list
}

// NewHitRecord returns an empty record with T at +infinity
func NewHitRecord() HitRecord {
	return HitRecord{T: math.Inf(1)}
}

// Accepts reports whether an intersection at t would replace the current contents
func (h *HitRecord) Accepts(t float64) bool {
	return !h.DidHit || t < h.T
}
