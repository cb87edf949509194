package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ApproxEqualVec reports whether every component of a and b differs by at most
// threshold. Unlike mgl64's ApproxEqualThreshold the bound stays absolute when
// a component is zero.
func ApproxEqualVec(a, b mgl64.Vec3, threshold float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > threshold {
			return false
		}
	}
	return true
}
