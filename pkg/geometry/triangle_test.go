package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Triangle in the XY plane whose winding gives a +Z normal
func newTestTriangle(cullMode CullMode) Triangle {
	return NewTriangle(
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 1, 0},
		cullMode,
		1,
	)
}

var (
	// Approaches from +Z, against the normal: the front face
	frontRay = core.NewRay(mgl64.Vec3{0.25, 0.25, 1}, mgl64.Vec3{0, 0, -1})
	// Approaches from -Z, along the normal: the back face
	backRay = core.NewRay(mgl64.Vec3{0.25, 0.25, -1}, mgl64.Vec3{0, 0, 1})
)

func TestTriangle_Hit(t *testing.T) {
	triangle := newTestTriangle(NoCulling)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle center",
			ray:       frontRay,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(mgl64.Vec3{0.5, 0, 1}, mgl64.Vec3{0, 0, -1}),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 0, -1}),
			shouldHit: false,
		},
		{
			name:      "Ray misses below v axis",
			ray:       core.NewRay(mgl64.Vec3{0.25, -0.1, 1}, mgl64.Vec3{0, 0, -1}),
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(mgl64.Vec3{0.25, 0.25, 0}, mgl64.Vec3{1, 0, 0}),
			shouldHit: false,
		},
		{
			name:      "Triangle behind ray",
			ray:       core.NewRay(mgl64.Vec3{0.25, 0.25, 1}, mgl64.Vec3{0, 0, 1}),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := core.NewHitRecord()
			isHit := triangle.Hit(tt.ray, &rec)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}

			if math.Abs(rec.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, rec.T)
			}
			if !core.ApproxEqualVec(rec.Normal, mgl64.Vec3{0, 0, 1}, 1e-12) {
				t.Errorf("Expected normal (0,0,1), got %v", rec.Normal)
			}
			if rec.MaterialIndex != 1 {
				t.Errorf("Expected material index 1, got %d", rec.MaterialIndex)
			}
		})
	}
}

func TestTriangle_CullModes(t *testing.T) {
	tests := []struct {
		name         string
		cullMode     CullMode
		ray          core.Ray
		expectHit    bool
		expectAnyHit bool
	}{
		{"Back-face culling, front face", BackFaceCulling, frontRay, true, false},
		{"Back-face culling, back face", BackFaceCulling, backRay, false, true},
		{"Front-face culling, front face", FrontFaceCulling, frontRay, false, true},
		{"Front-face culling, back face", FrontFaceCulling, backRay, true, false},
		{"No culling, front face", NoCulling, frontRay, true, false},
		{"No culling, back face", NoCulling, backRay, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triangle := newTestTriangle(tt.cullMode)

			rec := core.NewHitRecord()
			if got := triangle.Hit(tt.ray, &rec); got != tt.expectHit {
				t.Errorf("Hit: expected %v, got %v", tt.expectHit, got)
			}
			if got := triangle.AnyHit(tt.ray); got != tt.expectAnyHit {
				t.Errorf("AnyHit: expected %v, got %v", tt.expectAnyHit, got)
			}
		})
	}
}

func TestTriangle_ShadowConventionMirrorsVisibility(t *testing.T) {
	// A culled triangle is visible from one side. A shadow ray cast from a
	// surface on that same side toward a light beyond the triangle travels
	// opposite to how the light reaches it, so a front-visible occluder must
	// block shadow rays arriving at its back face.
	for _, mode := range []CullMode{BackFaceCulling, FrontFaceCulling} {
		triangle := newTestTriangle(mode)
		rec := core.NewHitRecord()

		visibleFromFront := triangle.Hit(frontRay, &rec)
		blocksBackwardShadow := triangle.AnyHit(backRay)
		if visibleFromFront != blocksBackwardShadow {
			t.Errorf("%v: visible from front=%v but blocks backward shadow ray=%v",
				mode, visibleFromFront, blocksBackwardShadow)
		}
	}
}

func TestTriangle_ParallelRayRejectedByAllModes(t *testing.T) {
	ray := core.NewRay(mgl64.Vec3{0.25, 0.25, 0}, mgl64.Vec3{1, 0, 0})

	for _, mode := range []CullMode{BackFaceCulling, FrontFaceCulling, NoCulling} {
		triangle := newTestTriangle(mode)
		rec := core.NewHitRecord()
		if triangle.Hit(ray, &rec) {
			t.Errorf("%v: parallel ray reported a hit", mode)
		}
		if triangle.AnyHit(ray) {
			t.Errorf("%v: parallel ray reported an any-hit", mode)
		}
	}
}

func TestTriangle_NormalFromWinding(t *testing.T) {
	tri := NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, NoCulling, 0)
	if !core.ApproxEqualVec(tri.Normal, mgl64.Vec3{0, 0, -1}, 1e-12) {
		t.Errorf("Expected (0,0,-1) for reversed winding, got %v", tri.Normal)
	}

	custom := NewTriangleWithNormal(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 3}, NoCulling, 0)
	if !core.ApproxEqualVec(custom.Normal, mgl64.Vec3{0, 0, 1}, 1e-12) {
		t.Errorf("Expected supplied normal to be normalized, got %v", custom.Normal)
	}
}

func TestParseCullMode(t *testing.T) {
	for _, mode := range []CullMode{BackFaceCulling, FrontFaceCulling, NoCulling} {
		parsed, err := ParseCullMode(mode.String())
		if err != nil {
			t.Fatalf("ParseCullMode(%q): %v", mode.String(), err)
		}
		if parsed != mode {
			t.Errorf("Expected %v, got %v", mode, parsed)
		}
	}

	if _, err := ParseCullMode("sideways"); err == nil {
		t.Error("Expected error for unknown cull mode")
	}
}
