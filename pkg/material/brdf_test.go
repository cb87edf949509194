package material

import (
	"math"
	"testing"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-12

func colorsClose(a, b core.Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol && math.Abs(a.B-b.B) <= tol
}

func TestLambert(t *testing.T) {
	cd := core.NewColor(0.5, 0.7, 0.9)

	got := Lambert(0.8, cd)
	expected := core.NewColor(0.5*0.8/math.Pi, 0.7*0.8/math.Pi, 0.9*0.8/math.Pi)
	if !colorsClose(got, expected, tolerance) {
		t.Errorf("Lambert: expected %v, got %v", expected, got)
	}

	got = LambertColor(core.NewColor(1, 0.5, 0), cd)
	expected = core.NewColor(0.5/math.Pi, 0.35/math.Pi, 0)
	if !colorsClose(got, expected, tolerance) {
		t.Errorf("LambertColor: expected %v, got %v", expected, got)
	}
}

func TestReflect(t *testing.T) {
	n := mgl64.Vec3{0, 1, 0}
	l := mgl64.Vec3{1, 1, 0}.Normalize()

	got := Reflect(l, n)
	expected := mgl64.Vec3{1, -1, 0}.Normalize()
	if !core.ApproxEqualVec(got, expected, tolerance) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPhong_ShortcutsMatchPow(t *testing.T) {
	n := mgl64.Vec3{0, 1, 0}
	l := mgl64.Vec3{1, 1, 0}.Normalize()
	// Camera ray direction slightly off the mirror direction
	v := mgl64.Vec3{0.8, -1, 0.1}.Normalize()
	cos := Reflect(l, n).Dot(v)
	if cos <= 0 || cos >= 1 {
		t.Fatalf("Test setup: expected cosine in (0,1), got %f", cos)
	}

	tests := []struct {
		exp      float64
		expected float64
	}{
		{0, 0.5},
		{1, 0.5 * cos},
		{2, 0.5 * math.Pow(cos, 2)},
		{3, 0.5 * math.Pow(cos, 3)},
		{25.5, 0.5 * math.Pow(cos, 25.5)},
	}

	for _, tt := range tests {
		got := Phong(0.5, tt.exp, l, v, n)
		if math.Abs(got.R-tt.expected) > tolerance || got.R != got.G || got.G != got.B {
			t.Errorf("exp=%v: expected gray %f, got %v", tt.exp, tt.expected, got)
		}
	}
}

func TestPhong_ClampsNegativeCosine(t *testing.T) {
	n := mgl64.Vec3{0, 1, 0}
	l := mgl64.Vec3{0, 1, 0}
	v := mgl64.Vec3{0, 1, 0} // Same side as the normal: reflected light points away

	for _, exp := range []float64{1, 2, 7} {
		if got := Phong(1, exp, l, v, n); got != core.Black {
			t.Errorf("exp=%v: expected black for negative cosine, got %v", exp, got)
		}
	}
}

func TestFresnelSchlick(t *testing.T) {
	f0 := core.NewColor(0.04, 0.04, 0.04)
	v := mgl64.Vec3{0, 0, 1}

	// Normal incidence reflects f0
	if got := FresnelSchlick(v, v, f0); !colorsClose(got, f0, tolerance) {
		t.Errorf("Expected f0 at normal incidence, got %v", got)
	}

	// Grazing incidence reflects everything
	if got := FresnelSchlick(mgl64.Vec3{1, 0, 0}, v, f0); !colorsClose(got, core.White, tolerance) {
		t.Errorf("Expected white at grazing incidence, got %v", got)
	}
}

func TestNormalDistributionGGX(t *testing.T) {
	n := mgl64.Vec3{0, 1, 0}

	// Roughness 1 is a uniform distribution of 1/pi
	for _, h := range []mgl64.Vec3{{0, 1, 0}, mgl64.Vec3{1, 1, 0}.Normalize(), {1, 0, 0}} {
		if got := NormalDistributionGGX(n, h, 1); math.Abs(got-1/math.Pi) > tolerance {
			t.Errorf("h=%v: expected 1/pi, got %f", h, got)
		}
	}

	// Aligned half vector peaks at 1/(pi*alpha^2)
	roughness := 0.5
	a2 := math.Pow(roughness, 4)
	if got := NormalDistributionGGX(n, n, roughness); math.Abs(got-1/(math.Pi*a2)) > 1e-9 {
		t.Errorf("Expected peak %f, got %f", 1/(math.Pi*a2), got)
	}
}

func TestGeometrySmith(t *testing.T) {
	n := mgl64.Vec3{0, 1, 0}

	if got := GeometrySchlickGGX(n, n, 0.6); math.Abs(got-1) > tolerance {
		t.Errorf("Expected no masking along the normal, got %f", got)
	}
	if got := GeometrySchlickGGX(n, mgl64.Vec3{1, 0, 0}, 0.6); got != 0 {
		t.Errorf("Expected full masking at grazing angle, got %f", got)
	}

	v := mgl64.Vec3{0, 1, 1}.Normalize()
	l := mgl64.Vec3{1, 1, 0}.Normalize()
	expected := GeometrySchlickGGX(n, v, 0.3) * GeometrySchlickGGX(n, l, 0.3)
	if got := GeometrySmith(n, v, l, 0.3); math.Abs(got-expected) > tolerance {
		t.Errorf("Expected %f, got %f", expected, got)
	}
}
