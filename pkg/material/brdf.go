package material

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Lambert returns the diffuse color for a scalar reflection coefficient kd
func Lambert(kd float64, cd core.Color) core.Color {
	return cd.Scale(kd / math.Pi)
}

// LambertColor returns the diffuse color for a per-channel reflection coefficient kd
func LambertColor(kd, cd core.Color) core.Color {
	return cd.Mul(kd).Scale(1 / math.Pi)
}

// Reflect mirrors l about the normal n
func Reflect(l, n mgl64.Vec3) mgl64.Vec3 {
	return l.Sub(n.Mul(2 * l.Dot(n)))
}

// Phong returns the specular term ks * cos^exp between the reflected light
// direction and v. The cosine is clamped to [0,1] before exponentiation.
func Phong(ks, exp float64, l, v, n mgl64.Vec3) core.Color {
	if exp == 0 {
		return core.White.Scale(ks)
	}

	cos := clamp01(Reflect(l, n).Dot(v))
	switch exp {
	case 1:
		return core.White.Scale(ks * cos)
	case 2:
		return core.White.Scale(ks * cos * cos)
	}
	return core.White.Scale(ks * math.Pow(cos, exp))
}

// FresnelSchlick approximates the Fresnel reflectance for half vector h,
// view direction v and base reflectivity f0
func FresnelSchlick(h, v mgl64.Vec3, f0 core.Color) core.Color {
	cos := clamp01(h.Dot(v))
	return f0.Add(core.White.Subtract(f0).Scale(math.Pow(1-cos, 5)))
}

// NormalDistributionGGX is the Trowbridge-Reitz GGX distribution with alpha = roughness squared
func NormalDistributionGGX(n, h mgl64.Vec3, roughness float64) float64 {
	nh := clamp01(n.Dot(h))
	a2 := roughness * roughness * roughness * roughness
	denom := nh*nh*(a2-1) + 1
	return a2 / (math.Pi * denom * denom)
}

// GeometrySchlickGGX is the Schlick-GGX masking term for direct lighting
func GeometrySchlickGGX(n, v mgl64.Vec3, roughness float64) float64 {
	nv := clamp01(n.Dot(v))
	a := roughness * roughness
	k := (a + 1) * (a + 1) / 8
	return nv / (nv*(1-k) + k)
}

// GeometrySmith combines masking for the view direction with shadowing for the light direction
func GeometrySmith(n, v, l mgl64.Vec3, roughness float64) float64 {
	return GeometrySchlickGGX(n, v, roughness) * GeometrySchlickGGX(n, l, roughness)
}

func clamp01(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}
