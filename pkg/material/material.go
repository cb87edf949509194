package material

import (
	"fmt"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind selects the reflectance model of a Material
type Kind int

const (
	KindSolidColor Kind = iota
	KindLambert
	KindLambertPhong
	KindCookTorrance
)

// String returns the name of the reflectance model
func (k Kind) String() string {
	switch k {
	case KindSolidColor:
		return "solid"
	case KindLambert:
		return "lambert"
	case KindLambertPhong:
		return "lambert-phong"
	case KindCookTorrance:
		return "cook-torrance"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// dielectricF0 is the base reflectivity used for every non-metal
var dielectricF0 = core.NewColor(0.04, 0.04, 0.04)

// Material describes how a surface reflects light. Only the fields used by
// its Kind are meaningful.
type Material struct {
	Kind  Kind
	Color core.Color // Solid color, diffuse color or Cook-Torrance albedo

	DiffuseReflectance  float64 // kd
	SpecularReflectance float64 // ks
	PhongExponent       float64

	Metalness float64 // 1 for conductors, anything else is a dielectric
	Roughness float64 // [0,1], 1 is rough
}

// NewSolidColor creates a material that always returns color
func NewSolidColor(color core.Color) Material {
	return Material{Kind: KindSolidColor, Color: color}
}

// NewLambert creates a perfectly diffuse material
func NewLambert(color core.Color, kd float64) Material {
	return Material{Kind: KindLambert, Color: color, DiffuseReflectance: kd}
}

// NewLambertPhong creates a diffuse material with a Phong specular lobe
func NewLambertPhong(color core.Color, kd, ks, exponent float64) Material {
	return Material{
		Kind:                KindLambertPhong,
		Color:               color,
		DiffuseReflectance:  kd,
		SpecularReflectance: ks,
		PhongExponent:       exponent,
	}
}

// NewCookTorrance creates a microfacet material
func NewCookTorrance(albedo core.Color, metalness, roughness float64) Material {
	return Material{Kind: KindCookTorrance, Color: albedo, Metalness: metalness, Roughness: roughness}
}

// Shade evaluates the material at a hit for light direction l and view direction v.
// Both directions point away from the surface.
func (m *Material) Shade(hit core.HitRecord, l, v mgl64.Vec3) core.Color {
	switch m.Kind {
	case KindSolidColor:
		return m.Color
	case KindLambert:
		return Lambert(m.DiffuseReflectance, m.Color)
	case KindLambertPhong:
		return Lambert(m.DiffuseReflectance, m.Color).
			Add(Phong(m.SpecularReflectance, m.PhongExponent, l, v.Mul(-1), hit.Normal))
	case KindCookTorrance:
		return m.shadeCookTorrance(hit.Normal, l, v)
	default:
		return core.Black
	}
}

func (m *Material) shadeCookTorrance(n, l, v mgl64.Vec3) core.Color {
	metal := m.Metalness == 1

	f0 := dielectricF0
	if metal {
		f0 = m.Color
	}
	h := v.Add(l).Normalize()

	fresnel := FresnelSchlick(h, v, f0)
	d := NormalDistributionGGX(n, h, m.Roughness)
	g := GeometrySmith(n, v, l, m.Roughness)

	vn := clamp01(v.Dot(n))
	ln := clamp01(l.Dot(n))
	specular := fresnel.Scale(d * g / (4 * vn * ln)).MaxToOne()

	kd := core.Black
	if !metal {
		kd = core.White.Subtract(fresnel)
	}
	return LambertColor(kd, m.Color).Add(specular)
}
