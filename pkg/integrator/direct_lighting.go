package integrator

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// shadingOffset lifts the shading point off the surface to avoid self-shadowing
	shadingOffset = 1e-5
	// shadowTMin is the near bound of every shadow ray
	shadowTMin = 0.001
)

// DirectLightingIntegrator shades the closest hit with every light in the scene
type DirectLightingIntegrator struct {
	config Config
}

// NewDirectLightingIntegrator creates an integrator bound to one render configuration
func NewDirectLightingIntegrator(config Config) *DirectLightingIntegrator {
	return &DirectLightingIntegrator{config: config}
}

// Config returns the configuration this integrator renders with
func (d *DirectLightingIntegrator) Config() Config {
	return d.config
}

// RayColor traces a primary ray and lights the closest hit
func (d *DirectLightingIntegrator) RayColor(ray core.Ray, scene Scene) core.Color {
	hit := scene.ClosestHit(ray)
	if !hit.DidHit {
		return core.Black
	}
	return Shade(scene, hit, ray.Direction, d.config)
}

// Shade sums the contribution of every light at hit according to cfg.Mode,
// then rescales the result so no channel exceeds 1. viewDir is the direction
// of the ray that produced hit.
func Shade(scene Scene, hit core.HitRecord, viewDir mgl64.Vec3, cfg Config) core.Color {
	materials := scene.Materials()
	mat := &materials[hit.MaterialIndex]
	toViewer := viewDir.Mul(-1)

	point := hit.Origin.Add(hit.Normal.Mul(shadingOffset))

	final := core.Black
	for _, light := range scene.Lights() {
		toLight := light.DirectionToLight(point)
		dist := toLight.Len()
		l := toLight.Mul(1 / dist)

		if cfg.Shadows && scene.AnyHit(core.NewBoundedRay(point, l, shadowTMin, dist)) {
			continue
		}

		cos := hit.Normal.Dot(l)
		switch cfg.Mode {
		case Combined:
			if cos >= 0 {
				contribution := light.Radiance(point).Scale(cos).Mul(mat.Shade(hit, l, toViewer))
				final = final.Add(contribution)
			}
		case ObservedArea:
			if cos >= 0 {
				final = final.Add(core.White.Scale(cos))
			}
		case Radiance:
			final = final.Add(light.Radiance(point))
		case BRDF:
			if cos >= 0 {
				final = final.Add(mat.Shade(hit, l, toViewer))
			}
		}
	}

	return final.MaxToOne()
}
