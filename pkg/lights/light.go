package lights

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Light is a point or directional light used for direct illumination
type Light struct {
	Origin    mgl64.Vec3 // Position of a point light
	Direction mgl64.Vec3 // Unit direction toward a directional light
	Color     core.Color
	Intensity float64
	Type      LightType
}

// NewPointLight creates a light radiating from origin with inverse-square falloff
func NewPointLight(origin mgl64.Vec3, intensity float64, color core.Color) Light {
	return Light{
		Origin:    origin,
		Color:     color,
		Intensity: intensity,
		Type:      LightTypePoint,
	}
}

// NewDirectionalLight creates a light infinitely far away in the given direction.
// direction points from the scene toward the light and is normalized.
func NewDirectionalLight(direction mgl64.Vec3, intensity float64, color core.Color) Light {
	return Light{
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
		Type:      LightTypeDirectional,
	}
}

// DirectionToLight returns the unnormalized vector from point to the light.
// Its length is the distance a shadow ray must travel; directional lights
// report core.MaxDistance.
func (l Light) DirectionToLight(point mgl64.Vec3) mgl64.Vec3 {
	if l.Type == LightTypePoint {
		return l.Origin.Sub(point)
	}
	return l.Direction.Mul(core.MaxDistance)
}

// Radiance returns the light arriving at target, ignoring occlusion
func (l Light) Radiance(target mgl64.Vec3) core.Color {
	if l.Type == LightTypePoint {
		distSq := target.Sub(l.Origin).LenSqr()
		return l.Color.Scale(l.Intensity / distSq)
	}
	return l.Color.Scale(l.Intensity)
}
