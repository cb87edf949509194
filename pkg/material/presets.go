package material

import "github.com/df07/go-direct-raytracer/pkg/core"

// Measured base reflectivity of common metals
var (
	Copper = core.NewColor(0.955, 0.637, 0.538)
	Gold   = core.NewColor(1.0, 0.782, 0.344)
	Silver = core.NewColor(0.972, 0.960, 0.915)
)

// NewMetal creates a conductor with the given albedo and roughness
func NewMetal(albedo core.Color, roughness float64) Material {
	return NewCookTorrance(albedo, 1, roughness)
}

// NewPlastic creates a dielectric with the given albedo and roughness
func NewPlastic(albedo core.Color, roughness float64) Material {
	return NewCookTorrance(albedo, 0, roughness)
}
