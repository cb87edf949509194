package integrator

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// Scene is the read-only view of a scene needed to light a hit point.
// Declared here to avoid circular imports with pkg/scene.
type Scene interface {
	ClosestHit(ray core.Ray) core.HitRecord
	AnyHit(ray core.Ray) bool
	Materials() []material.Material
	Lights() []lights.Light
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the tone-mapped color seen along ray, black on a miss
	RayColor(ray core.Ray, scene Scene) core.Color
}
