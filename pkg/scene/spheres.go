package scene

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/material"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/go-gl/mathgl/mgl64"
)

// NewSpheresScene creates a row of Lambert and Phong spheres on a ground
// plane, lit by a warm point light and a cool directional light
func NewSpheresScene() *Scene {
	s := NewScene(renderer.NewCamera(mgl64.Vec3{0, 1.5, -6}, 50))

	ground := s.AddMaterial(material.NewLambert(core.GrayLevel(0.8), 1))
	s.AddPlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, ground)

	spheres := []struct {
		x        float64
		material material.Material
	}{
		{-3, material.NewLambert(core.NewColor(0.65, 0.25, 0.2), 1)},
		{-1, material.NewLambertPhong(core.NewColor(0.1, 0.2, 0.5), 1, 0.5, 4)},
		{1, material.NewLambertPhong(core.NewColor(0.2, 0.5, 0.2), 1, 0.5, 30)},
		{3, material.NewLambertPhong(core.Gray, 0.7, 0.3, 120)},
	}
	for _, sp := range spheres {
		idx := s.AddMaterial(sp.material)
		s.AddSphere(mgl64.Vec3{sp.x, 1, 2}, 0.9, idx)
	}

	// Emissive-looking marker that ignores lighting
	marker := s.AddMaterial(material.NewSolidColor(core.NewColor(1, 0.9, 0.3)))
	s.AddSphere(mgl64.Vec3{0, 3.2, 4}, 0.25, marker)

	s.AddPointLight(mgl64.Vec3{0, 5, -2}, 40, core.NewColor(1, 0.85, 0.7))
	s.AddDirectionalLight(mgl64.Vec3{-1, 1, -0.5}, 0.6, core.NewColor(0.6, 0.7, 1))

	return s
}
