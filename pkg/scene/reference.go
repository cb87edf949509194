package scene

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/material"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/go-gl/mathgl/mgl64"
)

// roomMaterials are the material indices shared by the reference room scenes
type roomMaterials struct {
	grayBlue int
	white    int
}

// addRoom adds the five-walled room (open toward the camera) and its three point lights
func addRoom(s *Scene) roomMaterials {
	mats := roomMaterials{
		grayBlue: s.AddMaterial(material.NewLambert(core.NewColor(0.49, 0.57, 0.57), 1)),
		white:    s.AddMaterial(material.NewLambert(core.White, 1)),
	}

	s.AddPlane(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}, mats.grayBlue) // back
	s.AddPlane(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, mats.grayBlue)   // floor
	s.AddPlane(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, -1, 0}, mats.grayBlue) // ceiling
	s.AddPlane(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{-1, 0, 0}, mats.grayBlue)  // right
	s.AddPlane(mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{1, 0, 0}, mats.grayBlue)  // left

	s.AddPointLight(mgl64.Vec3{0, 5, 5}, 50, core.NewColor(1, 0.61, 0.45))      // backlight
	s.AddPointLight(mgl64.Vec3{-2.5, 5, -5}, 70, core.NewColor(1, 0.8, 0.45))   // front left
	s.AddPointLight(mgl64.Vec3{2.5, 2.5, -5}, 50, core.NewColor(0.34, 0.47, 0.68)) // front right

	return mats
}

// NewReferenceScene creates the reference room: two rows of Cook-Torrance
// spheres (metal below, plastic above, rough to smooth from left to right)
// and one triangle per cull mode.
func NewReferenceScene() *Scene {
	s := NewScene(renderer.NewCamera(mgl64.Vec3{0, 3, -9}, 45))
	room := addRoom(s)

	roughness := []float64{1.0, 0.6, 0.1}
	columns := []float64{-1.75, 0, 1.75}
	for i, r := range roughness {
		metal := s.AddMaterial(material.NewMetal(material.Silver, r))
		plastic := s.AddMaterial(material.NewPlastic(core.GrayLevel(0.75), r))
		s.AddSphere(mgl64.Vec3{columns[i], 1, 0}, 0.75, metal)
		s.AddSphere(mgl64.Vec3{columns[i], 3, 0}, 0.75, plastic)
	}

	cullModes := []geometry.CullMode{geometry.BackFaceCulling, geometry.FrontFaceCulling, geometry.NoCulling}
	for i, cull := range cullModes {
		mesh := geometry.NewEmptyTriangleMesh(cull, room.white)
		mesh.AppendTriangleDeferred(referenceTriangle())
		mesh.Translate(mgl64.Vec3{columns[i], 4.5, 0})
		s.AddMesh(mesh)
	}

	return s
}

// referenceTriangle faces the camera (normal -Z)
func referenceTriangle() geometry.Triangle {
	return geometry.NewTriangle(
		mgl64.Vec3{-0.75, 1.5, 0},
		mgl64.Vec3{0.75, 0, 0},
		mgl64.Vec3{-0.75, 0, 0},
		geometry.NoCulling, 0,
	)
}
