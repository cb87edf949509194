package scene

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/material"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/go-gl/mathgl/mgl64"
)

// Scene contains all the elements needed for rendering.
// Primitives reference materials by index into the material list.
type Scene struct {
	Spheres   []geometry.Sphere
	Planes    []geometry.Plane
	Triangles []geometry.Triangle
	Meshes    []*geometry.TriangleMesh

	camera    *renderer.Camera
	materials []material.Material
	lights    []lights.Light
}

// NewScene creates an empty scene viewed through camera
func NewScene(camera *renderer.Camera) *Scene {
	return &Scene{camera: camera}
}

// Camera returns the scene camera
func (s *Scene) Camera() *renderer.Camera { return s.camera }

// Materials returns the material list
func (s *Scene) Materials() []material.Material { return s.materials }

// Lights returns the light list
func (s *Scene) Lights() []lights.Light { return s.lights }

// AddMaterial appends a material and returns its index
func (s *Scene) AddMaterial(m material.Material) int {
	s.materials = append(s.materials, m)
	return len(s.materials) - 1
}

// AddSphere adds a sphere
func (s *Scene) AddSphere(origin mgl64.Vec3, radius float64, materialIndex int) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(origin, radius, materialIndex))
}

// AddPlane adds an infinite plane
func (s *Scene) AddPlane(origin, normal mgl64.Vec3, materialIndex int) {
	s.Planes = append(s.Planes, geometry.NewPlane(origin, normal, materialIndex))
}

// AddTriangle adds a free-standing triangle
func (s *Scene) AddTriangle(tri geometry.Triangle) {
	s.Triangles = append(s.Triangles, tri)
}

// AddMesh adds a triangle mesh. The mesh is stored by reference so later
// transforms are picked up by the next render.
func (s *Scene) AddMesh(mesh *geometry.TriangleMesh) {
	s.Meshes = append(s.Meshes, mesh)
}

// AddPointLight adds a point light
func (s *Scene) AddPointLight(origin mgl64.Vec3, intensity float64, color core.Color) {
	s.lights = append(s.lights, lights.NewPointLight(origin, intensity, color))
}

// AddDirectionalLight adds a directional light shining from direction
func (s *Scene) AddDirectionalLight(direction mgl64.Vec3, intensity float64, color core.Color) {
	s.lights = append(s.lights, lights.NewDirectionalLight(direction, intensity, color))
}

// ClosestHit returns the nearest intersection over every primitive.
// The record has DidHit false when nothing was hit.
func (s *Scene) ClosestHit(ray core.Ray) core.HitRecord {
	rec := core.NewHitRecord()
	for i := range s.Spheres {
		s.Spheres[i].Hit(ray, &rec)
	}
	for i := range s.Planes {
		s.Planes[i].Hit(ray, &rec)
	}
	for i := range s.Triangles {
		s.Triangles[i].Hit(ray, &rec)
	}
	for _, mesh := range s.Meshes {
		mesh.Hit(ray, &rec)
	}
	return rec
}

// AnyHit reports whether anything blocks the ray within its range
func (s *Scene) AnyHit(ray core.Ray) bool {
	for i := range s.Spheres {
		if s.Spheres[i].AnyHit(ray) {
			return true
		}
	}
	for i := range s.Planes {
		if s.Planes[i].AnyHit(ray) {
			return true
		}
	}
	for i := range s.Triangles {
		if s.Triangles[i].AnyHit(ray) {
			return true
		}
	}
	for _, mesh := range s.Meshes {
		if mesh.AnyHit(ray) {
			return true
		}
	}
	return false
}

// Update animates the scene to elapsed seconds: every mesh turns about Y
// at a quarter turn per second.
func (s *Scene) Update(elapsed float64) {
	yaw := elapsed * math.Pi / 2
	for _, mesh := range s.Meshes {
		mesh.RotateY(yaw)
	}
}

// PrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) PrimitiveCount() int {
	count := len(s.Spheres) + len(s.Planes) + len(s.Triangles)
	for _, mesh := range s.Meshes {
		count += mesh.TriangleCount()
	}
	return count
}

// Bounds returns the world bounds of all finite primitives. Planes are
// unbounded and left out; ok is false when nothing finite is in the scene.
func (s *Scene) Bounds() (bounds core.AABB, ok bool) {
	add := func(b core.AABB) {
		if !ok {
			bounds, ok = b, true
			return
		}
		bounds = bounds.Union(b)
	}

	for i := range s.Spheres {
		add(s.Spheres[i].BoundingBox())
	}
	for i := range s.Triangles {
		t := &s.Triangles[i]
		add(core.NewAABBFromPoints(t.V0, t.V1, t.V2))
	}
	for _, mesh := range s.Meshes {
		if mesh.TriangleCount() > 0 {
			add(mesh.BoundingBox())
		}
	}
	return bounds, ok
}
