package renderer

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// maxPitch keeps the forward vector away from the world up axis
const maxPitch = 88.0

// Camera is a pinhole camera looking down its Forward axis.
// Angles are kept in degrees, FOVFactor is tan(fov/2). Right and Up are
// derived from Forward; change the orientation through Rotate.
type Camera struct {
	Origin    mgl64.Vec3
	FOVAngle  float64
	FOVFactor float64

	Forward mgl64.Vec3
	Up      mgl64.Vec3
	Right   mgl64.Vec3

	pitch float64 // Degrees, positive looks up
	yaw   float64 // Degrees, positive turns toward +X
}

// NewCamera creates a camera at origin looking down +Z
func NewCamera(origin mgl64.Vec3, fovDegrees float64) *Camera {
	c := &Camera{
		Origin:  origin,
		Forward: mgl64.Vec3{0, 0, 1},
	}
	c.SetFOV(fovDegrees)
	c.updateBasis()
	return c
}

// SetFOV sets the vertical field of view in degrees
func (c *Camera) SetFOV(fovDegrees float64) {
	c.FOVAngle = fovDegrees
	c.FOVFactor = math.Tan(mgl64.DegToRad(fovDegrees) / 2)
}

// Rotate adds pitch and yaw in degrees. Pitch is clamped to ±88°.
func (c *Camera) Rotate(pitchDegrees, yawDegrees float64) {
	c.pitch = mgl64.Clamp(c.pitch+pitchDegrees, -maxPitch, maxPitch)
	c.yaw += yawDegrees

	rotation := mgl64.HomogRotate3DY(mgl64.DegToRad(c.yaw)).
		Mul4(mgl64.HomogRotate3DX(-mgl64.DegToRad(c.pitch)))
	c.Forward = mgl64.TransformNormal(mgl64.Vec3{0, 0, 1}, rotation).Normalize()
	c.updateBasis()
}

// Orientation returns the accumulated pitch and yaw in degrees
func (c *Camera) Orientation() (pitch, yaw float64) {
	return c.pitch, c.yaw
}

// Move translates the camera in its own basis: X right, Y up, Z forward
func (c *Camera) Move(delta mgl64.Vec3) {
	c.Origin = c.Origin.
		Add(c.Right.Mul(delta[0])).
		Add(c.Up.Mul(delta[1])).
		Add(c.Forward.Mul(delta[2]))
}

// updateBasis derives Right and Up from Forward and the world up axis
func (c *Camera) updateBasis() {
	c.Right = mgl64.Vec3{0, 1, 0}.Cross(c.Forward).Normalize()
	c.Up = c.Forward.Cross(c.Right).Normalize()
}

// CameraToWorld returns the matrix whose columns are Right, Up, Forward and Origin.
// It only reads the camera; Rotate and NewCamera keep the basis current.
func (c *Camera) CameraToWorld() mgl64.Mat4 {
	return mgl64.Mat4FromCols(
		c.Right.Vec4(0),
		c.Up.Vec4(0),
		c.Forward.Vec4(0),
		c.Origin.Vec4(1),
	)
}

// view is an immutable snapshot of the camera taken at the start of a render pass
type view struct {
	origin        mgl64.Vec3
	cameraToWorld mgl64.Mat4
	fovFactor     float64
	aspectRatio   float64
	width         int
	height        int
}

func newView(c *Camera, width, height int) view {
	return view{
		origin:        c.Origin,
		cameraToWorld: c.CameraToWorld(),
		fovFactor:     c.FOVFactor,
		aspectRatio:   float64(width) / float64(height),
		width:         width,
		height:        height,
	}
}

// primaryRay returns the ray through the center of pixel index = px + py*width
func (v view) primaryRay(index int) core.Ray {
	px := index % v.width
	py := index / v.width

	cx := (2*(float64(px)+0.5)/float64(v.width) - 1) * v.aspectRatio * v.fovFactor
	cy := (1 - 2*(float64(py)+0.5)/float64(v.height)) * v.fovFactor

	direction := v.cameraToWorld.Mul4x1(mgl64.Vec4{cx, cy, 1, 0}).Vec3().Normalize()
	return core.NewRay(v.origin, direction)
}

// RayForPixel returns the primary ray through the center of pixel (px, py)
// of a width x height image
func (c *Camera) RayForPixel(px, py, width, height int) core.Ray {
	return newView(c, width, height).primaryRay(px + py*width)
}
