// Package camera provides camera implementations for 3D rendering.
//
// The world is Z-up: X/Y span the map plane and Z is height.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center mgl32.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        400.0,
		RotationX:       0.7,
		RotationY:       0.0,
		MinDistance:     50.0,
		MaxDistance:     20000.0,
		MinPitch:        0.1,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	horiz := c.Distance * float32(gomath.Cos(float64(c.RotationX)))
	x := horiz * float32(gomath.Sin(float64(c.RotationY)))
	y := horiz * float32(gomath.Cos(float64(c.RotationY)))
	z := c.Distance * float32(gomath.Sin(float64(c.RotationX)))

	return c.Center.Add(mgl32.Vec3{x, y, z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	up := mgl32.Vec3{0, 0, 1}
	return mgl32.LookAtV(c.Position(), c.Center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandleMovement pans the camera center point based on keyboard input.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	dirX := float32(gomath.Sin(float64(c.RotationY)))
	dirY := float32(gomath.Cos(float64(c.RotationY)))

	rightX := float32(gomath.Cos(float64(c.RotationY)))
	rightY := float32(-gomath.Sin(float64(c.RotationY)))

	c.Center[0] += (-dirX*forward + rightX*right) * speed
	c.Center[1] += (-dirY*forward + rightY*right) * speed
	c.Center[2] += up * speed
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(x, y, z float32) {
	c.Center = mgl32.Vec3{x, y, z}
}

// FitToBounds adjusts camera to view the given bounding box.
func (c *OrbitCamera) FitToBounds(min, max mgl32.Vec3) {
	c.Center = min.Add(max).Mul(0.5)

	sizeX := max.X() - min.X()
	sizeY := max.Y() - min.Y()
	maxSize := sizeX
	if sizeY > maxSize {
		maxSize = sizeY
	}

	c.Distance = maxSize * 0.3
	if c.Distance < 400 {
		c.Distance = 400
	}

	c.RotationX = 0.6
	c.RotationY = 0.0
}
