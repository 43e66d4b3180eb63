// Package lighting provides directional light utilities for the viewport.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunVector converts azimuth/elevation angles to a unit vector pointing
// from the scene towards the sun. Azimuth is degrees clockwise from +Y,
// elevation is degrees above the horizon. The world is Z up.
func SunVector(azimuth, elevation float32) mgl32.Vec3 {
	azRad := float64(azimuth) * math.Pi / 180.0
	elRad := float64(elevation) * math.Pi / 180.0

	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Cos(elRad) * math.Cos(azRad))
	z := float32(math.Sin(elRad))

	return mgl32.Vec3{x, y, z}
}

// TravelDirection returns the direction sunlight travels, already
// normalized and pointing down into the scene. This is the vector a
// diffuse term negates before dotting with the surface normal.
func TravelDirection(azimuth, elevation float32) mgl32.Vec3 {
	return SunVector(azimuth, elevation).Mul(-1)
}
