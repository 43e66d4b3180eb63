// Package debug provides debug visualization and capture utilities.
package debug

import "github.com/go-gl/mathgl/mgl32"

// WireframeBoxVertices creates line-list vertices for a wireframe box,
// 24 vertices (12 edges, 2 endpoints each) as x,y,z triples. The box
// faces are at minZ and maxZ with the world Z up.
func WireframeBoxVertices(min, max mgl32.Vec3) []float32 {
	x0, y0, z0 := min.X(), min.Y(), min.Z()
	x1, y1, z1 := max.X(), max.Y(), max.Z()

	return []float32{
		// Bottom face
		x0, y0, z0, x1, y0, z0,
		x1, y0, z0, x1, y1, z0,
		x1, y1, z0, x0, y1, z0,
		x0, y1, z0, x0, y0, z0,
		// Top face
		x0, y0, z1, x1, y0, z1,
		x1, y0, z1, x1, y1, z1,
		x1, y1, z1, x0, y1, z1,
		x0, y1, z1, x0, y0, z1,
		// Vertical edges
		x0, y0, z0, x0, y0, z1,
		x1, y0, z0, x1, y0, z1,
		x1, y1, z0, x1, y1, z1,
		x0, y1, z0, x0, y1, z1,
	}
}

// AppendWireframeBox appends a wireframe box to dst, returning the
// extended slice. Useful for batching many boxes into one draw call.
func AppendWireframeBox(dst []float32, min, max mgl32.Vec3) []float32 {
	return append(dst, WireframeBoxVertices(min, max)...)
}
