package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nvollmar/landforge/internal/terrain"
)

type plane struct {
	a, b, c, d float32
}

// Frustum holds the six clip planes of a view-projection matrix,
// order: left, right, bottom, top, near, far.
type Frustum struct {
	planes [6]plane
}

// NewFrustum extracts frustum planes from a combined projection*view
// matrix (mgl32 matrices are column-major).
func NewFrustum(clip mgl32.Mat4) Frustum {
	m00, m01, m02, m03 := clip[0], clip[4], clip[8], clip[12]
	m10, m11, m12, m13 := clip[1], clip[5], clip[9], clip[13]
	m20, m21, m22, m23 := clip[2], clip[6], clip[10], clip[14]
	m30, m31, m32, m33 := clip[3], clip[7], clip[11], clip[15]

	var f Frustum
	f.planes[0] = normalizePlane(plane{m30 + m00, m31 + m01, m32 + m02, m33 + m03})
	f.planes[1] = normalizePlane(plane{m30 - m00, m31 - m01, m32 - m02, m33 - m03})
	f.planes[2] = normalizePlane(plane{m30 + m10, m31 + m11, m32 + m12, m33 + m13})
	f.planes[3] = normalizePlane(plane{m30 - m10, m31 - m11, m32 - m12, m33 - m13})
	f.planes[4] = normalizePlane(plane{m30 + m20, m31 + m21, m32 + m22, m33 + m23})
	f.planes[5] = normalizePlane(plane{m30 - m20, m31 - m21, m32 - m22, m33 - m23})
	return f
}

func normalizePlane(p plane) plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// IntersectsBoundingBox tests an AABB against the frustum using the
// positive-vertex test: if the vertex furthest along a plane normal is
// behind that plane, the box is outside.
func (f Frustum) IntersectsBoundingBox(b terrain.Bounds) bool {
	for i := 0; i < 6; i++ {
		p := f.planes[i]
		px := b.Max[0]
		if p.a < 0 {
			px = b.Min[0]
		}
		py := b.Max[1]
		if p.b < 0 {
			py = b.Min[1]
		}
		pz := b.Max[2]
		if p.c < 0 {
			pz = b.Min[2]
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}
