// Package picking converts screen positions into world-space rays and
// intersects them with the landscape.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line in world space. Direction is normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToRay unprojects a pixel position into a world-space ray.
// screenX, screenY are pixel coordinates with origin at the top left,
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH

	near := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1.0, 1.0})
	far := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1.0, 1.0})

	if near.W() != 0 {
		near = near.Mul(1 / near.W())
	}
	if far.W() != 0 {
		far = far.Mul(1 / far.W())
	}

	origin := near.Vec3()
	dir := far.Vec3().Sub(origin)
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}

	return Ray{Origin: origin, Direction: dir}
}

// IntersectPlaneZ intersects the ray with the horizontal plane at the
// given height. Returns the intersection point's X and Y.
func (r Ray) IntersectPlaneZ(planeZ float32) (x, y float32, ok bool) {
	if gomath.Abs(float64(r.Direction.Z())) < 1e-4 {
		return 0, 0, false
	}

	t := (planeZ - r.Origin.Z()) / r.Direction.Z()
	if t < 0 {
		return 0, 0, false
	}

	p := r.At(t)
	return p.X(), p.Y(), true
}

// IntersectAABB tests the ray against an axis-aligned box using the
// slab method. Returns the entry distance, or the exit distance when
// the ray starts inside the box.
func (r Ray) IntersectAABB(min, max mgl32.Vec3) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < min[axis] || o > max[axis] {
				return 0, false
			}
			continue
		}

		t1 := (min[axis] - o) / d
		t2 := (max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectHeightfield marches the ray against a terrain height
// function until the ray dips below the surface, then bisects the last
// interval for a tight hit point. heightAt maps world X,Y to terrain
// height. Returns false when the ray stays above the terrain for the
// whole of maxDist.
func (r Ray) IntersectHeightfield(heightAt func(x, y float32) float32, maxDist, step float32) (mgl32.Vec3, bool) {
	if step <= 0 || maxDist <= 0 {
		return mgl32.Vec3{}, false
	}

	prev := float32(0)
	for t := step; t <= maxDist; t += step {
		p := r.At(t)
		if p.Z() <= heightAt(p.X(), p.Y()) {
			lo, hi := prev, t
			for i := 0; i < 12; i++ {
				mid := (lo + hi) / 2
				m := r.At(mid)
				if m.Z() <= heightAt(m.X(), m.Y()) {
					hi = mid
				} else {
					lo = mid
				}
			}
			return r.At(hi), true
		}
		prev = t
	}

	return mgl32.Vec3{}, false
}
