package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestWireframeBoxVertices(t *testing.T) {
	min := mgl32.Vec3{0, 0, 0}
	max := mgl32.Vec3{2, 4, 6}

	verts := WireframeBoxVertices(min, max)
	if len(verts) != 24*3 {
		t.Fatalf("got %d floats, want 72", len(verts))
	}

	// Every coordinate must be a box corner component.
	for i := 0; i < len(verts); i += 3 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		if x != 0 && x != 2 {
			t.Fatalf("vertex %d: x = %v", i/3, x)
		}
		if y != 0 && y != 4 {
			t.Fatalf("vertex %d: y = %v", i/3, y)
		}
		if z != 0 && z != 6 {
			t.Fatalf("vertex %d: z = %v", i/3, z)
		}
	}

	// Each line segment spans exactly one axis.
	for i := 0; i < len(verts); i += 6 {
		changed := 0
		for axis := 0; axis < 3; axis++ {
			if verts[i+axis] != verts[i+3+axis] {
				changed++
			}
		}
		if changed != 1 {
			t.Errorf("edge %d changes %d axes, want 1", i/6, changed)
		}
	}
}

func TestAppendWireframeBoxBatches(t *testing.T) {
	var batch []float32
	batch = AppendWireframeBox(batch, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	batch = AppendWireframeBox(batch, mgl32.Vec3{10, 10, 10}, mgl32.Vec3{11, 11, 11})

	if len(batch) != 2*24*3 {
		t.Fatalf("got %d floats, want 144", len(batch))
	}
	// Second box starts after the first box's 72 floats.
	if batch[72] != 10 || batch[73] != 10 || batch[74] != 10 {
		t.Errorf("second box first vertex = (%v,%v,%v), want (10,10,10)",
			batch[72], batch[73], batch[74])
	}
}
