package render

import (
	"github.com/nvollmar/landforge/internal/terrain"
)

// fakeDevice records buffer lifecycles in memory so resource manager
// behavior can be checked without a GL context.
type fakeDevice struct {
	vertexBuffers []*fakeVertexBuffer
	indexBuffers  []*fakeIndexBuffer
	vertexArrays  []*fakeVertexArray
}

func newFakeDevice() *fakeDevice { return &fakeDevice{} }

func (d *fakeDevice) CreateVertexBuffer(capacity int) VertexBuffer {
	vb := &fakeVertexBuffer{data: make([]terrain.VertexLandscape, capacity)}
	d.vertexBuffers = append(d.vertexBuffers, vb)
	return vb
}

func (d *fakeDevice) CreateIndexBuffer(capacity int) IndexBuffer {
	ib := &fakeIndexBuffer{data: make([]uint32, capacity)}
	d.indexBuffers = append(d.indexBuffers, ib)
	return ib
}

func (d *fakeDevice) CreateVertexArray(vb VertexBuffer, ib IndexBuffer) VertexArray {
	va := &fakeVertexArray{}
	d.vertexArrays = append(d.vertexArrays, va)
	return va
}

func (d *fakeDevice) liveVertexBuffers() int {
	n := 0
	for _, vb := range d.vertexBuffers {
		if !vb.released {
			n++
		}
	}
	return n
}

func (d *fakeDevice) liveIndexBuffers() int {
	n := 0
	for _, ib := range d.indexBuffers {
		if !ib.released {
			n++
		}
	}
	return n
}

func (d *fakeDevice) liveVertexArrays() int {
	n := 0
	for _, va := range d.vertexArrays {
		if !va.released {
			n++
		}
	}
	return n
}

type fakeVertexBuffer struct {
	data        []terrain.VertexLandscape
	released    bool
	subDataOps  int
	fullDataOps int
}

func (b *fakeVertexBuffer) SetData(verts []terrain.VertexLandscape) {
	b.fullDataOps++
	copy(b.data, verts)
}

func (b *fakeVertexBuffer) SetSubData(offset int, verts []terrain.VertexLandscape) {
	b.subDataOps++
	copy(b.data[offset:], verts)
}

func (b *fakeVertexBuffer) Release() { b.released = true }

type fakeIndexBuffer struct {
	data        []uint32
	released    bool
	subDataOps  int
	fullDataOps int
}

func (b *fakeIndexBuffer) SetData(indices []uint32) {
	b.fullDataOps++
	copy(b.data, indices)
}

func (b *fakeIndexBuffer) SetSubData(offset int, indices []uint32) {
	b.subDataOps++
	copy(b.data[offset:], indices)
}

func (b *fakeIndexBuffer) Release() { b.released = true }

type fakeVertexArray struct {
	released bool
	bound    bool
}

func (a *fakeVertexArray) Bind()    { a.bound = true }
func (a *fakeVertexArray) Unbind()  { a.bound = false }
func (a *fakeVertexArray) Release() { a.released = true }
