package render

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/nvollmar/landforge/internal/terrain"
)

var vertexSize = int(unsafe.Sizeof(terrain.VertexLandscape{}))

// GLDevice implements Device on an OpenGL 4.1 core context.
type GLDevice struct{}

var _ Device = (*GLDevice)(nil)

// NewGLDevice returns a device for the current GL context.
func NewGLDevice() *GLDevice { return &GLDevice{} }

type glVertexBuffer struct {
	id       uint32
	capacity int
}

func (d *GLDevice) CreateVertexBuffer(capacity int) VertexBuffer {
	vb := &glVertexBuffer{capacity: capacity}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*vertexSize, nil, gl.DYNAMIC_DRAW)
	return vb
}

func (b *glVertexBuffer) SetData(verts []terrain.VertexLandscape) {
	b.SetSubData(0, verts)
}

func (b *glVertexBuffer) SetSubData(offset int, verts []terrain.VertexLandscape) {
	if len(verts) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*vertexSize, len(verts)*vertexSize,
		unsafe.Pointer(&verts[0]))
}

func (b *glVertexBuffer) Release() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

type glIndexBuffer struct {
	id       uint32
	capacity int
}

func (d *GLDevice) CreateIndexBuffer(capacity int) IndexBuffer {
	ib := &glIndexBuffer{capacity: capacity}
	gl.GenBuffers(1, &ib.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, capacity*4, nil, gl.DYNAMIC_DRAW)
	return ib
}

func (b *glIndexBuffer) SetData(indices []uint32) {
	b.SetSubData(0, indices)
}

func (b *glIndexBuffer) SetSubData(offset int, indices []uint32) {
	if len(indices) == 0 {
		return
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, offset*4, len(indices)*4,
		unsafe.Pointer(&indices[0]))
}

func (b *glIndexBuffer) Release() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

type glVertexArray struct {
	id uint32
}

func (d *GLDevice) CreateVertexArray(vb VertexBuffer, ib IndexBuffer) VertexArray {
	va := &glVertexArray{}
	gl.GenVertexArrays(1, &va.id)
	gl.BindVertexArray(va.id)

	gl.BindBuffer(gl.ARRAY_BUFFER, vb.(*glVertexBuffer).id)

	stride := int32(vertexSize)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	// TexIndex (location 3)
	gl.VertexAttribPointerWithOffset(3, 1, gl.FLOAT, false, stride, 8*4)
	gl.EnableVertexAttribArray(3)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.(*glIndexBuffer).id)

	gl.BindVertexArray(0)
	return va
}

func (a *glVertexArray) Bind()   { gl.BindVertexArray(a.id) }
func (a *glVertexArray) Unbind() { gl.BindVertexArray(0) }

func (a *glVertexArray) Release() {
	if a.id != 0 {
		gl.DeleteVertexArrays(1, &a.id)
		a.id = 0
	}
}
