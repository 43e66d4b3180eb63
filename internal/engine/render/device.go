// Package render owns the GPU side of terrain streaming: the graphics
// device abstraction, per-chunk buffer sets and the resource manager
// that keeps them in sync with terrain edits.
package render

import "github.com/nvollmar/landforge/internal/terrain"

// VertexBuffer is a GPU vertex buffer of VertexLandscape elements.
// Offsets are in vertices, not bytes.
type VertexBuffer interface {
	SetData(verts []terrain.VertexLandscape)
	SetSubData(offset int, verts []terrain.VertexLandscape)
	Release()
}

// IndexBuffer is a GPU index buffer of uint32 indices. Offsets are in
// indices.
type IndexBuffer interface {
	SetData(indices []uint32)
	SetSubData(offset int, indices []uint32)
	Release()
}

// VertexArray binds a vertex/index buffer pair with the terrain vertex
// layout.
type VertexArray interface {
	Bind()
	Unbind()
	Release()
}

// Device creates GPU buffer objects. Capacities are element counts;
// buffers are allocated once at creation and rewritten in place. The
// GL implementation must only be used from the thread owning the
// context; tests substitute an in-memory fake.
type Device interface {
	CreateVertexBuffer(capacity int) VertexBuffer
	CreateIndexBuffer(capacity int) IndexBuffer
	CreateVertexArray(vb VertexBuffer, ib IndexBuffer) VertexArray
}
