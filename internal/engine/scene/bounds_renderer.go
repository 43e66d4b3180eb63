package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nvollmar/landforge/internal/engine/debug"
	"github.com/nvollmar/landforge/internal/engine/shader"
)

const boundsVertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;

uniform mat4 uViewProj;

void main() {
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const boundsFragmentShader = `#version 410 core
uniform vec3 uColor;

out vec4 fragColor;

void main() {
    fragColor = vec4(uColor, 1.0);
}
`

// BoundsRenderer draws chunk bounding boxes as wireframe overlays.
// All visible boxes are batched into one dynamic buffer per frame.
type BoundsRenderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	vboCap  int

	locViewProj int32
	locColor    int32

	scratch []float32
}

// NewBoundsRenderer compiles the wireframe shader and allocates the
// line buffer.
func NewBoundsRenderer() (*BoundsRenderer, error) {
	program, err := shader.CompileProgram(boundsVertexShader, boundsFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("bounds shader: %w", err)
	}

	br := &BoundsRenderer{program: program}
	br.locViewProj = shader.GetUniform(program, "uViewProj")
	br.locColor = shader.GetUniform(program, "uColor")

	gl.GenVertexArrays(1, &br.vao)
	gl.GenBuffers(1, &br.vbo)

	gl.BindVertexArray(br.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, br.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	return br, nil
}

// Render draws a wireframe box around every chunk in the list.
func (br *BoundsRenderer) Render(viewProj mgl32.Mat4, chunks []VisibleChunk) {
	if len(chunks) == 0 {
		return
	}

	br.scratch = br.scratch[:0]
	for _, vc := range chunks {
		b := vc.Chunk.Bounds
		br.scratch = debug.AppendWireframeBox(br.scratch,
			mgl32.Vec3{b.Min[0], b.Min[1], b.Min[2]},
			mgl32.Vec3{b.Max[0], b.Max[1], b.Max[2]})
	}

	gl.UseProgram(br.program)
	gl.UniformMatrix4fv(br.locViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(br.locColor, 1.0, 0.85, 0.2)

	gl.BindVertexArray(br.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, br.vbo)
	byteLen := len(br.scratch) * 4
	if byteLen > br.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, byteLen, gl.Ptr(br.scratch), gl.DYNAMIC_DRAW)
		br.vboCap = byteLen
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, byteLen, gl.Ptr(br.scratch))
	}

	gl.DrawArrays(gl.LINES, 0, int32(len(br.scratch)/3))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Destroy releases the GL objects.
func (br *BoundsRenderer) Destroy() {
	if br.vbo != 0 {
		gl.DeleteBuffers(1, &br.vbo)
		br.vbo = 0
	}
	if br.vao != 0 {
		gl.DeleteVertexArrays(1, &br.vao)
		br.vao = 0
	}
	if br.program != 0 {
		gl.DeleteProgram(br.program)
		br.program = 0
	}
}
