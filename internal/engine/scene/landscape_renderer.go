package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nvollmar/landforge/internal/engine/shader"
)

const landscapeVertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;
layout(location = 3) in float aTexIndex;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;
flat out float vTexIndex;

void main() {
    vNormal = aNormal;
    vTexCoord = aTexCoord;
    vTexIndex = aTexIndex;
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const landscapeFragmentShader = `#version 410 core
in vec3 vNormal;
in vec2 vTexCoord;
flat in float vTexIndex;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;

out vec4 fragColor;

// Each surface index gets a stable tint so terrain types read apart
// even without a texture atlas bound.
vec3 surfaceTint(float idx) {
    float h = fract(idx * 0.127);
    return vec3(0.35 + 0.4 * h, 0.5 + 0.3 * fract(h * 3.7), 0.35);
}

void main() {
    vec3 n = normalize(vNormal);
    float ndl = max(dot(n, normalize(-uLightDir)), 0.0);
    vec3 base = surfaceTint(vTexIndex);
    vec3 lit = base * (uAmbient + uDiffuse * ndl);
    fragColor = vec4(lit, 1.0);
}
`

// LandscapeRenderer draws resident terrain chunks with a directional
// light.
type LandscapeRenderer struct {
	program uint32

	locViewProj int32
	locLightDir int32
	locAmbient  int32
	locDiffuse  int32
}

// NewLandscapeRenderer compiles the landscape shader program.
func NewLandscapeRenderer() (*LandscapeRenderer, error) {
	program, err := shader.CompileProgram(landscapeVertexShader, landscapeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("landscape shader: %w", err)
	}

	lr := &LandscapeRenderer{program: program}
	lr.locViewProj = shader.GetUniform(program, "uViewProj")
	lr.locLightDir = shader.GetUniform(program, "uLightDir")
	lr.locAmbient = shader.GetUniform(program, "uAmbient")
	lr.locDiffuse = shader.GetUniform(program, "uDiffuse")
	return lr, nil
}

// Render draws the given chunks with the current view-projection.
func (lr *LandscapeRenderer) Render(viewProj mgl32.Mat4, lightDir mgl32.Vec3, chunks []VisibleChunk) {
	if len(chunks) == 0 {
		return
	}

	gl.UseProgram(lr.program)
	gl.UniformMatrix4fv(lr.locViewProj, 1, false, &viewProj[0])
	gl.Uniform3f(lr.locLightDir, lightDir.X(), lightDir.Y(), lightDir.Z())
	gl.Uniform3f(lr.locAmbient, 0.35, 0.35, 0.35)
	gl.Uniform3f(lr.locDiffuse, 0.8, 0.8, 0.75)

	for _, vc := range chunks {
		vc.Data.VertexArray.Bind()
		gl.DrawElements(gl.TRIANGLES, int32(vc.Data.IndexCount), gl.UNSIGNED_INT, nil)
		vc.Data.VertexArray.Unbind()
	}
}

// Destroy releases the shader program.
func (lr *LandscapeRenderer) Destroy() {
	if lr.program != 0 {
		gl.DeleteProgram(lr.program)
		lr.program = 0
	}
}
