package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Sky is a gradient cube drawn around the camera before the terrain.
type Sky struct {
	vao     uint32
	vbo     uint32
	program uint32

	Horizon mgl32.Vec3
	Zenith  mgl32.Vec3
}

func NewSky() (*Sky, error) {
	// Unit cube, 36 vertices. Culling is off while drawing so winding is irrelevant.
	cubeVertices := []float32{
		// +X
		1, -1, -1, 1, 1, -1, 1, 1, 1,
		1, -1, -1, 1, 1, 1, 1, -1, 1,
		// -X
		-1, -1, -1, -1, -1, 1, -1, 1, 1,
		-1, -1, -1, -1, 1, 1, -1, 1, -1,
		// +Y
		-1, 1, -1, 1, 1, -1, 1, 1, 1,
		-1, 1, -1, 1, 1, 1, -1, 1, 1,
		// -Y
		-1, -1, -1, -1, -1, 1, 1, -1, 1,
		-1, -1, -1, 1, -1, 1, 1, -1, -1,
		// +Z
		-1, -1, 1, 1, -1, 1, 1, 1, 1,
		-1, -1, 1, 1, 1, 1, -1, 1, 1,
		// -Z
		-1, -1, -1, 1, -1, -1, 1, 1, -1,
		-1, -1, -1, 1, 1, -1, -1, 1, -1,
	}

	program, err := NewProgram(skyVertexShader, skyFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sky shader: %w", err)
	}
	s := &Sky{
		program: program,
		Horizon: mgl32.Vec3{0.75, 0.85, 0.95},
		Zenith:  mgl32.Vec3{0.2, 0.4, 0.8},
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return s, nil
}

// Draw must come after the clear and before the terrain, with the same
// projection and view as the world.
func (s *Sky) Draw(projection, view mgl32.Mat4) {
	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(s.program)
	setMat4(s.program, "projection", projection)
	setMat4(s.program, "view", view)
	setVec3(s.program, "horizon", s.Horizon)
	setVec3(s.program, "zenith", s.Zenith)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
}

func (s *Sky) Delete() {
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
}
