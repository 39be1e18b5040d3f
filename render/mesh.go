package render

import (
	"fmt"

	"SpacecraftGolang/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// TerrainProgram is the lit, vertex-coloured shader both terrain layers share.
type TerrainProgram struct {
	id uint32
}

func NewTerrainProgram() (*TerrainProgram, error) {
	id, err := NewProgram(terrainVertexShader, terrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	return &TerrainProgram{id: id}, nil
}

// Use binds the program and sets the per-frame camera and light.
func (p *TerrainProgram) Use(projection, view mgl32.Mat4, eye, lightDir mgl32.Vec3) {
	gl.UseProgram(p.id)
	setMat4(p.id, "projection", projection)
	setMat4(p.id, "view", view)
	setMat4(p.id, "model", mgl32.Ident4())
	setVec3(p.id, "viewPos", eye)
	setVec3(p.id, "lightDir", lightDir)
	gl.Uniform1i(uniform(p.id, "detail"), 0)
}

func (p *TerrainProgram) Delete() {
	gl.DeleteProgram(p.id)
}

// MeshBuffers holds one VBO per schema attribute behind a single VAO.
type MeshBuffers struct {
	vao      uint32
	vbos     map[uint32]uint32 // attribute location -> buffer
	vertices int32
	hasUV    bool
}

// UploadMesh validates m and copies every attribute to the GPU. Positions are
// uploaded DYNAMIC_DRAW so Sync can rewrite them in place.
func UploadMesh(m *terrain.Mesh) (*MeshBuffers, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	b := &MeshBuffers{
		vbos:     make(map[uint32]uint32, len(terrain.VertexSchema)),
		vertices: int32(m.Len()),
	}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	for _, a := range terrain.VertexSchema {
		data := m.AttributeData(a)
		if len(data) == 0 {
			continue
		}
		usage := uint32(gl.STATIC_DRAW)
		if a.Location == terrain.AttribPosition.Location {
			usage = gl.DYNAMIC_DRAW
		}

		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, a.Size*4, nil)

		b.vbos[a.Location] = vbo
		if a.Location == terrain.AttribTexCoord.Location {
			b.hasUV = true
		}
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b, nil
}

// Sync re-uploads positions if the mesh was offset since the last upload.
// Nothing else is ever re-sent.
func (b *MeshBuffers) Sync(m *terrain.Mesh) {
	if !m.PositionsDirty() {
		return
	}
	data := m.AttributeData(terrain.AttribPosition)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbos[terrain.AttribPosition.Location])
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.ClearPositionsDirty()
}

// Draw renders the buffers with p, which must already be in use.
func (b *MeshBuffers) Draw(p *TerrainProgram, opts DrawOptions) {
	textured := opts.Texture != 0 && b.hasUV
	if textured {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, opts.Texture)
	}
	gl.Uniform1i(uniform(p.id, "useTexture"), boolToInt(textured))

	// Triangles wind clockwise seen from above.
	gl.FrontFace(gl.CW)
	gl.BindVertexArray(b.vao)

	if opts.Mode != ModeWireframe {
		gl.Uniform1i(uniform(p.id, "wireframe"), 0)
		gl.DrawArrays(gl.TRIANGLES, 0, b.vertices)
	}
	if opts.Mode != ModeFill {
		gl.Disable(gl.CULL_FACE)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		if opts.Mode == ModeHighlight {
			gl.Enable(gl.POLYGON_OFFSET_LINE)
			gl.PolygonOffset(-1, -1)
		}
		gl.Uniform1i(uniform(p.id, "wireframe"), 1)
		gl.DrawArrays(gl.TRIANGLES, 0, b.vertices)

		gl.Disable(gl.POLYGON_OFFSET_LINE)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		gl.Enable(gl.CULL_FACE)
	}

	gl.BindVertexArray(0)
	gl.FrontFace(gl.CCW)
}

func (b *MeshBuffers) Delete() {
	for _, vbo := range b.vbos {
		gl.DeleteBuffers(1, &vbo)
	}
	gl.DeleteVertexArrays(1, &b.vao)
}

func boolToInt(v bool) int32 {
	if v {
		return 1
	}
	return 0
}
