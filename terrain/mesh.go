package terrain

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrMalformedMesh = errors.New("terrain: malformed mesh")

// Attribute is one entry of the per-vertex layout shared with the renderer.
type Attribute struct {
	Name     string
	Location uint32
	Size     int32
	Optional bool
}

var (
	AttribPosition  = Attribute{Name: "position", Location: 0, Size: 3}
	AttribNormal    = Attribute{Name: "normal", Location: 1, Size: 3}
	AttribDiffuse   = Attribute{Name: "diffuse", Location: 2, Size: 3}
	AttribAmbient   = Attribute{Name: "ambient", Location: 3, Size: 3}
	AttribSpecular  = Attribute{Name: "specular", Location: 4, Size: 3}
	AttribShininess = Attribute{Name: "shininess", Location: 5, Size: 1}
	AttribTexCoord  = Attribute{Name: "uv", Location: 6, Size: 2, Optional: true}
)

// VertexSchema is the fixed attribute order; shaders bind these locations.
var VertexSchema = []Attribute{
	AttribPosition,
	AttribNormal,
	AttribDiffuse,
	AttribAmbient,
	AttribSpecular,
	AttribShininess,
	AttribTexCoord,
}

// Mesh is an unindexed triangle list: every consecutive triple of vertices is
// one triangle and all attribute slices run in parallel.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Diffuse   []mgl32.Vec3
	Ambient   []mgl32.Vec3
	Specular  []mgl32.Vec3
	Shininess []float32
	TexCoords []mgl32.Vec2 // empty or one per vertex

	positionsDirty bool
}

func newMesh(vertices int) *Mesh {
	return &Mesh{
		Positions: make([]mgl32.Vec3, vertices),
		Normals:   make([]mgl32.Vec3, vertices),
		Diffuse:   make([]mgl32.Vec3, vertices),
		Ambient:   make([]mgl32.Vec3, vertices),
		Specular:  make([]mgl32.Vec3, vertices),
		Shininess: make([]float32, vertices),
		TexCoords: make([]mgl32.Vec2, vertices),
	}
}

func (m *Mesh) Len() int {
	return len(m.Positions)
}

func (m *Mesh) Triangles() int {
	return len(m.Positions) / 3
}

func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if n%3 != 0 {
		return fmt.Errorf("%d positions is not a whole number of triangles: %w", n, ErrMalformedMesh)
	}
	lengths := map[string]int{
		AttribNormal.Name:    len(m.Normals),
		AttribDiffuse.Name:   len(m.Diffuse),
		AttribAmbient.Name:   len(m.Ambient),
		AttribSpecular.Name:  len(m.Specular),
		AttribShininess.Name: len(m.Shininess),
	}
	for name, l := range lengths {
		if l != n {
			return fmt.Errorf("%s has %d entries, want %d: %w", name, l, n, ErrMalformedMesh)
		}
	}
	if l := len(m.TexCoords); l != 0 && l != n {
		return fmt.Errorf("uv has %d entries, want 0 or %d: %w", l, n, ErrMalformedMesh)
	}
	return nil
}

// AttributeData flattens one attribute into the float layout a vertex buffer
// expects. It returns nil for an optional attribute the mesh doesn't carry.
func (m *Mesh) AttributeData(a Attribute) []float32 {
	switch a.Location {
	case AttribPosition.Location:
		return flatten3(m.Positions)
	case AttribNormal.Location:
		return flatten3(m.Normals)
	case AttribDiffuse.Location:
		return flatten3(m.Diffuse)
	case AttribAmbient.Location:
		return flatten3(m.Ambient)
	case AttribSpecular.Location:
		return flatten3(m.Specular)
	case AttribShininess.Location:
		out := make([]float32, len(m.Shininess))
		copy(out, m.Shininess)
		return out
	case AttribTexCoord.Location:
		if len(m.TexCoords) == 0 {
			return nil
		}
		out := make([]float32, 0, len(m.TexCoords)*2)
		for _, uv := range m.TexCoords {
			out = append(out, uv[0], uv[1])
		}
		return out
	}
	return nil
}

func flatten3(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// PositionsDirty reports whether positions changed since the renderer last
// uploaded them.
func (m *Mesh) PositionsDirty() bool {
	return m.positionsDirty
}

func (m *Mesh) ClearPositionsDirty() {
	m.positionsDirty = false
}

func (m *Mesh) setVertex(k int, c corner, normal mgl32.Vec3, b Biome) {
	m.Positions[k] = c.position
	m.Normals[k] = normal
	m.Diffuse[k] = b.Material.Diffuse
	m.Ambient[k] = b.Material.Ambient
	m.Specular[k] = b.Material.Specular
	m.Shininess[k] = b.Material.Shininess
	m.TexCoords[k] = c.uv
}
