package terrain

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVertexSchemaLocations(t *testing.T) {
	for i, a := range VertexSchema {
		if a.Location != uint32(i) {
			t.Errorf("%s at location %d, want %d", a.Name, a.Location, i)
		}
	}
	if !AttribTexCoord.Optional {
		t.Error("uv should be optional")
	}
}

func TestAttributeData(t *testing.T) {
	m, err := Generate(constField{HeightSample{Raw: 0.95, Elevation: 0.5}}, landConfig(1))
	if err != nil {
		t.Fatal(err)
	}

	pos := m.AttributeData(AttribPosition)
	for k, p := range m.Positions {
		if pos[3*k] != p[0] || pos[3*k+1] != p[1] || pos[3*k+2] != p[2] {
			t.Fatalf("position %d flattened as %v, want %v", k, pos[3*k:3*k+3], p)
		}
	}

	shininess := m.AttributeData(AttribShininess)
	for k, s := range shininess {
		if s != Snow.Material.Shininess {
			t.Errorf("shininess %d = %v, want snow's %v", k, s, Snow.Material.Shininess)
		}
	}
	shininess[0] = -1
	if m.Shininess[0] == -1 {
		t.Error("AttributeData must not alias the mesh")
	}

	m.TexCoords = nil
	if uv := m.AttributeData(AttribTexCoord); uv != nil {
		t.Errorf("mesh without uvs returned %d uv floats", len(uv))
	}
	if err := m.Validate(); err != nil {
		t.Errorf("mesh without uvs should still be valid: %v", err)
	}
}

func TestMeshValidate(t *testing.T) {
	good, err := Generate(constField{}, landConfig(2))
	if err != nil {
		t.Fatal(err)
	}

	cases := map[string]func(m *Mesh){
		"missing normal":   func(m *Mesh) { m.Normals = m.Normals[1:] },
		"extra shininess":  func(m *Mesh) { m.Shininess = append(m.Shininess, 1) },
		"partial triangle": func(m *Mesh) { m.Positions = m.Positions[:m.Len()-1] },
		"short uv":         func(m *Mesh) { m.TexCoords = m.TexCoords[:2] },
		"missing specular": func(m *Mesh) { m.Specular = nil },
	}
	for name, breakIt := range cases {
		m := *good
		m.Positions = append([]mgl32.Vec3(nil), good.Positions...)
		breakIt(&m)
		if err := m.Validate(); !errors.Is(err, ErrMalformedMesh) {
			t.Errorf("%s: Validate() = %v, want ErrMalformedMesh", name, err)
		}
	}
}

func TestApplyVerticalOffset(t *testing.T) {
	field := NewNoiseField(NewSimplexSource(8), ModeWater)
	cfg := landConfig(4)
	cfg.IsWater = true
	m, err := Generate(field, cfg)
	if err != nil {
		t.Fatal(err)
	}
	before, _ := Generate(field, cfg)

	if m.PositionsDirty() {
		t.Fatal("fresh mesh should not be dirty")
	}
	m.ApplyVerticalOffset(0)
	if m.PositionsDirty() {
		t.Error("zero offset should not mark positions dirty")
	}

	m.ApplyVerticalOffset(0.25)
	if !m.PositionsDirty() {
		t.Error("offset should mark positions dirty")
	}
	for k := range m.Positions {
		p, o := m.Positions[k], before.Positions[k]
		if p.X() != o.X() || p.Z() != o.Z() {
			t.Fatalf("vertex %d moved horizontally: %v -> %v", k, o, p)
		}
		if p.Y() != o.Y()+0.25 {
			t.Fatalf("vertex %d: y = %v, want %v", k, p.Y(), o.Y()+0.25)
		}
		if m.Normals[k] != before.Normals[k] || m.Diffuse[k] != before.Diffuse[k] || m.TexCoords[k] != before.TexCoords[k] {
			t.Fatalf("vertex %d: offset touched non-position attributes", k)
		}
	}

	m.ClearPositionsDirty()
	if m.PositionsDirty() {
		t.Error("ClearPositionsDirty left the flag set")
	}
}

func TestBreathingOffset(t *testing.T) {
	if got := BreathingOffset(0, 0.5, 4); got != 0 {
		t.Errorf("offset at t=0 = %v, want 0", got)
	}
	if got := BreathingOffset(1, 0.5, 4); !approxEqual(got, 0.5, 1e-6) {
		t.Errorf("offset at quarter period = %v, want 0.5", got)
	}
	if got := BreathingOffset(3, 0.5, 4); !approxEqual(got, -0.5, 1e-6) {
		t.Errorf("offset at three quarters = %v, want -0.5", got)
	}
	if got := BreathingOffset(10, 0.5, 0); got != 0 {
		t.Errorf("zero period should disable breathing, got %v", got)
	}
}
