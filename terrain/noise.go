package terrain

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a 3D coherent-noise provider. Terrain only samples the y = 0 slice.
// Implementations must be deterministic per seed and safe for concurrent reads.
type Source interface {
	Eval3(x, y, z float64) float64
}

// SimplexSource is the default provider.
type SimplexSource struct {
	noise opensimplex.Noise
}

func NewSimplexSource(seed int64) *SimplexSource {
	return &SimplexSource{noise: opensimplex.New(seed)}
}

func (s *SimplexSource) Eval3(x, y, z float64) float64 {
	return s.noise.Eval3(x, y, z)
}

// PerlinSource is classic gradient noise. The octave mix lives in NoiseField,
// so the underlying generator is built with a single octave.
type PerlinSource struct {
	noise *perlin.Perlin
}

func NewPerlinSource(seed int64) *PerlinSource {
	return &PerlinSource{noise: perlin.NewPerlin(2, 2, 1, seed)}
}

func (s *PerlinSource) Eval3(x, y, z float64) float64 {
	return s.noise.Noise3D(x, y, z)
}

type Mode int

const (
	ModeTerrain Mode = iota
	ModeWater
)

func (m Mode) String() string {
	if m == ModeWater {
		return "water"
	}
	return "terrain"
}

type octave struct {
	frequency float64
	amplitude float64
}

// Octave mixes are fixed so a seed always produces the same world.
var (
	terrainOctaves = []octave{{1, 1}, {2, 0.5}, {4, 0.25}}
	waterOctaves   = []octave{{6, 1}}
)

// HeightSample is one lookup: Raw is the octave sum, Elevation the shaped value.
// Biomes are classified on Raw, mesh heights come from Elevation.
type HeightSample struct {
	Raw       float64
	Elevation float64
}

// Field is anything that yields a HeightSample for a noise-domain coordinate.
// Mesh generation and height queries must be handed the same Field.
type Field interface {
	Sample(x, z float64) HeightSample
}

// NoiseField layers octaves of a Source. It holds no mutable state.
type NoiseField struct {
	src  Source
	mode Mode
}

func NewNoiseField(src Source, mode Mode) *NoiseField {
	return &NoiseField{src: src, mode: mode}
}

// NewLayerField builds the field whose octave mix cfg selects.
func NewLayerField(src Source, cfg Config) *NoiseField {
	return NewNoiseField(src, cfg.Mode())
}

func (f *NoiseField) Mode() Mode {
	return f.mode
}

func (f *NoiseField) Sample(x, z float64) HeightSample {
	octaves := terrainOctaves
	if f.mode == ModeWater {
		octaves = waterOctaves
	}

	raw := 0.0
	for _, o := range octaves {
		raw += o.amplitude * f.src.Eval3(o.frequency*x, 0, o.frequency*z)
	}

	if f.mode == ModeWater {
		return HeightSample{Raw: raw, Elevation: raw}
	}
	return HeightSample{Raw: raw, Elevation: shape(raw)}
}

// shape cubes the octave sum: flattens the plains, sharpens the peaks, keeps the sign.
func shape(raw float64) float64 {
	return raw * raw * raw
}
