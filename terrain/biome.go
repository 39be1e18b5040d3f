package terrain

import "github.com/go-gl/mathgl/mgl32"

// Material is the per-vertex lighting data the renderer consumes.
type Material struct {
	Diffuse   mgl32.Vec3
	Ambient   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

type Biome struct {
	Name     string
	Material Material
}

func newBiome(name string, color mgl32.Vec3, specular float32, shininess float32) Biome {
	return Biome{
		Name: name,
		Material: Material{
			Diffuse:   color,
			Ambient:   color.Mul(0.3),
			Specular:  mgl32.Vec3{specular, specular, specular},
			Shininess: shininess,
		},
	}
}

var (
	Water    = newBiome("water", mgl32.Vec3{0.2, 0.6, 1.0}.Mul(0.5), 0.6, 64)
	Beach    = newBiome("beach", mgl32.Vec3{1.0, 0.8, 0.4}.Mul(0.5), 0.1, 8)
	Forest   = newBiome("forest", mgl32.Vec3{0.0, 0.2, 0.0}.Mul(0.5), 0.05, 4)
	Jungle   = newBiome("jungle", mgl32.Vec3{0.2, 0.8, 0.2}.Mul(0.5), 0.05, 4)
	Savannah = newBiome("savannah", mgl32.Vec3{1.0, 0.8, 0.0}.Mul(0.5), 0.1, 8)
	Desert   = newBiome("desert", mgl32.Vec3{1.0, 0.4, 0.0}.Mul(0.5), 0.1, 8)
	Snow     = newBiome("snow", mgl32.Vec3{1.0, 1.0, 0.4}, 0.4, 32)
)

type biomeThreshold struct {
	Below float64
	Biome Biome
}

// biomes is checked in order; the first entry whose Below is strictly greater
// than the elevation wins. Anything past the last entry (NaN included) is Snow.
var biomes = []biomeThreshold{
	{0.1, Water},
	{0.2, Beach},
	{0.3, Forest},
	{0.5, Jungle},
	{0.7, Savannah},
	{0.9, Desert},
}

// Classify expects the raw octave sum, not the cubed elevation.
func Classify(e float64, isWater bool) Biome {
	if isWater {
		return Water
	}
	for _, t := range biomes {
		if e < t.Below {
			return t.Biome
		}
	}
	return Snow
}
