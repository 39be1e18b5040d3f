package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// HeightAt evaluates the field analytically at p's (x, z). At grid corners it
// matches the generated mesh; between corners it returns the noise itself, not
// the rendered triangle, so tight collision tolerances can disagree with what
// is on screen. Points outside the extent are extrapolated.
func HeightAt(field Field, p mgl32.Vec3, cfg Config) (float32, error) {
	if err := cfg.validateFor(field); err != nil {
		return 0, err
	}
	return height(cfg, sampleAt(field, p, cfg)), nil
}

func sampleAt(field Field, p mgl32.Vec3, cfg Config) HeightSample {
	uv := cfg.sampleCoord(p.X(), p.Z())
	return field.Sample(uv.X(), uv.Y())
}

func height(cfg Config, s HeightSample) float32 {
	return cfg.HeightMultiplier*float32(s.Elevation) + cfg.Origin.Y()
}

// Terrain ties a generated mesh to the field and config that produced it, so
// queries can never drift onto a different seed.
type Terrain struct {
	Field  Field
	Config Config
	Mesh   *Mesh
}

func New(field Field, cfg Config) (*Terrain, error) {
	m, err := Generate(field, cfg)
	if err != nil {
		return nil, err
	}
	return &Terrain{Field: field, Config: cfg, Mesh: m}, nil
}

// NewParallel is New with GenerateParallel.
func NewParallel(field Field, cfg Config, workers int) (*Terrain, error) {
	m, err := GenerateParallel(field, cfg, workers)
	if err != nil {
		return nil, err
	}
	return &Terrain{Field: field, Config: cfg, Mesh: m}, nil
}

func (t *Terrain) HeightAt(p mgl32.Vec3) float32 {
	return height(t.Config, sampleAt(t.Field, p, t.Config))
}

// SurfaceAt returns the height and the biome under p.
func (t *Terrain) SurfaceAt(p mgl32.Vec3) (float32, Biome) {
	s := sampleAt(t.Field, p, t.Config)
	return height(t.Config, s), Classify(s.Raw, t.Config.IsWater)
}

// HighestSurface is SurfaceAt of whichever layer is topmost at p. With no
// layers it returns -Inf and the zero Biome.
func HighestSurface(p mgl32.Vec3, layers ...*Terrain) (float32, Biome) {
	height, biome := float32(math.Inf(-1)), Biome{}
	for _, t := range layers {
		if h, b := t.SurfaceAt(p); h > height {
			height, biome = h, b
		}
	}
	return height, biome
}

// Contains reports whether p lies over the generated square.
func (t *Terrain) Contains(p mgl32.Vec3) bool {
	half := t.Config.Extent / 2
	if half < 0 {
		half = -half
	}
	dx := p.X() - t.Config.Origin.X()
	dz := p.Z() - t.Config.Origin.Z()
	return dx >= -half && dx <= half && dz >= -half && dz <= half
}
