package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxResolution bounds the grid so a bad flag can't allocate gigabytes of vertices.
const MaxResolution = 1024

var ErrInvalidConfiguration = errors.New("terrain: invalid configuration")

// Config describes one height-field layer. It is a plain value: regenerating
// terrain means building a new Config and calling Generate again.
type Config struct {
	Resolution       int        // grid cells per side
	Extent           float32    // world-space side length
	PerlinSampleSize float32    // side length of the square sampled in noise space
	HeightMultiplier float32    // world Y per unit of shaped elevation
	IsWater          bool       // water layer: single biome, choppy noise
	Origin           mgl32.Vec3 // centre of the square; Y is added to every height
}

func (c Config) Validate() error {
	if c.Resolution <= 0 {
		return fmt.Errorf("resolution %d must be at least 1: %w", c.Resolution, ErrInvalidConfiguration)
	}
	if c.Resolution > MaxResolution {
		return fmt.Errorf("resolution %d exceeds %d: %w", c.Resolution, MaxResolution, ErrInvalidConfiguration)
	}
	e := float64(c.Extent)
	if e == 0 || math.IsNaN(e) || math.IsInf(e, 0) {
		return fmt.Errorf("extent %v must be finite and non-zero: %w", c.Extent, ErrInvalidConfiguration)
	}
	return nil
}

// validateFor is Validate plus: a field that reports its octave mix must
// have been built for this layer's Mode.
func (c Config) validateFor(field Field) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if f, ok := field.(interface{ Mode() Mode }); ok && f.Mode() != c.Mode() {
		return fmt.Errorf("%s field for a %s layer: %w", f.Mode(), c.Mode(), ErrInvalidConfiguration)
	}
	return nil
}

// Mode selects the octave mix a NoiseField uses. Water layers use ModeWater.
func (c Config) Mode() Mode {
	if c.IsWater {
		return ModeWater
	}
	return ModeTerrain
}

func (c Config) cellSize() float32 {
	return c.Extent / float32(c.Resolution)
}

func (c Config) sampleStep() float64 {
	return float64(c.PerlinSampleSize) / float64(c.Resolution)
}

// sampleCoord maps a world (x, z) into the noise domain, the inverse of the
// mapping the tessellator uses for grid corners.
func (c Config) sampleCoord(x, z float32) mgl64.Vec2 {
	extent := float64(c.Extent)
	half := extent / 2
	u := (float64(x-c.Origin.X()) + half) / extent
	v := (float64(z-c.Origin.Z()) + half) / extent
	return mgl64.Vec2{u, v}.Mul(float64(c.PerlinSampleSize))
}
