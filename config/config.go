package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"SpacecraftGolang/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrUnknownProvider = errors.New("config: unknown noise provider")

var (
	Vsync        = true
	WindowWidth  = 1600
	WindowHeight = 900

	Seed          int64 = 12
	NoiseProvider       = "simplex" // "simplex" or "perlin"
	Workers             = 4
	TexturePath         = "" // optional detail texture for the land layer

	MouseSensitivity = 0.3
)

// Land layer
var (
	LandResolution       = 100
	LandExtent           = 200.0
	LandSampleSize       = 4.0
	LandHeightMultiplier = 20.0
)

// Water layer, centred on the land and lifted to WaterLevel
var (
	WaterResolution       = 60
	WaterHeightMultiplier = 0.4
	WaterLevel            = 1.0
	WaterSampleSize       = 4.0
	WaterBreathAmplitude  = 0.15
	WaterBreathPeriod     = 4.0
)

// RegisterFlags binds the package vars to fs. Call before fs.Parse.
func RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&Vsync, "vsync", Vsync, "sync buffer swaps to the display refresh")
	fs.IntVar(&WindowWidth, "width", WindowWidth, "window width in pixels")
	fs.IntVar(&WindowHeight, "height", WindowHeight, "window height in pixels")
	fs.Int64Var(&Seed, "seed", Seed, "world seed")
	fs.StringVar(&NoiseProvider, "noise", NoiseProvider, "noise provider: simplex or perlin")
	fs.IntVar(&Workers, "workers", Workers, "goroutines used for mesh generation")
	fs.StringVar(&TexturePath, "texture", TexturePath, "optional detail texture for the land")
	fs.Float64Var(&MouseSensitivity, "sensitivity", MouseSensitivity, "mouse look degrees per pixel")

	fs.IntVar(&LandResolution, "land-res", LandResolution, "land grid cells per side")
	fs.Float64Var(&LandExtent, "land-extent", LandExtent, "land side length in world units")
	fs.Float64Var(&LandSampleSize, "land-sample", LandSampleSize, "noise-space size sampled by the land")
	fs.Float64Var(&LandHeightMultiplier, "land-height", LandHeightMultiplier, "land height multiplier")

	fs.IntVar(&WaterResolution, "water-res", WaterResolution, "water grid cells per side")
	fs.Float64Var(&WaterHeightMultiplier, "water-height", WaterHeightMultiplier, "water wave height")
	fs.Float64Var(&WaterLevel, "water-level", WaterLevel, "water plane height")
	fs.Float64Var(&WaterSampleSize, "water-sample", WaterSampleSize, "noise-space size sampled by the water")
	fs.Float64Var(&WaterBreathAmplitude, "water-breath", WaterBreathAmplitude, "water rise and fall amplitude, 0 to disable")
	fs.Float64Var(&WaterBreathPeriod, "water-period", WaterBreathPeriod, "seconds per water rise and fall, 0 to disable")
}

func LandTerrain() terrain.Config {
	return terrain.Config{
		Resolution:       LandResolution,
		Extent:           float32(LandExtent),
		PerlinSampleSize: float32(LandSampleSize),
		HeightMultiplier: float32(LandHeightMultiplier),
	}
}

// WaterTerrain covers the same square as the land.
func WaterTerrain() terrain.Config {
	return terrain.Config{
		Resolution:       WaterResolution,
		Extent:           float32(LandExtent),
		PerlinSampleSize: float32(WaterSampleSize),
		HeightMultiplier: float32(WaterHeightMultiplier),
		IsWater:          true,
		Origin:           mgl32.Vec3{0, float32(WaterLevel), 0},
	}
}

// NewSource builds the named noise provider.
func NewSource(name string, seed int64) (terrain.Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "simplex", "opensimplex":
		return terrain.NewSimplexSource(seed), nil
	case "perlin":
		return terrain.NewPerlinSource(seed), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownProvider)
}
