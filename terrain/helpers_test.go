package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// constField returns the same sample everywhere.
type constField struct {
	s HeightSample
}

func (f constField) Sample(x, z float64) HeightSample {
	return f.s
}

// planeField is a tilted plane in noise space.
type planeField struct {
	dx, dz float64
}

func (f planeField) Sample(x, z float64) HeightSample {
	e := f.dx*x + f.dz*z
	return HeightSample{Raw: e, Elevation: e}
}

type recordingField struct {
	calls []mgl32.Vec2
}

func (f *recordingField) Sample(x, z float64) HeightSample {
	f.calls = append(f.calls, mgl32.Vec2{float32(x), float32(z)})
	return HeightSample{}
}

type constSource float64

func (c constSource) Eval3(x, y, z float64) float64 {
	return float64(c)
}

type recordingSource struct {
	calls [][3]float64
}

func (s *recordingSource) Eval3(x, y, z float64) float64 {
	s.calls = append(s.calls, [3]float64{x, y, z})
	return 0
}

func approxEqual(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) < float64(epsilon)
}

func approxVec(a, b mgl32.Vec3, epsilon float32) bool {
	return approxEqual(a[0], b[0], epsilon) && approxEqual(a[1], b[1], epsilon) && approxEqual(a[2], b[2], epsilon)
}

func landConfig(resolution int) Config {
	return Config{
		Resolution:       resolution,
		Extent:           50,
		PerlinSampleSize: 3,
		HeightMultiplier: 5,
	}
}
