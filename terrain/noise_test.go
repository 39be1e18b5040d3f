package terrain

import (
	"math"
	"testing"
)

func TestNoiseFieldConstantSource(t *testing.T) {
	field := NewNoiseField(constSource(0.5), ModeTerrain)
	s := field.Sample(3, 4)

	if s.Raw != 0.875 {
		t.Errorf("raw = %v, want 0.875", s.Raw)
	}
	if s.Elevation != 0.669921875 {
		t.Errorf("elevation = %v, want 0.669921875", s.Elevation)
	}
	if got := Classify(s.Raw, false); got != Desert {
		t.Errorf("biome = %s, want desert", got.Name)
	}
}

func TestNoiseFieldTerrainOctaves(t *testing.T) {
	src := &recordingSource{}
	NewNoiseField(src, ModeTerrain).Sample(1.5, -2)

	want := [][3]float64{{1.5, 0, -2}, {3, 0, -4}, {6, 0, -8}}
	if len(src.calls) != len(want) {
		t.Fatalf("source called %d times, want %d", len(src.calls), len(want))
	}
	for i := range want {
		if src.calls[i] != want[i] {
			t.Errorf("octave %d sampled at %v, want %v", i, src.calls[i], want[i])
		}
	}
}

func TestNoiseFieldWaterMode(t *testing.T) {
	src := &recordingSource{}
	NewNoiseField(src, ModeWater).Sample(0.5, 2)

	if len(src.calls) != 1 {
		t.Fatalf("water mode sampled %d octaves, want 1", len(src.calls))
	}
	if want := [3]float64{3, 0, 12}; src.calls[0] != want {
		t.Errorf("water octave sampled at %v, want %v", src.calls[0], want)
	}

	s := NewNoiseField(constSource(0.5), ModeWater).Sample(1, 1)
	if s.Raw != 0.5 || s.Elevation != 0.5 {
		t.Errorf("water sample = %+v, want unshaped 0.5", s)
	}
}

func TestShapePreservesSign(t *testing.T) {
	field := NewNoiseField(constSource(-0.4), ModeTerrain)
	s := field.Sample(0, 0)
	if s.Raw >= 0 || s.Elevation >= 0 {
		t.Errorf("negative raw should stay negative after shaping: %+v", s)
	}
	want := s.Raw * s.Raw * s.Raw
	if s.Elevation != want {
		t.Errorf("elevation = %v, want raw^3 = %v", s.Elevation, want)
	}
}

func TestSourcesDeterministic(t *testing.T) {
	points := [][2]float64{{0.3, 0.7}, {1.25, -3.5}, {10.1, 4.4}, {-7.9, 2.2}}

	sources := map[string][2]Source{
		"simplex": {NewSimplexSource(42), NewSimplexSource(42)},
		"perlin":  {NewPerlinSource(42), NewPerlinSource(42)},
	}
	for name, pair := range sources {
		a := NewNoiseField(pair[0], ModeTerrain)
		b := NewNoiseField(pair[1], ModeTerrain)
		for _, p := range points {
			sa, sb := a.Sample(p[0], p[1]), b.Sample(p[0], p[1])
			if sa != sb {
				t.Errorf("%s: same seed gave %+v and %+v at %v", name, sa, sb, p)
			}
			if math.IsNaN(sa.Raw) {
				t.Errorf("%s: NaN at %v", name, p)
			}
		}
	}
}

func TestSourcesSeedMatters(t *testing.T) {
	points := [][2]float64{{0.3, 0.7}, {1.25, -3.5}, {10.1, 4.4}, {-7.9, 2.2}, {5.55, 5.05}}

	pairs := map[string][2]Source{
		"simplex": {NewSimplexSource(1), NewSimplexSource(2)},
		"perlin":  {NewPerlinSource(1), NewPerlinSource(2)},
	}
	for name, pair := range pairs {
		differs := false
		for _, p := range points {
			if pair[0].Eval3(p[0], 0, p[1]) != pair[1].Eval3(p[0], 0, p[1]) {
				differs = true
				break
			}
		}
		if !differs {
			t.Errorf("%s: seeds 1 and 2 produced identical noise", name)
		}
	}
}

func TestConfigMode(t *testing.T) {
	if m := (Config{}).Mode(); m != ModeTerrain {
		t.Errorf("land config mode = %s", m)
	}
	if m := (Config{IsWater: true}).Mode(); m != ModeWater {
		t.Errorf("water config mode = %s", m)
	}
}
