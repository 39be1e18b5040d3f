package terrain

import "math"

// ApplyVerticalOffset shifts every vertex by dy along Y. Topology, normals and
// materials are untouched; only the position buffer needs re-uploading.
func (m *Mesh) ApplyVerticalOffset(dy float32) {
	if dy == 0 {
		return
	}
	for k := range m.Positions {
		m.Positions[k][1] += dy
	}
	m.positionsDirty = true
}

// BreathingOffset is a sine swell of the given amplitude and period in seconds.
// Feed the difference between two frames to ApplyVerticalOffset.
func BreathingOffset(t float64, amplitude, period float32) float32 {
	if period <= 0 {
		return 0
	}
	return amplitude * float32(math.Sin(2*math.Pi*t/float64(period)))
}
