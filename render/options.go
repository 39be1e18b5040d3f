package render

type RenderMode int

const (
	ModeFill RenderMode = iota
	ModeWireframe
	ModeHighlight // fill, then wireframe over it
)

func (m RenderMode) String() string {
	switch m {
	case ModeWireframe:
		return "wireframe"
	case ModeHighlight:
		return "highlight"
	}
	return "fill"
}

// Next cycles fill -> wireframe -> highlight -> fill.
func (m RenderMode) Next() RenderMode {
	return (m + 1) % 3
}

// DrawOptions are per-draw debug settings. Terrain data never carries them.
type DrawOptions struct {
	Mode    RenderMode
	Texture uint32 // 0 draws vertex colours only
}
