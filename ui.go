package main

import (
	"fmt"
	"strconv"
	"time"

	"SpacecraftGolang/render"
	"SpacecraftGolang/terrain"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

type hud struct {
	text *render.TextRenderer

	fps      *render.Label
	altitude *render.Label
	ground   *render.Label
	biome    *render.Label
	mode     *render.Label
}

func newHUD() (*hud, error) {
	tr, err := render.NewTextRenderer()
	if err != nil {
		return nil, err
	}
	h := &hud{text: tr}
	h.fps = tr.NewLabel(mgl32.Vec2{10, 10}, 20)
	h.altitude = tr.NewLabel(mgl32.Vec2{10, 34}, 20)
	h.ground = tr.NewLabel(mgl32.Vec2{10, 58}, 20)
	h.biome = tr.NewLabel(mgl32.Vec2{10, 82}, 20)
	h.mode = tr.NewLabel(mgl32.Vec2{10, 106}, 20)
	return h, nil
}

func round(v float32, places int) string {
	return strconv.FormatFloat(mgl64.Round(float64(v), places), 'f', -1, 32)
}

// update refreshes every line from the craft and the surface under it, which
// is whichever layer is higher.
func (h *hud) update(land, water *terrain.Terrain) error {
	height, biome := terrain.HighestSurface(craft.Position, land, water)

	lines := []struct {
		label   *render.Label
		content string
	}{
		{h.fps, fpsString},
		{h.altitude, "Altitude: " + round(craft.Position.Y()-height, 1) + " grounded: " + strconv.FormatBool(craft.Grounded)},
		{h.ground, "Ground: " + round(height, 2)},
		{h.biome, "Biome: " + biome.Name},
		{h.mode, "Mode: " + drawOptions.Mode.String()},
	}
	for _, l := range lines {
		if err := h.text.SetText(l.label, l.content); err != nil {
			return err
		}
	}
	return nil
}

func (h *hud) draw(width, height int) {
	h.text.Draw(width, height, h.fps, h.altitude, h.ground, h.biome, h.mode)
}

func (h *hud) delete() {
	for _, l := range []*render.Label{h.fps, h.altitude, h.ground, h.biome, h.mode} {
		h.text.DeleteLabel(l)
	}
	h.text.Delete()
}

func updateFPS() {
	var currentTime time.Time = time.Now()
	var timeElapsed time.Duration = currentTime.Sub(startTime)

	if timeElapsed >= (100 * time.Millisecond) {
		fps = float64(frameCount) / timeElapsed.Seconds()
		fpsString = fmt.Sprintf("FPS: %s", strconv.FormatFloat(mgl64.Round(fps, 1), 'f', -1, 32))
		frameCount = 0
		startTime = currentTime
	}
}
