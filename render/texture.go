package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"neilpa.me/go-stbi"
)

var ErrUnknownTexture = errors.New("render: unknown texture")

// TextureRegistry owns GL texture objects by name. It is passed to the code
// that draws with them rather than kept as package state.
type TextureRegistry struct {
	handles map[string]uint32
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{handles: make(map[string]uint32)}
}

// Load decodes the image at path and uploads it as name. Loading a name twice
// returns the existing handle.
func (r *TextureRegistry) Load(name, path string) (uint32, error) {
	if id, ok := r.handles[name]; ok {
		return id, nil
	}

	rgba, err := stbi.Load(path)
	if err != nil {
		return 0, fmt.Errorf("load texture %s: %w", path, err)
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(rgba.Bounds().Dx()), int32(rgba.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	var maxAnisotropy int32
	gl.GetIntegerv(gl.MAX_TEXTURE_MAX_ANISOTROPY, &maxAnisotropy)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, maxAnisotropy)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.handles[name] = textureID
	return textureID, nil
}

func (r *TextureRegistry) Handle(name string) (uint32, error) {
	id, ok := r.handles[name]
	if !ok {
		return 0, fmt.Errorf("%s: %w", name, ErrUnknownTexture)
	}
	return id, nil
}

// Bind makes name current on texture unit 0.
func (r *TextureRegistry) Bind(name string) error {
	id, err := r.Handle(name)
	if err != nil {
		return err
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
	return nil
}

func (r *TextureRegistry) Delete() {
	for name, id := range r.handles {
		gl.DeleteTextures(1, &id)
		delete(r.handles, name)
	}
}
