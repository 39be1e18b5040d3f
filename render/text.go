package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	labelWidth  = 512
	labelHeight = 48
)

// Label is one line of screen text with its own texture.
type Label struct {
	Texture  uint32
	Position mgl32.Vec2 // top-left, in pixels
	FontSize float64
	content  string
}

// TextRenderer rasterises labels with freetype and draws them as screen quads.
type TextRenderer struct {
	ctx     *freetype.Context
	dst     *image.RGBA
	program uint32
	vao     uint32
	vbo     uint32
}

// NewTextRenderer uses the embedded Go Regular face.
func NewTextRenderer() (*TextRenderer, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, labelWidth, labelHeight))
	ctx := freetype.NewContext()
	ctx.SetFont(f)
	ctx.SetDst(dst)
	ctx.SetClip(dst.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	program, err := NewProgram(textVertexShader, textFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("text shader: %w", err)
	}

	r := &TextRenderer{ctx: ctx, dst: dst, program: program}
	r.initQuad()
	return r, nil
}

func (r *TextRenderer) initQuad() {
	vertices := []float32{
		0.0, 1.0, 0.0, 0.0, 1.0, // Top-left
		0.0, 0.0, 0.0, 0.0, 0.0, // Bottom-left
		1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-right

		0.0, 1.0, 0.0, 0.0, 1.0, // Top-left
		1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-right
		1.0, 1.0, 0.0, 1.0, 1.0,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, uintptr(3*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *TextRenderer) NewLabel(position mgl32.Vec2, fontSize float64) *Label {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		labelWidth, labelHeight,
		0, gl.RGBA, gl.UNSIGNED_BYTE, nil,
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return &Label{Texture: texture, Position: position, FontSize: fontSize}
}

// SetText redraws the label only when its content changed.
func (r *TextRenderer) SetText(l *Label, content string) error {
	if content == l.content {
		return nil
	}
	l.content = content

	draw.Draw(r.dst, r.dst.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)
	r.ctx.SetFontSize(l.FontSize)
	pt := freetype.Pt(2, 2+int(r.ctx.PointToFixed(l.FontSize)>>6))
	if _, err := r.ctx.DrawString(content, pt); err != nil {
		return fmt.Errorf("draw %q: %w", content, err)
	}

	gl.BindTexture(gl.TEXTURE_2D, l.Texture)
	gl.TexSubImage2D(
		gl.TEXTURE_2D,
		0,    // Mipmap level
		0, 0, // Offset in the texture
		int32(r.dst.Rect.Size().X),
		int32(r.dst.Rect.Size().Y),
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(r.dst.Pix),
	)
	return nil
}

// Draw renders labels over whatever is on screen.
func (r *TextRenderer) Draw(width, height int, labels ...*Label) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.program)
	setMat4(r.program, "projection", mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1))
	gl.Uniform1i(uniform(r.program, "glyphs"), 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.vao)

	for _, l := range labels {
		model := mgl32.Translate3D(l.Position[0], l.Position[1], 0).Mul4(mgl32.Scale3D(labelWidth, labelHeight, 1))
		setMat4(r.program, "model", model)
		gl.BindTexture(gl.TEXTURE_2D, l.Texture)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (r *TextRenderer) DeleteLabel(l *Label) {
	gl.DeleteTextures(1, &l.Texture)
}

func (r *TextRenderer) Delete() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}
