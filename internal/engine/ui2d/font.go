package ui2d

import (
	"image"
	"image/draw"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph  = ' '
	lastGlyph   = '~'
	atlasCols   = 16
	fallbackRun = '?'
)

// Font is a monospaced bitmap font packed into a single texture atlas.
type Font struct {
	face    font.Face
	cellW   int
	cellH   int
	ascent  int
	atlas   *image.NRGBA
	texture uint32
}

// NewFont rasterizes the 7x13 fixed face into an RGBA atlas. The atlas is
// uploaded to the GPU separately by Upload.
func NewFont() *Font {
	face := basicfont.Face7x13
	m := face.Metrics()

	f := &Font{
		face:   face,
		cellW:  face.Advance,
		cellH:  m.Height.Ceil(),
		ascent: m.Ascent.Ceil(),
	}

	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasCols - 1) / atlasCols
	f.atlas = image.NewNRGBA(image.Rect(0, 0, atlasCols*f.cellW, rows*f.cellH))
	draw.Draw(f.atlas, f.atlas.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: f.atlas, Src: image.White, Face: face}
	for r := firstGlyph; r <= lastGlyph; r++ {
		col, row := f.cell(r)
		d.Dot = fixed.P(col*f.cellW, row*f.cellH+f.ascent)
		d.DrawString(string(r))
	}

	return f
}

// Upload creates the GL texture. Requires a current GL context.
func (f *Font) Upload() {
	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	b := f.atlas.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(f.atlas.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Close releases the GL texture, if one was uploaded.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}

// TextureID returns the GL texture name.
func (f *Font) TextureID() uint32 { return f.texture }

// Atlas returns the rasterized glyph sheet.
func (f *Font) Atlas() *image.NRGBA { return f.atlas }

// GlyphSize returns the cell size of one glyph in pixels.
func (f *Font) GlyphSize() (int, int) { return f.cellW, f.cellH }

// GetGlyphUV returns the atlas texture coordinates of a rune. Runes outside
// printable ASCII map to '?'.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	col, row := f.cell(r)
	b := f.atlas.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	u0 = float32(col*f.cellW) / w
	v0 = float32(row*f.cellH) / h
	u1 = float32((col+1)*f.cellW) / w
	v1 = float32((row+1)*f.cellH) / h
	return u0, v0, u1, v1
}

// MeasureText returns the width and height of rendered text.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		if w := font.MeasureString(f.face, line).Ceil(); w > widest {
			widest = w
		}
	}
	return float32(widest) * scale, float32(len(lines)*f.cellH) * scale
}

func (f *Font) cell(r rune) (col, row int) {
	if r < firstGlyph || r > lastGlyph {
		r = fallbackRun
	}
	i := int(r - firstGlyph)
	return i % atlasCols, i / atlasCols
}
