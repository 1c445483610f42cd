package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wec-replay/internal/engine/capture"
	"github.com/Faultbox/wec-replay/internal/engine/ui2d"
	"github.com/Faultbox/wec-replay/internal/engine/window"
)

// GLDisplay presents draw lists through the batched GL renderer into an
// SDL window.
type GLDisplay struct {
	window   *window.Window
	renderer *ui2d.Renderer
	shots    *capture.Screenshots

	// last is the most recently presented list, redrawn for screenshots.
	last *ui2d.DrawList
}

// NewGLDisplay binds a renderer to its window. The GL context must be
// current.
func NewGLDisplay(win *window.Window, renderer *ui2d.Renderer, shots *capture.Screenshots) *GLDisplay {
	return &GLDisplay{window: win, renderer: renderer, shots: shots}
}

// MeasureText measures with the renderer's font.
func (d *GLDisplay) MeasureText(text string, scale float32) (float32, float32) {
	return d.renderer.MeasureText(text, scale)
}

// GlyphHeight returns the font's cell height.
func (d *GLDisplay) GlyphHeight() int {
	_, h := d.renderer.Font().GlyphSize()
	return h
}

// SetSize resizes the window.
func (d *GLDisplay) SetSize(width, height int) {
	d.window.SetSize(width, height)
}

// Viewport updates the GL viewport and the renderer projection.
func (d *GLDisplay) Viewport(width, height int) {
	d.window.Resized()
	d.renderer.Resize(width, height)
}

// Present renders the list and swaps buffers.
func (d *GLDisplay) Present(list *ui2d.DrawList) {
	d.renderer.Render(list)
	d.window.SwapBuffers()
	d.last = list
}

// Screenshot redraws the last frame into the back buffer and saves it.
func (d *GLDisplay) Screenshot() (string, error) {
	if d.last != nil {
		d.renderer.Render(d.last)
	}

	w, h := d.window.DrawableSize()
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	return d.shots.SavePixels(pixels, w, h)
}
