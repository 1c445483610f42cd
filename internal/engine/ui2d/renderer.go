// Package ui2d provides 2D primitive rendering with OpenGL: filled rects,
// stroked lines, filled circles and bitmap text, submitted as a draw list.
package ui2d

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wec-replay/internal/engine/shader"
	vec "github.com/Faultbox/wec-replay/pkg/math"
)

const (
	solidStride = 7 // pos3 + color4
	textStride  = 9 // pos3 + uv2 + color4

	minCircleSegments = 16
	maxCircleSegments = 256
)

// Renderer handles 2D rendering with OpenGL.
type Renderer struct {
	screenWidth  int
	screenHeight int

	// Shader program for solid color triangles
	solidShader uint32

	// Shader program for textured quads
	textShader uint32

	solidVAO uint32
	solidVBO uint32
	textVAO  uint32
	textVBO  uint32

	// Pending vertices. Only one of the two is non-empty at a time so that
	// submission order is preserved.
	solidVertices []float32
	textVertices  []float32

	font *Font
}

// New creates a new 2D renderer. Requires a current GL context.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 4096),
		textVertices:  make([]float32, 0, 4096),
	}

	var err error
	r.solidShader, err = r.createSolidShader()
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}

	r.textShader, err = r.createTextShader()
	if err != nil {
		return nil, fmt.Errorf("create text shader: %w", err)
	}

	r.createSolidBuffers()
	r.createTextBuffers()

	r.font = NewFont()
	r.font.Upload()

	return r, nil
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// Font returns the text font.
func (r *Renderer) Font() *Font {
	return r.font
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(text string, scale float32) (float32, float32) {
	if r.font == nil {
		return 0, 0
	}
	return r.font.MeasureText(text, scale)
}

// Render executes a draw list in order.
func (r *Renderer) Render(list *DrawList) {
	r.solidVertices = r.solidVertices[:0]
	r.textVertices = r.textVertices[:0]

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	for _, cmd := range list.Commands {
		switch cmd.Kind {
		case CmdClear:
			r.flush()
			gl.ClearColor(cmd.Color.R, cmd.Color.G, cmd.Color.B, cmd.Color.A)
			gl.Clear(gl.COLOR_BUFFER_BIT)
		case CmdRect:
			r.flushText()
			r.addQuad(cmd.X0, cmd.Y0, cmd.X1, cmd.Y1, cmd.Color)
		case CmdLine:
			r.flushText()
			r.addLine(cmd.X0, cmd.Y0, cmd.X1, cmd.Y1, cmd.Thickness, cmd.Color)
		case CmdCircle:
			r.flushText()
			r.addCircle(cmd.X0, cmd.Y0, cmd.Radius, cmd.Color)
		case CmdText:
			r.flushSolid()
			r.addText(cmd.X0, cmd.Y0, cmd.Text, cmd.Scale, cmd.Color)
		}
	}
	r.flush()

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
	}
	if r.solidVAO != 0 {
		gl.DeleteVertexArrays(1, &r.solidVAO)
	}
	if r.solidVBO != 0 {
		gl.DeleteBuffers(1, &r.solidVBO)
	}
	if r.textVAO != 0 {
		gl.DeleteVertexArrays(1, &r.textVAO)
	}
	if r.textVBO != 0 {
		gl.DeleteBuffers(1, &r.textVBO)
	}
	if r.solidShader != 0 {
		gl.DeleteProgram(r.solidShader)
	}
	if r.textShader != 0 {
		gl.DeleteProgram(r.textShader)
	}
}

func (r *Renderer) flush() {
	r.flushSolid()
	r.flushText()
}

func (r *Renderer) flushSolid() {
	if len(r.solidVertices) == 0 {
		return
	}
	proj := r.orthoMatrix(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	gl.UseProgram(r.solidShader)
	projLoc := shader.Uniform(r.solidShader, "uProjection")
	gl.UniformMatrix4fv(projLoc, 1, false, &proj[0])

	gl.BindVertexArray(r.solidVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.solidVertices)*4, unsafe.Pointer(&r.solidVertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/solidStride))

	r.solidVertices = r.solidVertices[:0]
}

func (r *Renderer) flushText() {
	if len(r.textVertices) == 0 || r.font == nil {
		return
	}
	proj := r.orthoMatrix(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	gl.UseProgram(r.textShader)
	projLoc := shader.Uniform(r.textShader, "uProjection")
	gl.UniformMatrix4fv(projLoc, 1, false, &proj[0])

	texLoc := shader.Uniform(r.textShader, "uTexture")
	gl.Uniform1i(texLoc, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())

	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textVertices)*4, unsafe.Pointer(&r.textVertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textVertices)/textStride))

	r.textVertices = r.textVertices[:0]
}

// addTriangle adds one solid color triangle.
func (r *Renderer) addTriangle(x0, y0, x1, y1, x2, y2 float32, c Color) {
	r.solidVertices = append(r.solidVertices,
		x0, y0, 0, c.R, c.G, c.B, c.A,
		x1, y1, 0, c.R, c.G, c.B, c.A,
		x2, y2, 0, c.R, c.G, c.B, c.A,
	)
}

// addQuad adds a solid color axis-aligned quad.
func (r *Renderer) addQuad(x, y, w, h float32, c Color) {
	r.addTriangle(x, y, x+w, y, x+w, y+h, c)
	r.addTriangle(x, y, x+w, y+h, x, y+h, c)
}

// addLine adds a segment as a quad extruded by half the thickness on each
// side.
func (r *Renderer) addLine(x0, y0, x1, y1, thickness float32, c Color) {
	if thickness <= 0 {
		return
	}
	from := vec.Vec2{X: float64(x0), Y: float64(y0)}
	to := vec.Vec2{X: float64(x1), Y: float64(y1)}
	n := to.Sub(from).Normalize().Perp().Scale(float64(thickness) / 2)
	if n == (vec.Vec2{}) {
		return
	}

	a, b := from.Add(n), from.Sub(n)
	d, e := to.Add(n), to.Sub(n)
	r.addTriangle(float32(a.X), float32(a.Y), float32(d.X), float32(d.Y), float32(e.X), float32(e.Y), c)
	r.addTriangle(float32(a.X), float32(a.Y), float32(e.X), float32(e.Y), float32(b.X), float32(b.Y), c)
}

// addCircle adds a filled circle as a triangle fan.
func (r *Renderer) addCircle(cx, cy, radius float32, c Color) {
	if radius <= 0 {
		return
	}
	segments := circleSegments(radius)
	step := 2 * math.Pi / float64(segments)
	px, py := cx+radius, cy
	for i := 1; i <= segments; i++ {
		a := step * float64(i)
		nx := cx + radius*float32(math.Cos(a))
		ny := cy + radius*float32(math.Sin(a))
		r.addTriangle(cx, cy, px, py, nx, ny, c)
		px, py = nx, ny
	}
}

func circleSegments(radius float32) int {
	n := int(math.Ceil(2 * math.Pi * float64(radius) / 4))
	return max(minCircleSegments, min(n, maxCircleSegments))
}

// addTexturedQuad adds a textured quad to the text vertex buffer.
func (r *Renderer) addTexturedQuad(x, y, w, h float32, u0, v0, u1, v1 float32, c Color) {
	r.textVertices = append(r.textVertices,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, 0, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
	)
	r.textVertices = append(r.textVertices,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, 0, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// addText lays out glyph quads starting at the top-left corner x, y.
func (r *Renderer) addText(x, y float32, text string, scale float32, color Color) {
	if r.font == nil {
		return
	}

	gw, gh := r.font.GlyphSize()
	charW := float32(gw) * scale
	charH := float32(gh) * scale

	curX := x
	for _, char := range text {
		if char == '\n' {
			curX = x
			y += charH
			continue
		}

		u0, v0, u1, v1 := r.font.GetGlyphUV(char)
		r.addTexturedQuad(curX, y, charW, charH, u0, v0, u1, v1, color)
		curX += charW
	}
}

// orthoMatrix creates an orthographic projection matrix.
func (r *Renderer) orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

// createSolidShader creates the shader for solid color triangles.
func (r *Renderer) createSolidShader() (uint32, error) {
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec4 aColor;

		uniform mat4 uProjection;

		out vec4 vColor;

		void main() {
			gl_Position = uProjection * vec4(aPos, 1.0);
			vColor = aColor;
		}
	`

	fragmentShaderSource := `
		#version 410 core

		in vec4 vColor;
		out vec4 FragColor;

		void main() {
			FragColor = vColor;
		}
	`

	return shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
}

// createTextShader creates the shader for textured glyph quads.
func (r *Renderer) createTextShader() (uint32, error) {
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec2 aTexCoord;
		layout (location = 2) in vec4 aColor;

		uniform mat4 uProjection;

		out vec2 vTexCoord;
		out vec4 vColor;

		void main() {
			gl_Position = uProjection * vec4(aPos, 1.0);
			vTexCoord = aTexCoord;
			vColor = aColor;
		}
	`

	fragmentShaderSource := `
		#version 410 core

		uniform sampler2D uTexture;

		in vec2 vTexCoord;
		in vec4 vColor;
		out vec4 FragColor;

		void main() {
			float alpha = texture(uTexture, vTexCoord).a;
			FragColor = vec4(vColor.rgb, vColor.a * alpha);
		}
	`

	return shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
}

// createSolidBuffers creates VAO/VBO for solid color rendering.
func (r *Renderer) createSolidBuffers() {
	gl.GenVertexArrays(1, &r.solidVAO)
	gl.BindVertexArray(r.solidVAO)

	gl.GenBuffers(1, &r.solidVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)

	stride := int32(solidStride * 4)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// createTextBuffers creates VAO/VBO for textured glyph rendering.
func (r *Renderer) createTextBuffers() {
	gl.GenVertexArrays(1, &r.textVAO)
	gl.BindVertexArray(r.textVAO)

	gl.GenBuffers(1, &r.textVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	stride := int32(textStride * 4)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}
