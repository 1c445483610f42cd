package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Scene and control palette.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	ColorBackground  = ColorWhite
	ColorSea         = RGB(0, 105, 148)
	ColorBuoy        = RGB(219, 181, 12)
	ColorPiston      = RGB(0, 154, 23)
	ColorWaterLine   = ColorBlack
	ColorDatumLine   = RGB(200, 0, 0)
	ColorButton      = RGB(150, 150, 150)
	ColorText        = ColorBlack
	ColorButtonLabel = ColorBlack
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Darken returns a darker version of the color.
func (c Color) Darken(factor float32) Color {
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

// Brighten multiplies each channel by 1+factor, saturating at 1.
func (c Color) Brighten(factor float32) Color {
	return Color{
		R: min(c.R*(1+factor), 1),
		G: min(c.G*(1+factor), 1),
		B: min(c.B*(1+factor), 1),
		A: c.A,
	}
}
