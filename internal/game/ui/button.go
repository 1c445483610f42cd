// Package ui implements the on-screen control buttons of the replay window:
// pointer interaction, click flash feedback, responsive layout and the
// text readouts drawn over the scene.
package ui

import (
	"github.com/Faultbox/wec-replay/internal/engine/ui2d"
	vec "github.com/Faultbox/wec-replay/pkg/math"
)

// Color adjustments for interactive states.
const (
	hoverDarken     = 0.2
	activeBrighten  = 0.2
	flashSpeedRatio = 0.1
)

// Button is a rectangular control with a centred label.
type Button struct {
	Label   string
	OnClick func()

	// Center and Half are recomputed by Layout on every resize.
	Center vec.Vec2
	Half   vec.Vec2

	Hover    bool
	Pressed  bool
	Flashing bool

	flashRemaining float64
}

// NewButton creates a button with no geometry until the first layout.
func NewButton(label string, onClick func()) *Button {
	return &Button{Label: label, OnClick: onClick}
}

// Contains reports whether the point lies strictly inside the button.
func (b *Button) Contains(x, y float64) bool {
	return b.Center.X-b.Half.X < x && x < b.Center.X+b.Half.X &&
		b.Center.Y-b.Half.Y < y && y < b.Center.Y+b.Half.Y
}

// PointerMove updates the hover flag.
func (b *Button) PointerMove(x, y float64) {
	b.Hover = b.Contains(x, y)
}

// PointerDown arms the button when the press lands inside it.
func (b *Button) PointerDown(x, y float64) {
	b.Pressed = b.Contains(x, y)
}

// PointerUp activates the button if it was pressed and the release is
// inside it. The flash lasts speed/10 frames. It reports whether OnClick ran.
func (b *Button) PointerUp(x, y, speed float64) bool {
	if !b.Contains(x, y) {
		b.Pressed = false
		b.Flashing = false
		return false
	}

	activated := b.Pressed
	if activated {
		b.Flashing = true
		b.flashRemaining = speed * flashSpeedRatio
		if b.OnClick != nil {
			b.OnClick()
		}
	}
	b.Pressed = false
	return activated
}

// PointerCancel handles a release that cannot activate. Outside the rect
// it clears pressed and flashing like PointerUp; inside it leaves the state.
func (b *Button) PointerCancel(x, y float64) {
	if !b.Contains(x, y) {
		b.Pressed = false
		b.Flashing = false
	}
}

// Fill returns the colour for the current state, highest precedence first:
// flashing, pressed, hover, idle.
func (b *Button) Fill(base ui2d.Color) ui2d.Color {
	switch {
	case b.Flashing, b.Pressed:
		return base.Brighten(activeBrighten)
	case b.Hover:
		return base.Darken(hoverDarken)
	default:
		return base
	}
}

// Tick consumes one frame of the flash countdown.
func (b *Button) Tick() {
	if !b.Flashing {
		return
	}
	b.flashRemaining--
	if b.flashRemaining <= 0 {
		b.flashRemaining = 0
		b.Flashing = false
	}
}

// Bounds returns the top-left corner and size of the button.
func (b *Button) Bounds() (x, y, w, h float64) {
	return b.Center.X - b.Half.X, b.Center.Y - b.Half.Y, b.Half.X * 2, b.Half.Y * 2
}

// Draw appends the button body and its centred label.
func (b *Button) Draw(list *ui2d.DrawList, measure ui2d.TextMeasurer, textScale float32) {
	x, y, w, h := b.Bounds()
	list.Rect(float32(x), float32(y), float32(w), float32(h), b.Fill(ui2d.ColorButton))

	tw, th := measure.MeasureText(b.Label, textScale)
	list.Text(
		float32(b.Center.X)-tw/2,
		float32(b.Center.Y)-th/2,
		b.Label, textScale, ui2d.ColorButtonLabel,
	)
}
