package ui

import (
	"github.com/Faultbox/wec-replay/internal/engine/ui2d"
	vec "github.com/Faultbox/wec-replay/pkg/math"
)

// Button labels.
const (
	LabelPlay    = "Play"
	LabelPause   = "Pause"
	LabelStop    = "Stop"
	LabelBigger  = "Bigger"
	LabelSmaller = "Smaller"
	LabelFaster  = "Faster"
	LabelSlower  = "Slower"
)

// labelPadding is added to both label dimensions, relative to label width.
const labelPadding = 0.1

// Actions binds the seven controls to the operations they trigger.
type Actions struct {
	Start   func()
	Pause   func()
	Stop    func()
	Bigger  func()
	Smaller func()
	Faster  func()
	Slower  func()
}

// Style holds layout spacing in pixels. Padding is a fraction added to the
// widest and tallest padded label.
type Style struct {
	EdgeBorder    float64
	ButtonSpacing float64
	ButtonPadding float64
}

// DefaultStyle returns the stock spacing.
func DefaultStyle() Style {
	return Style{
		EdgeBorder:    10,
		ButtonSpacing: 5,
		ButtonPadding: 0.2,
	}
}

// Panel owns the control buttons. Play, Pause and Stop form the left
// cluster; Bigger, Smaller, Faster and Slower the right.
type Panel struct {
	Play    *Button
	Pause   *Button
	Stop    *Button
	Bigger  *Button
	Smaller *Button
	Faster  *Button
	Slower  *Button

	style   Style
	buttons []*Button
}

// NewPanel creates the seven buttons. Call Layout before drawing.
func NewPanel(actions Actions, style Style) *Panel {
	p := &Panel{
		Play:    NewButton(LabelPlay, actions.Start),
		Pause:   NewButton(LabelPause, actions.Pause),
		Stop:    NewButton(LabelStop, actions.Stop),
		Bigger:  NewButton(LabelBigger, actions.Bigger),
		Smaller: NewButton(LabelSmaller, actions.Smaller),
		Faster:  NewButton(LabelFaster, actions.Faster),
		Slower:  NewButton(LabelSlower, actions.Slower),
		style:   style,
	}
	p.buttons = []*Button{p.Play, p.Pause, p.Stop, p.Bigger, p.Smaller, p.Faster, p.Slower}
	return p
}

// Buttons returns all buttons in draw order.
func (p *Panel) Buttons() []*Button {
	return p.buttons
}

// Layout recomputes every button rectangle from the measured labels and
// the window size. Rows are stacked upward from the bottom edge.
func (p *Panel) Layout(measure ui2d.TextMeasurer, textScale float32, width, height float64) {
	size := func(b *Button) vec.Vec2 {
		w, h := measure.MeasureText(b.Label, textScale)
		pad := float64(w) * labelPadding
		return vec.Vec2{X: float64(w) + pad, Y: float64(h) + pad}
	}

	play, pause, stop := size(p.Play), size(p.Pause), size(p.Stop)
	bigger, smaller, faster, slower := size(p.Bigger), size(p.Smaller), size(p.Faster), size(p.Slower)

	k := 1 + p.style.ButtonPadding
	tallestBottom := max(stop.Y, bigger.Y, smaller.Y) * k
	tallestTop := max(play.Y, pause.Y, faster.Y, slower.Y) * k
	leftWidth := max(play.X, pause.X, stop.X) * k
	rightWidth := max(bigger.X, smaller.X, faster.X, slower.X) * k

	e, g := p.style.EdgeBorder, p.style.ButtonSpacing
	bottomY := height - e - tallestBottom/2
	topY := height - e - tallestBottom - g - tallestTop/2
	outerX := width - e - rightWidth/2
	innerX := width - e - rightWidth - g - rightWidth/2

	place(p.Play, e+leftWidth/2, topY, leftWidth, tallestTop)
	place(p.Pause, e+leftWidth+g+leftWidth/2, topY, leftWidth, tallestTop)
	place(p.Stop, e+(2*leftWidth+g)/2, bottomY, 2*leftWidth+g, tallestBottom)

	place(p.Bigger, outerX, bottomY, rightWidth, tallestBottom)
	place(p.Smaller, innerX, bottomY, rightWidth, tallestBottom)
	place(p.Faster, outerX, topY, rightWidth, tallestTop)
	place(p.Slower, innerX, topY, rightWidth, tallestTop)
}

func place(b *Button, cx, cy, w, h float64) {
	b.Center = vec.Vec2{X: cx, Y: cy}
	b.Half = vec.Vec2{X: w / 2, Y: h / 2}
}

// PointerMove forwards a pointer move to every button.
func (p *Panel) PointerMove(x, y float64) {
	for _, b := range p.buttons {
		b.PointerMove(x, y)
	}
}

// PointerDown forwards a primary-button press to every button.
func (p *Panel) PointerDown(x, y float64) {
	for _, b := range p.buttons {
		b.PointerDown(x, y)
	}
}

// PointerUp forwards a release and reports whether any button activated.
func (p *Panel) PointerUp(x, y, speed float64) bool {
	activated := false
	for _, b := range p.buttons {
		if b.PointerUp(x, y, speed) {
			activated = true
		}
	}
	return activated
}

// PointerCancel forwards a non-primary release to every button.
func (p *Panel) PointerCancel(x, y float64) {
	for _, b := range p.buttons {
		b.PointerCancel(x, y)
	}
}

// Flashing reports whether any button is running its click flash.
func (p *Panel) Flashing() bool {
	for _, b := range p.buttons {
		if b.Flashing {
			return true
		}
	}
	return false
}

// Draw appends all buttons and advances their flash countdowns by a frame.
func (p *Panel) Draw(list *ui2d.DrawList, measure ui2d.TextMeasurer, textScale float32) {
	for _, b := range p.buttons {
		b.Draw(list, measure, textScale)
		b.Tick()
	}
}

