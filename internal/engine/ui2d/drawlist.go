package ui2d

// CommandKind identifies a primitive draw call.
type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdRect
	CmdLine
	CmdCircle
	CmdText
)

// Command is one primitive draw call with already-computed coordinates.
//
// Rect uses X0/Y0 as the top-left corner and X1/Y1 as the size. Line runs
// from X0/Y0 to X1/Y1. Circle is centered on X0/Y0. Text starts at X0/Y0.
type Command struct {
	Kind      CommandKind
	X0, Y0    float32
	X1, Y1    float32
	Radius    float32
	Thickness float32
	Text      string
	Scale     float32
	Color     Color
}

// DrawList is the ordered set of commands for one frame.
type DrawList struct {
	Commands []Command
}

// NewDrawList creates an empty list with room for a typical frame.
func NewDrawList() *DrawList {
	return &DrawList{Commands: make([]Command, 0, 64)}
}

// Reset empties the list, keeping its storage.
func (d *DrawList) Reset() {
	d.Commands = d.Commands[:0]
}

// Len returns the number of queued commands.
func (d *DrawList) Len() int { return len(d.Commands) }

// Clear fills the whole target.
func (d *DrawList) Clear(c Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdClear, Color: c})
}

// Rect queues a filled rectangle.
func (d *DrawList) Rect(x, y, w, h float32, c Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdRect, X0: x, Y0: y, X1: w, Y1: h, Color: c})
}

// Line queues a stroked segment. Zero thickness draws nothing.
func (d *DrawList) Line(x0, y0, x1, y1, thickness float32, c Color) {
	d.Commands = append(d.Commands, Command{
		Kind: CmdLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Thickness: thickness, Color: c,
	})
}

// Circle queues a filled circle.
func (d *DrawList) Circle(cx, cy, r float32, c Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdCircle, X0: cx, Y0: cy, Radius: r, Color: c})
}

// Text queues a string with its top-left corner at x, y.
func (d *DrawList) Text(x, y float32, text string, scale float32, c Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdText, X0: x, Y0: y, Text: text, Scale: scale, Color: c})
}

// TextMeasurer reports the pixel extents of a string.
type TextMeasurer interface {
	MeasureText(text string, scale float32) (float32, float32)
}
