package ui

import (
	"fmt"

	"github.com/Faultbox/wec-replay/internal/engine/ui2d"
)

// timeOrigin is where the time readout is drawn.
const timeOrigin = 10

// scaleLineGap separates the speed and scale readouts.
const scaleLineGap = 15

// FontPixels returns the UI font size for a window width: width/20 clamped
// to [minPx, maxPx].
func FontPixels(width, minPx, maxPx float64) float64 {
	return min(max(float64(int(width/20)), minPx), maxPx)
}

// TextScale converts a font pixel size into a scale for a bitmap font whose
// glyphs are glyphHeight pixels tall.
func TextScale(fontPx float64, glyphHeight int) float32 {
	if glyphHeight <= 0 {
		return 1
	}
	return float32(fontPx / float64(glyphHeight))
}

// Readouts are the values shown in the text overlays.
type Readouts struct {
	Now   float64
	End   float64
	Speed float64
	Scale float64
}

// DrawOverlays appends the time readout at the top-left and the speed and
// scale readouts right-aligned at the top-right.
func DrawOverlays(list *ui2d.DrawList, measure ui2d.TextMeasurer, textScale float32, width, edge float64, r Readouts) {
	timeText := fmt.Sprintf("%.2f/%.2f", r.Now, r.End)
	speedText := fmt.Sprintf("Speed: %g", r.Speed)
	scaleText := fmt.Sprintf("Scale: %g", r.Scale)

	speedW, speedH := measure.MeasureText(speedText, textScale)
	scaleW, scaleH := measure.MeasureText(scaleText, textScale)

	right := float32(width - edge)
	list.Text(right-speedW, float32(edge), speedText, textScale, ui2d.ColorText)
	list.Text(right-scaleW, speedH/2+scaleH/2+scaleLineGap, scaleText, textScale, ui2d.ColorText)
	list.Text(timeOrigin, timeOrigin, timeText, textScale, ui2d.ColorText)
}
