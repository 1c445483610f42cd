package game

import (
	"github.com/Faultbox/wec-replay/internal/engine/ui2d"
	"github.com/Faultbox/wec-replay/internal/game/ui"
	"github.com/Faultbox/wec-replay/internal/geometry"
	"github.com/Faultbox/wec-replay/pkg/dataset"
)

// render composes the current frame and hands it to the display.
func (g *Game) render() {
	g.list.Reset()
	g.compose(g.list)
	g.display.Present(g.list)
}

// compose derives the scene for the current sample and appends it, then the
// panel, then the readouts.
func (g *Game) compose(list *ui2d.DrawList) {
	s := g.scale.Spatial
	scene := g.model.Compute(s, g.win, geometry.Derive(g.clock.Sample(), s))

	list.Clear(ui2d.ColorBackground)

	sea := scene.Sea
	list.Rect(f32(sea.Min.X), f32(sea.Min.Y), f32(sea.Size.X), f32(sea.Size.Y), ui2d.ColorSea)
	line(list, scene.WaterLine, ui2d.ColorWaterLine)
	line(list, scene.EquilibriumLine, ui2d.ColorDatumLine)

	b := scene.Buoy
	switch b.Shape {
	case dataset.ShapeSphere:
		list.Circle(f32(b.Center.X), f32(b.Center.Y), f32(b.Radius), ui2d.ColorBuoy)
	case dataset.ShapeCylinder:
		list.Rect(
			f32(b.Center.X-b.Size.X/2), f32(b.Center.Y-b.Size.Y/2),
			f32(b.Size.X), f32(b.Size.Y),
			ui2d.ColorBuoy,
		)
	}
	line(list, scene.Tube.Left, ui2d.ColorBuoy)
	line(list, scene.Tube.Right, ui2d.ColorBuoy)

	line(list, scene.Piston.Plunger, ui2d.ColorPiston)
	line(list, scene.Piston.Shaft, ui2d.ColorPiston)

	g.panel.Draw(list, g.display, g.textScale)

	ui.DrawOverlays(list, g.display, g.textScale, g.win.Width, g.config.Style.EdgeBorder, ui.Readouts{
		Now:   g.clock.CurrentTime(),
		End:   g.data.EndTime(),
		Speed: g.scale.Speed,
		Scale: g.scale.Spatial,
	})
}

func line(list *ui2d.DrawList, l geometry.Line, c ui2d.Color) {
	list.Line(f32(l.From.X), f32(l.From.Y), f32(l.To.X), f32(l.To.Y), f32(l.Thickness), c)
}

func f32(v float64) float32 { return float32(v) }
