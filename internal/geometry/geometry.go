// Package geometry derives on-screen shapes of the rig from its physical
// dimensions, the spatial scale, the window size and the current sample.
//
// Nothing here is cached between frames: every Scene is a pure function of
// its inputs, so the window size and the scale can never drift apart from
// the shapes drawn with them.
package geometry

import (
	"fmt"
	"math"

	"github.com/Faultbox/wec-replay/pkg/dataset"
	vec "github.com/Faultbox/wec-replay/pkg/math"
)

// Datum positions as fractions of window height.
const (
	WaterDatumFraction  = 0.25
	PistonDatumFraction = 0.66
)

// Thickness ratios relative to the scaled tube radius.
const (
	tubeWallRatio  = 0.2
	plungerRatio   = 0.3
	shaftRatio     = plungerRatio * 0.5
	plungerSpan    = 0.95
	waterLineRatio = 0.2
	datumLineWidth = 2
)

// Window is the current drawable size in pixels.
type Window struct {
	Width, Height float64
}

// WaterDatum is the undisturbed water line.
func (w Window) WaterDatum() float64 { return w.Height * WaterDatumFraction }

// PistonDatum is the piston equilibrium line.
func (w Window) PistonDatum() float64 { return w.Height * PistonDatumFraction }

// CenterX is the vertical centerline of the rig.
func (w Window) CenterX() float64 { return w.Width / 2 }

// Offsets are the sample displacements multiplied by the spatial scale.
type Offsets struct {
	Buoy, Piston, Wave float64
}

// Derive scales one sample. The result is only valid for the frame it is
// computed in.
func Derive(s dataset.Sample, scale float64) Offsets {
	return Offsets{
		Buoy:   s.Buoy * scale,
		Piston: s.Piston * scale,
		Wave:   s.Wave * scale,
	}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  vec.Vec2
	Size vec.Vec2
}

// Center returns the midpoint of r.
func (r Rect) Center() vec.Vec2 { return r.Min.Add(r.Size.Scale(0.5)) }

// Line is a stroked segment. Thickness is whole pixels.
type Line struct {
	From, To  vec.Vec2
	Thickness float64
}

// Buoy is the floating body. Radius is set for spheres, Size for cylinders.
type Buoy struct {
	Shape  dataset.Shape
	Center vec.Vec2
	Radius float64
	Size   vec.Vec2
}

// Tube is the guide tube drawn as two walls.
type Tube struct {
	Left, Right Line
}

// Piston is the plunger and its shaft.
type Piston struct {
	Plunger Line
	Shaft   Line
}

// Scene is every shape of one frame.
type Scene struct {
	Sea             Rect
	WaterLine       Line
	EquilibriumLine Line
	Buoy            Buoy
	Tube            Tube
	Piston          Piston
}

// body is the shape-specific part of the buoy at scale 1.
type body struct {
	shape      dataset.Shape
	radius     float64
	size       vec.Vec2
	halfHeight float64
}

// Model computes scenes for one rig.
type Model struct {
	params dataset.Physical
	body   body
}

// NewModel validates the buoy shape once so rendering never meets an
// unknown variant.
func NewModel(p dataset.Physical) (*Model, error) {
	var b body
	switch p.Shape {
	case dataset.ShapeSphere:
		b = body{
			shape:      p.Shape,
			radius:     p.BuoyRadius,
			halfHeight: p.BuoyRadius,
		}
	case dataset.ShapeCylinder:
		b = body{
			shape:      p.Shape,
			size:       vec.Vec2{X: 2 * p.BuoyRadius, Y: p.BuoyLength},
			halfHeight: p.BuoyLength / 2,
		}
	default:
		return nil, fmt.Errorf("%w: %v", dataset.ErrUnsupportedShape, p.Shape)
	}
	return &Model{params: p, body: b}, nil
}

// Compute derives the scene for the given scale, window and offsets.
func (m *Model) Compute(scale float64, win Window, off Offsets) Scene {
	p := m.params
	cx := win.CenterX()
	water := win.WaterDatum()
	piston := win.PistonDatum()

	var s Scene

	seaTop := water + off.Wave
	s.Sea = Rect{
		Min:  vec.Vec2{X: 0, Y: seaTop},
		Size: vec.Vec2{X: win.Width, Y: win.Height - seaTop + 1},
	}

	s.WaterLine = horizontal(water, win.Width, math.Round(p.BuoyRadius*waterLineRatio))
	s.EquilibriumLine = horizontal(piston, win.Width, datumLineWidth)

	halfHeight := m.body.halfHeight * scale
	s.Buoy = Buoy{
		Shape:  m.body.shape,
		Center: vec.Vec2{X: cx, Y: water - halfHeight + p.BuoyEquilibrium*scale + off.Buoy},
		Radius: m.body.radius * scale,
		Size:   m.body.size.Scale(scale),
	}

	tubeRadius := p.TubeRadius * scale
	wall := math.Round(tubeRadius * tubeWallRatio)
	side := tubeRadius + wall/2
	tubeY := piston + off.Buoy
	half := p.TubeLength * scale / 2
	s.Tube = Tube{
		Left:  vertical(cx-side, tubeY-half, tubeY+half, wall),
		Right: vertical(cx+side, tubeY-half, tubeY+half, wall),
	}

	plungerY := piston + off.Piston
	shaftLen := piston - water - p.BuoyEquilibrium*scale + halfHeight
	reach := tubeRadius * plungerSpan
	s.Piston = Piston{
		Plunger: Line{
			From:      vec.Vec2{X: cx - reach, Y: plungerY},
			To:        vec.Vec2{X: cx + reach, Y: plungerY},
			Thickness: math.Round(tubeRadius * plungerRatio),
		},
		Shaft: vertical(cx, plungerY-shaftLen, plungerY, math.Round(tubeRadius*shaftRatio)),
	}

	return s
}

func horizontal(y, width, thickness float64) Line {
	return Line{From: vec.Vec2{X: 0, Y: y}, To: vec.Vec2{X: width, Y: y}, Thickness: thickness}
}

func vertical(x, y0, y1, thickness float64) Line {
	return Line{From: vec.Vec2{X: x, Y: y0}, To: vec.Vec2{X: x, Y: y1}, Thickness: thickness}
}
