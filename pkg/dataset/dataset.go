// Package dataset loads precomputed wave-energy-converter runs.
//
// A dataset is a YAML document holding the run summary (printed once at
// startup), the physical dimensions of the rig, the displacement time series
// and the initial playback speed and spatial scale.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validation errors. All of them are fatal configuration errors.
var (
	ErrUnsupportedShape  = errors.New("unsupported buoy shape")
	ErrTooFewSamples     = errors.New("series needs at least 2 samples")
	ErrTimeNotIncreasing = errors.New("series time is not strictly increasing")
	ErrLengthMismatch    = errors.New("series columns have different lengths")
	ErrInvalidScale      = errors.New("speed and scale must be positive")
	ErrNonFinite         = errors.New("series value is not finite")
)

// Shape is the buoy body variant.
type Shape int

const (
	ShapeSphere Shape = iota + 1
	ShapeCylinder
)

// ParseShape converts a shape tag. Matching is case-insensitive.
func ParseShape(tag string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "sphere":
		return ShapeSphere, nil
	case "cylinder":
		return ShapeCylinder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedShape, tag)
	}
}

// String returns the shape tag.
func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeCylinder:
		return "cylinder"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Sample is one row of the displacement series. Displacements are in
// physical units, positive downwards in screen space.
type Sample struct {
	Time   float64
	Buoy   float64
	Piston float64
	Wave   float64
}

// Physical holds the rig dimensions used by the geometry model.
type Physical struct {
	Shape           Shape
	BuoyRadius      float64
	BuoyLength      float64 // cylinder only
	BuoyEquilibrium float64
	TubeRadius      float64
	TubeLength      float64
}

// Summary is the run parameter record echoed in the startup report.
type Summary struct {
	Period            float64 `yaml:"period"`
	Frequency         float64 `yaml:"frequency"`
	SignificantHeight float64 `yaml:"significant_height"`
	WaveDamping       float64 `yaml:"wave_damping"`
	BuoyShape         string  `yaml:"buoy_shape"`
	BuoyRadius        float64 `yaml:"buoy_radius"`
	BuoyMass          float64 `yaml:"buoy_mass"`
	BuoyLength        float64 `yaml:"buoy_length"`
	Equilibrium       float64 `yaml:"equilibrium"`
	TubeRadius        float64 `yaml:"tube_radius"`
	TubeLength        float64 `yaml:"tube_length"`
	TubeMass          float64 `yaml:"tube_mass"`
	PTODamping        float64 `yaml:"pto_damping"`
	PTOSpring         float64 `yaml:"pto_spring"`
}

// Dataset is a validated, immutable run.
type Dataset struct {
	Summary  Summary
	Physical Physical
	Series   []Sample
	Speed    float64
	Scale    float64
}

// EndTime returns the largest sample time.
func (d *Dataset) EndTime() float64 {
	end := d.Series[0].Time
	for _, s := range d.Series[1:] {
		if s.Time > end {
			end = s.Time
		}
	}
	return end
}

// validateSeries checks length, finiteness and time ordering of a series.
func validateSeries(series []Sample) error {
	if len(series) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewSamples, len(series))
	}
	for i, s := range series {
		if !finite(s.Time, s.Buoy, s.Piston, s.Wave) {
			return fmt.Errorf("%w: sample %d (t=%g buoy=%g piston=%g wave=%g)",
				ErrNonFinite, i, s.Time, s.Buoy, s.Piston, s.Wave)
		}
		if i > 0 && !(s.Time > series[i-1].Time) {
			return fmt.Errorf("%w: sample %d (t=%g) after t=%g",
				ErrTimeNotIncreasing, i, s.Time, series[i-1].Time)
		}
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
