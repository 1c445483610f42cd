package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk layout of a dataset.
type document struct {
	Summary    Summary    `yaml:"summary"`
	Simulation simulation `yaml:"simulation"`
	Speed      float64    `yaml:"speed"`
	Scale      float64    `yaml:"scale"`
}

type simulation struct {
	BuoyShape       string    `yaml:"buoy_shape"`
	BuoyRadius      float64   `yaml:"buoy_radius"`
	BuoyLength      float64   `yaml:"buoy_length"`
	BuoyEquilibrium float64   `yaml:"buoy_equilibrium"`
	TubeRadius      float64   `yaml:"tube_radius"`
	TubeLength      float64   `yaml:"tube_length"`
	Time            []float64 `yaml:"time"`
	BuoyMotion      []float64 `yaml:"buoy_motion"`
	PistonMotion    []float64 `yaml:"piston_motion"`
	WaveMotion      []float64 `yaml:"wave_motion"`
}

// Load reads and validates a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates a dataset document.
// Speed and scale default to 1 when absent.
func Parse(data []byte) (*Dataset, error) {
	doc := document{Speed: 1, Scale: 1}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.build()
}

func (doc *document) build() (*Dataset, error) {
	sim := doc.Simulation

	shape, err := ParseShape(sim.BuoyShape)
	if err != nil {
		return nil, err
	}

	n := len(sim.Time)
	if len(sim.BuoyMotion) != n || len(sim.PistonMotion) != n || len(sim.WaveMotion) != n {
		return nil, fmt.Errorf("%w: time=%d buoy=%d piston=%d wave=%d", ErrLengthMismatch,
			n, len(sim.BuoyMotion), len(sim.PistonMotion), len(sim.WaveMotion))
	}

	series := make([]Sample, n)
	for i := range series {
		series[i] = Sample{
			Time:   sim.Time[i],
			Buoy:   sim.BuoyMotion[i],
			Piston: sim.PistonMotion[i],
			Wave:   sim.WaveMotion[i],
		}
	}
	if err := validateSeries(series); err != nil {
		return nil, err
	}

	if !(doc.Speed > 0) || !(doc.Scale > 0) || !finite(doc.Speed, doc.Scale) {
		return nil, fmt.Errorf("%w: speed=%g scale=%g", ErrInvalidScale, doc.Speed, doc.Scale)
	}

	summary := doc.Summary
	if summary.BuoyShape == "" {
		summary.BuoyShape = shape.String()
	}

	return &Dataset{
		Summary: summary,
		Physical: Physical{
			Shape:           shape,
			BuoyRadius:      sim.BuoyRadius,
			BuoyLength:      sim.BuoyLength,
			BuoyEquilibrium: sim.BuoyEquilibrium,
			TubeRadius:      sim.TubeRadius,
			TubeLength:      sim.TubeLength,
		},
		Series: series,
		Speed:  doc.Speed,
		Scale:  doc.Scale,
	}, nil
}

// Marshal encodes a dataset back into its document form.
func Marshal(d *Dataset) ([]byte, error) {
	doc := document{
		Summary: d.Summary,
		Simulation: simulation{
			BuoyShape:       d.Physical.Shape.String(),
			BuoyRadius:      d.Physical.BuoyRadius,
			BuoyLength:      d.Physical.BuoyLength,
			BuoyEquilibrium: d.Physical.BuoyEquilibrium,
			TubeRadius:      d.Physical.TubeRadius,
			TubeLength:      d.Physical.TubeLength,
		},
		Speed: d.Speed,
		Scale: d.Scale,
	}
	for _, s := range d.Series {
		doc.Simulation.Time = append(doc.Simulation.Time, s.Time)
		doc.Simulation.BuoyMotion = append(doc.Simulation.BuoyMotion, s.Buoy)
		doc.Simulation.PistonMotion = append(doc.Simulation.PistonMotion, s.Piston)
		doc.Simulation.WaveMotion = append(doc.Simulation.WaveMotion, s.Wave)
	}
	return yaml.Marshal(&doc)
}
