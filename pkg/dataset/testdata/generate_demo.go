//go:build ignore

// This program generates the demo dataset loaded when no file is named.
// Run with: go run generate_demo.go > ../../../demo_file.yaml
package main

import (
	"math"
	"os"

	"github.com/Faultbox/wec-replay/pkg/dataset"
)

func main() {
	const (
		period    = 8.0
		height    = 2.0
		duration  = 60.0
		step      = 0.05
		buoyGain  = 0.9
		pistonLag = 0.4
	)

	d := &dataset.Dataset{
		Summary: dataset.Summary{
			Period:            period,
			Frequency:         1 / period,
			SignificantHeight: height,
			WaveDamping:       1200,
			BuoyShape:         "sphere",
			BuoyRadius:        20,
			BuoyMass:          1500,
			Equilibrium:       5,
			TubeRadius:        6,
			TubeLength:        80,
			TubeMass:          300,
			PTODamping:        5000,
			PTOSpring:         800,
		},
		Physical: dataset.Physical{
			Shape:           dataset.ShapeSphere,
			BuoyRadius:      20,
			BuoyEquilibrium: 5,
			TubeRadius:      6,
			TubeLength:      80,
		},
		Speed: 1,
		Scale: 1,
	}

	omega := 2 * math.Pi / period
	amp := height * 5 // pixels per metre at scale 1
	for i := 0; float64(i)*step <= duration; i++ {
		t := float64(i) * step
		wave := amp * math.Sin(omega*t)
		d.Series = append(d.Series, dataset.Sample{
			Time:   t,
			Wave:   wave,
			Buoy:   buoyGain * amp * math.Sin(omega*t-0.2),
			Piston: buoyGain * amp * math.Sin(omega*t-0.2-pistonLag),
		})
	}

	out, err := dataset.Marshal(d)
	if err != nil {
		panic(err)
	}
	os.Stdout.Write(out)
}
