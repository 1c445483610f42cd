package dataset

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport prints the fixed-format parameter block shown at launch.
// The buoy length line only appears for cylinders, and the mass ratio only
// when the buoy mass is positive.
func WriteReport(w io.Writer, filename string, s Summary) error {
	var b strings.Builder

	b.WriteString("\n==== PARAMETERS ====\n\n")

	b.WriteString("FILENAME\n")
	fmt.Fprintf(&b, "Data file: %s\n\n", filename)

	b.WriteString("WAVE DATA\n")
	fmt.Fprintf(&b, "Period: %g\n", s.Period)
	fmt.Fprintf(&b, "Frequency: %g\n", s.Frequency)
	fmt.Fprintf(&b, "Significant Height: %g\n", s.SignificantHeight)
	fmt.Fprintf(&b, "Damping: %g\n\n", s.WaveDamping)

	b.WriteString("BUOY DATA\n")
	fmt.Fprintf(&b, "Shape: %s\n", s.BuoyShape)
	fmt.Fprintf(&b, "Radius: %g\n", s.BuoyRadius)
	fmt.Fprintf(&b, "Mass: %g\n", s.BuoyMass)
	if shape, err := ParseShape(s.BuoyShape); err == nil && shape == ShapeCylinder {
		fmt.Fprintf(&b, "Length: %g\n", s.BuoyLength)
	}
	fmt.Fprintf(&b, "Equilibrium Submersion: %g\n\n", s.Equilibrium)

	b.WriteString("TUBE DATA\n")
	fmt.Fprintf(&b, "Radius: %g\n", s.TubeRadius)
	fmt.Fprintf(&b, "Length: %g\n", s.TubeLength)
	fmt.Fprintf(&b, "Mass: %g\n\n", s.TubeMass)

	b.WriteString("PTO DATA\n")
	fmt.Fprintf(&b, "Damping Coefficient: %g\n", s.PTODamping)
	fmt.Fprintf(&b, "Spring Constant: %g\n\n", s.PTOSpring)

	b.WriteString("OTHER\n")
	if s.BuoyMass > 0 {
		fmt.Fprintf(&b, "Mass Ratio: %g\n", s.TubeMass/s.BuoyMass)
	}
	b.WriteString("\n")

	b.WriteString("====================\n")

	_, err := io.WriteString(w, b.String())
	return err
}
