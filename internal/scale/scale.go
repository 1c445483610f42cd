// Package scale holds the spatial scale factor and time speed multiplier.
//
// Both values move along the same ladder: unit steps at or above 1,
// doubling and halving below 1, with a floor of 1/8.
package scale

// Floor is the smallest value the ladder steps down to.
const Floor = 0.125

// Up returns the next rung above v.
func Up(v float64) float64 {
	if v >= 1 {
		return v + 1
	}
	return v * 2
}

// Down returns the next rung below v. Values at or under Floor are held,
// and a step never lands below Floor.
func Down(v float64) float64 {
	switch {
	case v <= Floor:
		return v
	case v > 1:
		return max(v-1, Floor)
	default:
		return max(v/2, Floor)
	}
}

// State is the mutable scale/speed pair owned by the game loop.
type State struct {
	Spatial float64 // pixels per physical unit
	Speed   float64 // simulation seconds per wall-clock second
}

// New returns a state seeded from a dataset's initial values.
func New(spatial, speed float64) State {
	return State{Spatial: spatial, Speed: speed}
}

// SpeedUp steps the time speed up one rung.
func (s *State) SpeedUp() { s.Speed = Up(s.Speed) }

// SlowDown steps the time speed down one rung.
func (s *State) SlowDown() { s.Speed = Down(s.Speed) }

// ScaleUp steps the spatial scale up one rung.
func (s *State) ScaleUp() { s.Spatial = Up(s.Spatial) }

// ScaleDown steps the spatial scale down one rung.
func (s *State) ScaleDown() { s.Spatial = Down(s.Spatial) }
