// Package playback implements the play/pause/stop state machine over a
// sample series and the pacing arithmetic that maps simulation time to
// wall-clock delays.
package playback

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wec-replay/internal/logger"
	"github.com/Faultbox/wec-replay/pkg/dataset"
)

// Mode is the playback state.
type Mode int

const (
	Stopped Mode = iota
	Playing
	Paused
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Clock owns the current position in the series.
//
// While Playing or Paused, CurrentTime equals the time of the sample at
// Index. While Stopped, Index and CurrentTime are both zero.
type Clock struct {
	series []dataset.Sample
	mode   Mode
	index  int

	// presented is set once the sample at index has been drawn, so the next
	// step moves on instead of drawing it again.
	presented bool
}

// NewClock returns a stopped clock. The series must hold at least two
// samples; dataset validation guarantees that.
func NewClock(series []dataset.Sample) *Clock {
	return &Clock{series: series}
}

// Mode returns the current state.
func (c *Clock) Mode() Mode { return c.mode }

// Index returns the current sample index.
func (c *Clock) Index() int { return c.index }

// Len returns the number of samples.
func (c *Clock) Len() int { return len(c.series) }

// CurrentTime returns the simulation time shown on screen.
func (c *Clock) CurrentTime() float64 {
	if c.mode == Stopped {
		return 0
	}
	return c.series[c.index].Time
}

// Sample returns the sample to draw. When stopped this is the rest position.
func (c *Clock) Sample() dataset.Sample {
	return c.series[c.index]
}

// Presented reports whether the current sample has already been drawn
// during this play-through.
func (c *Clock) Presented() bool { return c.presented }

// MarkPresented records that the current sample has been drawn.
func (c *Clock) MarkPresented() { c.presented = true }

// Start begins playback from the first sample, or resumes when paused.
// It returns false when already playing.
func (c *Clock) Start() bool {
	switch c.mode {
	case Stopped:
		c.index = 0
		c.presented = false
	case Paused:
	default:
		return false
	}
	c.transition(Playing)
	return true
}

// Pause freezes the current sample. Only valid while playing.
func (c *Clock) Pause() bool {
	if c.mode != Playing {
		return false
	}
	c.transition(Paused)
	return true
}

// Stop returns to the rest position. It reports whether the mode changed.
func (c *Clock) Stop() bool {
	changed := c.mode != Stopped
	c.index = 0
	c.presented = false
	if changed {
		c.transition(Stopped)
	}
	return changed
}

// Advance moves to the next sample. When the series is exhausted the clock
// stops itself and Advance returns false.
func (c *Clock) Advance() bool {
	if c.mode != Playing {
		return false
	}
	if c.index >= len(c.series)-1 {
		logger.Debug("series exhausted", zap.Int("samples", len(c.series)))
		c.Stop()
		return false
	}
	c.index++
	c.presented = false
	return true
}

// TargetDelay is the wall-clock time the current sample should stay on
// screen at the given speed. The final sample reuses the previous interval.
func (c *Clock) TargetDelay(speed float64) time.Duration {
	i := c.index
	var dt float64
	if i < len(c.series)-1 {
		dt = c.series[i+1].Time - c.series[i].Time
	} else {
		dt = c.series[i].Time - c.series[i-1].Time
	}
	return seconds(dt / speed)
}

func (c *Clock) transition(next Mode) {
	logger.Debug("playback state",
		zap.Stringer("from", c.mode),
		zap.Stringer("to", next),
		zap.Int("index", c.index),
	)
	c.mode = next
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
