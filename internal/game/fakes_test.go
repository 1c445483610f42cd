package game

import (
	"sort"
	"time"

	"github.com/Faultbox/wec-replay/internal/engine/input"
	"github.com/Faultbox/wec-replay/internal/engine/ui2d"
	"github.com/Faultbox/wec-replay/internal/playback"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// virtualClock is a manually advanced wall clock.
type virtualClock struct {
	t time.Time
}

func (c *virtualClock) now() time.Time { return c.t }

func (c *virtualClock) elapsed() time.Duration { return c.t.Sub(epoch) }

// maxWaits stops a runaway loop in a failing test.
const maxWaits = 100000

type timedEvent struct {
	at    time.Duration
	event input.Event
}

// scriptedSource replays events at fixed virtual times. Waiting with no
// events left behaves like the user closing the window.
type scriptedSource struct {
	clock   *virtualClock
	pending []timedEvent
	waits   []time.Duration
}

func newScriptedSource(clock *virtualClock) *scriptedSource {
	return &scriptedSource{clock: clock}
}

// push schedules more events.
func (s *scriptedSource) push(events ...timedEvent) {
	s.pending = append(s.pending, events...)
	sort.SliceStable(s.pending, func(i, j int) bool { return s.pending[i].at < s.pending[j].at })
}

func (s *scriptedSource) due() []input.Event {
	var out []input.Event
	for len(s.pending) > 0 && s.pending[0].at <= s.clock.elapsed() {
		out = append(out, s.pending[0].event)
		s.pending = s.pending[1:]
	}
	return out
}

func (s *scriptedSource) Poll() []input.Event {
	return s.due()
}

func (s *scriptedSource) Wait(timeout time.Duration) []input.Event {
	s.waits = append(s.waits, timeout)
	if len(s.waits) > maxWaits {
		return []input.Event{{Type: input.EventQuit}}
	}
	if events := s.due(); len(events) > 0 {
		return events
	}

	if len(s.pending) == 0 {
		if timeout < 0 {
			return []input.Event{{Type: input.EventQuit}}
		}
		s.clock.t = s.clock.t.Add(timeout)
		return nil
	}

	next := s.pending[0].at
	if timeout < 0 || next <= s.clock.elapsed()+timeout {
		s.clock.t = epoch.Add(next)
		return s.due()
	}
	s.clock.t = s.clock.t.Add(timeout)
	return nil
}

// frame is what one Present saw.
type frame struct {
	at    time.Duration
	mode  playback.Mode
	index int
	list  ui2d.DrawList
}

// fakeDisplay records presented frames. Text is 10px per rune, 20px tall.
type fakeDisplay struct {
	game      *Game
	clock     *virtualClock
	frames    []frame
	setSizes  [][2]int
	viewports [][2]int
}

func (d *fakeDisplay) MeasureText(text string, scale float32) (float32, float32) {
	return float32(len(text)) * 10 * scale, 20 * scale
}

func (d *fakeDisplay) GlyphHeight() int { return 20 }

func (d *fakeDisplay) SetSize(w, h int) { d.setSizes = append(d.setSizes, [2]int{w, h}) }

func (d *fakeDisplay) Viewport(w, h int) { d.viewports = append(d.viewports, [2]int{w, h}) }

func (d *fakeDisplay) Present(list *ui2d.DrawList) {
	f := frame{at: d.clock.elapsed()}
	f.list.Commands = append(f.list.Commands, list.Commands...)
	if d.game != nil {
		f.mode = d.game.clock.Mode()
		f.index = d.game.clock.Index()
	}
	d.frames = append(d.frames, f)
}

func (d *fakeDisplay) last() frame {
	return d.frames[len(d.frames)-1]
}

func at(d time.Duration, e input.Event) timedEvent {
	return timedEvent{at: d, event: e}
}

func key(k input.Key) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: k}
}

func quit() input.Event {
	return input.Event{Type: input.EventQuit}
}

func resize(w, h int) input.Event {
	return input.Event{Type: input.EventWindowResize, Width: w, Height: h}
}

// click presses and releases the primary button at a point.
func click(d time.Duration, x, y float64) []timedEvent {
	return []timedEvent{
		at(d, input.Event{Type: input.EventMouseDown, MouseX: int(x), MouseY: int(y), Button: input.ButtonLeft}),
		at(d, input.Event{Type: input.EventMouseUp, MouseX: int(x), MouseY: int(y), Button: input.ButtonLeft}),
	}
}
