package game

import (
	"errors"
	"testing"
	"time"

	"github.com/Faultbox/wec-replay/internal/engine/input"
	"github.com/Faultbox/wec-replay/internal/engine/ui2d"
	"github.com/Faultbox/wec-replay/internal/geometry"
	"github.com/Faultbox/wec-replay/internal/playback"
	"github.com/Faultbox/wec-replay/pkg/dataset"
)

func sphereData(series ...dataset.Sample) *dataset.Dataset {
	return &dataset.Dataset{
		Physical: dataset.Physical{
			Shape:           dataset.ShapeSphere,
			BuoyRadius:      20,
			BuoyEquilibrium: 5,
			TubeRadius:      6,
			TubeLength:      80,
		},
		Series: series,
		Speed:  1,
		Scale:  1,
	}
}

func threeSamples() []dataset.Sample {
	return []dataset.Sample{
		{Time: 0, Buoy: 0, Piston: 0, Wave: 0},
		{Time: 1, Buoy: 1, Piston: 1, Wave: 1},
		{Time: 2, Buoy: 0, Piston: 0, Wave: 0},
	}
}

type harness struct {
	game    *Game
	source  *scriptedSource
	display *fakeDisplay
	clock   *virtualClock
}

// newHarness builds a 800x400 session so the water datum sits at y=100.
func newHarness(t *testing.T, data *dataset.Dataset) *harness {
	t.Helper()
	clock := &virtualClock{t: epoch}
	src := newScriptedSource(clock)
	disp := &fakeDisplay{clock: clock}

	cfg := DefaultConfig()
	cfg.Width = 800
	cfg.Height = 400

	g, err := New(cfg, data, disp, src, WithClock(clock.now))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	disp.game = g
	return &harness{game: g, source: src, display: disp, clock: clock}
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	if err := h.game.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(h.source.waits) > maxWaits {
		t.Fatal("loop did not terminate")
	}
}

// firstPlaying returns when each index was first shown while playing.
func (h *harness) firstPlaying() map[int]time.Duration {
	seen := make(map[int]time.Duration)
	for _, f := range h.display.frames {
		if f.mode != playback.Playing {
			continue
		}
		if _, ok := seen[f.index]; !ok {
			seen[f.index] = f.at
		}
	}
	return seen
}

func TestNewRejectsUnknownShape(t *testing.T) {
	data := sphereData(threeSamples()...)
	data.Physical.Shape = dataset.Shape(99)

	_, err := New(DefaultConfig(), data, &fakeDisplay{clock: &virtualClock{}}, newScriptedSource(&virtualClock{}))
	if !errors.Is(err, dataset.ErrUnsupportedShape) {
		t.Errorf("New() error = %v, want %v", err, dataset.ErrUnsupportedShape)
	}
}

func TestPlaysSeriesThenStops(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	h.source.push(at(0, key(input.KeySpace)))
	h.run(t)

	seen := h.firstPlaying()
	want := map[int]time.Duration{0: 0, 1: time.Second, 2: 2 * time.Second}
	for idx, wantAt := range want {
		got, ok := seen[idx]
		if !ok {
			t.Errorf("index %d never shown", idx)
			continue
		}
		if got != wantAt {
			t.Errorf("index %d shown at %v, want %v", idx, got, wantAt)
		}
	}

	last := h.display.last()
	if last.mode != playback.Stopped || last.index != 0 {
		t.Errorf("last frame = %v/%d, want stopped/0", last.mode, last.index)
	}
	if last.at != 3*time.Second {
		t.Errorf("stopped at %v, want 3s", last.at)
	}
	if got := h.game.clock.CurrentTime(); got != 0 {
		t.Errorf("CurrentTime() = %v, want 0", got)
	}
}

func TestSpeedShortensIntervals(t *testing.T) {
	data := sphereData(threeSamples()...)
	data.Speed = 2
	h := newHarness(t, data)
	h.source.push(at(0, key(input.KeySpace)))
	h.run(t)

	seen := h.firstPlaying()
	if seen[1] != 500*time.Millisecond || seen[2] != time.Second {
		t.Errorf("index times = %v, want 1 at 500ms and 2 at 1s", seen)
	}
	if got := h.display.last().at; got != 1500*time.Millisecond {
		t.Errorf("stopped at %v, want 1.5s", got)
	}
}

func TestPauseAppliesEveryResize(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	h.source.push(
		at(0, key(input.KeySpace)),
		at(500*time.Millisecond, key(input.KeySpace)),
	)
	for i := 0; i < 10; i++ {
		h.source.push(at(600*time.Millisecond+time.Duration(i)*10*time.Millisecond, resize(900+i*10, 500+i)))
	}
	h.source.push(at(2*time.Second, quit()))
	h.run(t)

	if got, want := h.game.win, (geometry.Window{Width: 990, Height: 509}); got != want {
		t.Errorf("window = %v, want %v", got, want)
	}
	if got := len(h.display.viewports); got != 11 {
		t.Errorf("viewport updates = %d, want 11", got)
	}
	if h.game.Mode() != playback.Paused {
		t.Errorf("Mode() = %v, want paused", h.game.Mode())
	}
	if got := h.game.clock.Index(); got != 0 {
		t.Errorf("Index() = %d, want 0", got)
	}
	for _, f := range h.display.frames {
		if f.index != 0 {
			t.Fatalf("frame at %v shows index %d while paused", f.at, f.index)
		}
	}
	if got := h.clock.elapsed(); got != 2*time.Second {
		t.Errorf("quit observed at %v, want 2s", got)
	}
}

func TestResumeDoesNotCatchUp(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	h.source.push(
		at(0, key(input.KeySpace)),
		at(500*time.Millisecond, key(input.KeySpace)),
		at(5*time.Second, key(input.KeySpace)),
	)
	h.run(t)

	seen := h.firstPlaying()
	if seen[1] != 5*time.Second {
		t.Errorf("index 1 shown at %v, want 5s", seen[1])
	}
	if seen[2] != 6*time.Second {
		t.Errorf("index 2 shown at %v, want 6s", seen[2])
	}
	if got := h.display.last().at; got != 7*time.Second {
		t.Errorf("stopped at %v, want 7s", got)
	}
}

func TestQuitDuringPacingWait(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	h.source.push(
		at(0, key(input.KeySpace)),
		at(300*time.Millisecond, quit()),
	)
	h.run(t)

	if got := h.clock.elapsed(); got != 300*time.Millisecond {
		t.Errorf("Run() returned at %v, want 300ms", got)
	}
	if h.game.Mode() != playback.Playing || h.game.clock.Index() != 0 {
		t.Errorf("state = %v/%d, want playing/0", h.game.Mode(), h.game.clock.Index())
	}
}

func TestQuitWhileStopped(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	h.source.push(at(0, quit()))
	h.run(t)

	if got := len(h.display.frames); got != 1 {
		t.Errorf("frames = %d, want only the initial frame", got)
	}
}

func TestStopButtonRendersRest(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	stop := h.game.panel.Stop.Center
	h.source.push(at(0, key(input.KeySpace)))
	h.source.push(click(1500*time.Millisecond, stop.X, stop.Y)...)
	h.run(t)

	var rest *frame
	for i := range h.display.frames {
		f := &h.display.frames[i]
		if f.at == 1500*time.Millisecond && f.mode == playback.Stopped {
			rest = f
			break
		}
	}
	if rest == nil {
		t.Fatal("no rest frame rendered when Stop was clicked")
	}
	if rest.index != 0 {
		t.Errorf("rest frame index = %d, want 0", rest.index)
	}
	if !hasText(rest.list, "0.00/2.00") {
		t.Error("rest frame does not show 0.00/2.00")
	}
}

func TestBiggerFiveTimes(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	bigger := h.game.panel.Bigger.Center
	for i := 0; i < 5; i++ {
		h.source.push(click(time.Duration(i)*100*time.Millisecond, bigger.X, bigger.Y)...)
	}
	h.run(t)

	if got := h.game.Scale().Spatial; got != 6 {
		t.Fatalf("Spatial = %v, want 6", got)
	}

	// The frame right after the fifth click must already use scale 6.
	var after *frame
	for i := range h.display.frames {
		if h.display.frames[i].at == 400*time.Millisecond {
			after = &h.display.frames[i]
			break
		}
	}
	if after == nil {
		t.Fatal("no frame rendered after the fifth click")
	}
	c, ok := findKind(after.list, ui2d.CmdCircle)
	if !ok {
		t.Fatal("no buoy circle drawn")
	}
	if c.Radius != 120 {
		t.Errorf("buoy radius = %v, want 120", c.Radius)
	}
	// 100 - 120 + 5*6
	if c.Y0 != 10 {
		t.Errorf("buoy center y = %v, want 10", c.Y0)
	}
}

func TestBuoyAtRest(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	list := ui2d.NewDrawList()
	h.game.compose(list)

	c, ok := findKind(*list, ui2d.CmdCircle)
	if !ok {
		t.Fatal("no buoy circle drawn")
	}
	if c.X0 != 400 || c.Y0 != 85 || c.Radius != 20 {
		t.Errorf("buoy = (%v, %v) r=%v, want (400, 85) r=20", c.X0, c.Y0, c.Radius)
	}
}

func TestComposeOrder(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	list := ui2d.NewDrawList()
	h.game.compose(list)

	// background, sea, two datum lines, buoy, tube walls, plunger, shaft
	want := []ui2d.CommandKind{
		ui2d.CmdClear,
		ui2d.CmdRect,
		ui2d.CmdLine, ui2d.CmdLine,
		ui2d.CmdCircle,
		ui2d.CmdLine, ui2d.CmdLine,
		ui2d.CmdLine, ui2d.CmdLine,
	}
	for i := 0; i < 7; i++ {
		want = append(want, ui2d.CmdRect, ui2d.CmdText)
	}
	want = append(want, ui2d.CmdText, ui2d.CmdText, ui2d.CmdText)

	if list.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", list.Len(), len(want))
	}
	for i, k := range want {
		if got := list.Commands[i].Kind; got != k {
			t.Errorf("command %d kind = %v, want %v", i, got, k)
		}
	}

	colours := map[int]ui2d.Color{
		1: ui2d.ColorSea,
		2: ui2d.ColorWaterLine,
		3: ui2d.ColorDatumLine,
		4: ui2d.ColorBuoy,
		5: ui2d.ColorBuoy,
		7: ui2d.ColorPiston,
	}
	for i, c := range colours {
		if got := list.Commands[i].Color; got != c {
			t.Errorf("command %d colour = %v, want %v", i, got, c)
		}
	}
}

func TestComposeCylinder(t *testing.T) {
	data := sphereData(threeSamples()...)
	data.Physical.Shape = dataset.ShapeCylinder
	data.Physical.BuoyRadius = 10
	data.Physical.BuoyLength = 40
	data.Scale = 2
	h := newHarness(t, data)

	list := ui2d.NewDrawList()
	h.game.compose(list)

	buoy := list.Commands[4]
	if buoy.Kind != ui2d.CmdRect || buoy.Color != ui2d.ColorBuoy {
		t.Fatalf("command 4 = %v, want buoy rect", buoy.Kind)
	}
	// width 2*10*2, height 40*2, centre y 100 - 40 + 5*2
	if buoy.X1 != 40 || buoy.Y1 != 80 {
		t.Errorf("buoy size = %vx%v, want 40x80", buoy.X1, buoy.Y1)
	}
	if buoy.X0 != 380 || buoy.Y0 != 30 {
		t.Errorf("buoy origin = (%v, %v), want (380, 30)", buoy.X0, buoy.Y0)
	}
}

func TestResizeClampsToMinimum(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	h.source.push(at(0, resize(100, 900)))
	h.run(t)

	if got, want := h.game.win, (geometry.Window{Width: 400, Height: 900}); got != want {
		t.Errorf("window = %v, want %v", got, want)
	}
	if len(h.display.setSizes) != 1 || h.display.setSizes[0] != [2]int{400, 900} {
		t.Errorf("SetSize calls = %v, want [[400 900]]", h.display.setSizes)
	}
}

func TestKeyboardShortcuts(t *testing.T) {
	tests := []struct {
		keys        []input.Key
		wantMode    playback.Mode
		wantSpeed   float64
		wantSpatial float64
		wantQuit    bool
	}{
		{[]input.Key{input.KeySpace}, playback.Playing, 1, 1, false},
		{[]input.Key{input.KeySpace, input.KeySpace}, playback.Paused, 1, 1, false},
		{[]input.Key{input.KeySpace, input.KeySpace, input.KeySpace}, playback.Playing, 1, 1, false},
		{[]input.Key{input.KeySpace, input.KeyS}, playback.Stopped, 1, 1, false},
		{[]input.Key{input.KeyBracketRight, input.KeyBracketRight}, playback.Stopped, 3, 1, false},
		{[]input.Key{input.KeyBracketLeft, input.KeyBracketLeft}, playback.Stopped, 0.25, 1, false},
		{[]input.Key{input.KeyPlus, input.KeyPlus, input.KeyMinus}, playback.Stopped, 1, 2, false},
		{[]input.Key{input.KeyMinus}, playback.Stopped, 1, 0.5, false},
		{[]input.Key{input.KeyEscape}, playback.Stopped, 1, 1, true},
		{[]input.Key{input.KeyUnknown}, playback.Stopped, 1, 1, false},
	}
	for _, tt := range tests {
		h := newHarness(t, sphereData(threeSamples()...))
		for _, k := range tt.keys {
			h.game.key(k)
		}
		s := h.game.Scale()
		if h.game.Mode() != tt.wantMode || s.Speed != tt.wantSpeed || s.Spatial != tt.wantSpatial || h.game.quit != tt.wantQuit {
			t.Errorf("keys %v: mode=%v speed=%v scale=%v quit=%v, want %v %v %v %v",
				tt.keys, h.game.Mode(), s.Speed, s.Spatial, h.game.quit,
				tt.wantMode, tt.wantSpeed, tt.wantSpatial, tt.wantQuit)
		}
	}
}

func TestRightClickDoesNotActivate(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	play := h.game.panel.Play.Center
	h.game.handle([]input.Event{
		{Type: input.EventMouseDown, MouseX: int(play.X), MouseY: int(play.Y), Button: input.ButtonRight},
		{Type: input.EventMouseUp, MouseX: int(play.X), MouseY: int(play.Y), Button: input.ButtonRight},
	})
	if h.game.Mode() != playback.Stopped {
		t.Errorf("Mode() = %v after right click, want stopped", h.game.Mode())
	}
}

func TestRightReleaseOutsideClearsButtonState(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	faster := h.game.panel.Faster
	h.game.handle([]input.Event{
		{Type: input.EventMouseDown, MouseX: int(faster.Center.X), MouseY: int(faster.Center.Y), Button: input.ButtonLeft},
		{Type: input.EventMouseUp, MouseX: int(faster.Center.X), MouseY: int(faster.Center.Y), Button: input.ButtonLeft},
		{Type: input.EventMouseDown, MouseX: int(faster.Center.X), MouseY: int(faster.Center.Y), Button: input.ButtonLeft},
	})
	if !faster.Flashing || !faster.Pressed {
		t.Fatalf("Flashing = %v, Pressed = %v; want both true", faster.Flashing, faster.Pressed)
	}

	h.game.handle([]input.Event{
		{Type: input.EventMouseUp, MouseX: 0, MouseY: 0, Button: input.ButtonRight},
	})
	if faster.Flashing || faster.Pressed {
		t.Errorf("Flashing = %v, Pressed = %v after right release outside; want both false", faster.Flashing, faster.Pressed)
	}
	if got := h.game.Scale().Speed; got != 2 {
		t.Errorf("Speed = %v, want 2", got)
	}
}

func TestQuitSkipsRestOfBatch(t *testing.T) {
	h := newHarness(t, sphereData(threeSamples()...))
	before := len(h.display.viewports)
	h.game.handle([]input.Event{quit(), resize(900, 500), key(input.KeySpace)})

	if !h.game.quit {
		t.Error("quit = false after close request")
	}
	if got := len(h.display.viewports); got != before {
		t.Errorf("viewports = %d, want %d", got, before)
	}
	if h.game.Mode() != playback.Stopped {
		t.Errorf("Mode() = %v, want stopped", h.game.Mode())
	}
}

func TestFlashKeepsRestLoopTicking(t *testing.T) {
	data := sphereData(threeSamples()...)
	data.Speed = 30
	h := newHarness(t, data)
	faster := h.game.panel.Faster.Center
	h.source.push(click(0, faster.X, faster.Y)...)
	h.run(t)

	// Flash of 30/10 frames needs bounded waits before blocking again.
	bounded := 0
	for _, w := range h.source.waits {
		if w == h.game.config.IdleFrame {
			bounded++
		}
	}
	if bounded != 2 {
		t.Errorf("bounded waits = %d, want 2 (waits %v)", bounded, h.source.waits)
	}
	if got := h.game.Scale().Speed; got != 31 {
		t.Errorf("Speed = %v, want 31", got)
	}
}

type shotDisplay struct {
	*fakeDisplay
	shots int
}

func (d *shotDisplay) Screenshot() (string, error) {
	d.shots++
	return "shot.png", nil
}

func TestScreenshotKey(t *testing.T) {
	clock := &virtualClock{t: epoch}
	disp := &shotDisplay{fakeDisplay: &fakeDisplay{clock: clock}}
	g, err := New(DefaultConfig(), sphereData(threeSamples()...), disp, newScriptedSource(clock), WithClock(clock.now))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	g.key(input.KeyF12)
	if disp.shots != 1 {
		t.Errorf("Screenshot() calls = %d, want 1", disp.shots)
	}

	// Displays without capture support ignore the key.
	h := newHarness(t, sphereData(threeSamples()...))
	h.game.key(input.KeyF12)
	if h.game.quit || h.game.Mode() != playback.Stopped {
		t.Error("F12 changed state on a display without capture")
	}
}

func hasText(list ui2d.DrawList, text string) bool {
	for _, c := range list.Commands {
		if c.Kind == ui2d.CmdText && c.Text == text {
			return true
		}
	}
	return false
}

func findKind(list ui2d.DrawList, kind ui2d.CommandKind) (ui2d.Command, bool) {
	for _, c := range list.Commands {
		if c.Kind == kind {
			return c, true
		}
	}
	return ui2d.Command{}, false
}
