// Package game implements the replay loop: it owns the playback clock, the
// scale state and the control panel, turns events into control operations
// and composes one draw list per frame.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wec-replay/internal/engine/input"
	"github.com/Faultbox/wec-replay/internal/engine/ui2d"
	"github.com/Faultbox/wec-replay/internal/game/ui"
	"github.com/Faultbox/wec-replay/internal/geometry"
	"github.com/Faultbox/wec-replay/internal/logger"
	"github.com/Faultbox/wec-replay/internal/playback"
	"github.com/Faultbox/wec-replay/internal/scale"
	"github.com/Faultbox/wec-replay/pkg/dataset"
)

// Display executes draw lists and owns the output surface.
type Display interface {
	ui2d.TextMeasurer

	// GlyphHeight is the unscaled line height of the UI font in pixels.
	GlyphHeight() int

	// SetSize asks the window to change size.
	SetSize(width, height int)

	// Viewport adopts a new output size for subsequent frames.
	Viewport(width, height int)

	// Present draws the list and swaps buffers.
	Present(list *ui2d.DrawList)
}

// Screenshotter is implemented by displays that can save the last frame.
type Screenshotter interface {
	Screenshot() (string, error)
}

// Config holds loop and layout settings.
type Config struct {
	Width     int
	Height    int
	MinWidth  int
	MinHeight int

	// IdleFrame bounds the wait while paused or while a click flash runs.
	IdleFrame time.Duration

	Style     ui.Style
	FontMinPx float64
	FontMaxPx float64
}

// DefaultConfig returns the stock loop settings.
func DefaultConfig() Config {
	return Config{
		Width:     400,
		Height:    360,
		MinWidth:  400,
		MinHeight: 360,
		IdleFrame: 16 * time.Millisecond,
		Style:     ui.DefaultStyle(),
		FontMinPx: 30,
		FontMaxPx: 55,
	}
}

// Game is one replay session.
type Game struct {
	config  Config
	data    *dataset.Dataset
	model   *geometry.Model
	clock   *playback.Clock
	scale   scale.State
	panel   *ui.Panel
	display Display
	events  input.Source
	now     func() time.Time

	win       geometry.Window
	textScale float32
	list      *ui2d.DrawList
	quit      bool
	log       *zap.Logger
}

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces the wall clock used for pacing.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// New creates a stopped session. The buoy shape is validated here, before
// any frame is drawn.
func New(cfg Config, data *dataset.Dataset, display Display, events input.Source, opts ...Option) (*Game, error) {
	model, err := geometry.NewModel(data.Physical)
	if err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}

	g := &Game{
		config:  cfg,
		data:    data,
		model:   model,
		clock:   playback.NewClock(data.Series),
		scale:   scale.New(data.Scale, data.Speed),
		display: display,
		events:  events,
		now:     time.Now,
		list:    ui2d.NewDrawList(),
		log:     logger.Named("game"),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.panel = ui.NewPanel(ui.Actions{
		Start:   g.start,
		Pause:   g.pause,
		Stop:    g.stop,
		Bigger:  g.scaleUp,
		Smaller: g.scaleDown,
		Faster:  g.speedUp,
		Slower:  g.slowDown,
	}, cfg.Style)

	g.resize(cfg.Width, cfg.Height)

	g.log.Info("session ready",
		zap.Stringer("shape", data.Physical.Shape),
		zap.Int("samples", len(data.Series)),
		zap.Float64("end_time", data.EndTime()),
		zap.Float64("speed", g.scale.Speed),
		zap.Float64("scale", g.scale.Spatial),
	)
	return g, nil
}

// Run drives the loop until the window is closed. Each pass branches on the
// playback mode; every branch suspends in exactly one place and checks for
// a close request after it.
func (g *Game) Run() error {
	g.log.Info("starting replay loop")
	g.render()

	for !g.quit {
		switch g.clock.Mode() {
		case playback.Playing:
			g.step()
		case playback.Paused:
			g.wait(g.config.IdleFrame)
		default:
			timeout := input.Forever
			if g.panel.Flashing() {
				timeout = g.config.IdleFrame
			}
			g.wait(timeout)
		}
	}

	g.log.Info("replay loop finished",
		zap.Stringer("mode", g.clock.Mode()),
		zap.Int("index", g.clock.Index()),
	)
	return nil
}

// wait blocks for events, applies them and redraws.
func (g *Game) wait(timeout time.Duration) {
	g.handle(g.events.Wait(timeout))
	if !g.quit {
		g.render()
	}
}

// step shows one sample and waits out the rest of its interval.
func (g *Game) step() {
	if g.clock.Presented() && !g.clock.Advance() {
		g.render()
		return
	}

	start := g.now()
	g.handle(g.events.Poll())
	if g.quit {
		return
	}
	g.render()
	if g.clock.Mode() != playback.Playing {
		return
	}
	g.clock.MarkPresented()

	target := g.clock.TargetDelay(g.scale.Speed)
	g.pace(playback.Remaining(target, g.now().Sub(start)))
}

// pace waits for delay while servicing events. It returns early on close or
// when the mode leaves Playing; the unused part of the interval is dropped.
func (g *Game) pace(delay time.Duration) {
	deadline := g.now().Add(delay)
	for {
		remaining := deadline.Sub(g.now())
		if remaining <= 0 {
			return
		}

		events := g.events.Wait(remaining)
		if len(events) == 0 {
			continue
		}
		g.handle(events)
		if g.quit {
			return
		}
		g.render()
		if g.clock.Mode() != playback.Playing {
			return
		}
	}
}

// handle applies events in order. A close request anywhere in the batch
// ends the loop without applying the rest.
func (g *Game) handle(events []input.Event) {
	if input.Quit(events) {
		g.quit = true
		return
	}
	for _, e := range events {
		switch e.Type {
		case input.EventWindowResize:
			g.resize(e.Width, e.Height)
		case input.EventMouseMove:
			g.panel.PointerMove(float64(e.MouseX), float64(e.MouseY))
		case input.EventMouseDown:
			if e.Button == input.ButtonLeft {
				g.panel.PointerDown(float64(e.MouseX), float64(e.MouseY))
			}
		case input.EventMouseUp:
			if e.Button == input.ButtonLeft {
				g.panel.PointerUp(float64(e.MouseX), float64(e.MouseY), g.scale.Speed)
			} else {
				g.panel.PointerCancel(float64(e.MouseX), float64(e.MouseY))
			}
		case input.EventKeyDown:
			g.key(e.Key)
		}
	}
}

func (g *Game) key(k input.Key) {
	switch k {
	case input.KeySpace:
		if g.clock.Mode() == playback.Playing {
			g.pause()
		} else {
			g.start()
		}
	case input.KeyS:
		g.stop()
	case input.KeyPlus:
		g.scaleUp()
	case input.KeyMinus:
		g.scaleDown()
	case input.KeyBracketRight:
		g.speedUp()
	case input.KeyBracketLeft:
		g.slowDown()
	case input.KeyEscape:
		g.quit = true
	case input.KeyF12:
		g.screenshot()
	}
}

func (g *Game) screenshot() {
	s, ok := g.display.(Screenshotter)
	if !ok {
		return
	}
	path, err := s.Screenshot()
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// resize clamps the size to the minimum, pushing the clamped size back to
// the window, and relays out the panel.
func (g *Game) resize(width, height int) {
	w := max(width, g.config.MinWidth)
	h := max(height, g.config.MinHeight)
	if w != width || h != height {
		g.display.SetSize(w, h)
	}
	g.display.Viewport(w, h)

	g.win = geometry.Window{Width: float64(w), Height: float64(h)}
	g.relayout()

	g.log.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
}

func (g *Game) relayout() {
	px := ui.FontPixels(g.win.Width, g.config.FontMinPx, g.config.FontMaxPx)
	g.textScale = ui.TextScale(px, g.display.GlyphHeight())
	g.panel.Layout(g.display, g.textScale, g.win.Width, g.win.Height)
}

func (g *Game) start() { g.clock.Start() }

func (g *Game) pause() { g.clock.Pause() }

func (g *Game) stop() { g.clock.Stop() }

func (g *Game) scaleUp() {
	g.scale.ScaleUp()
	g.scaleChanged()
}

func (g *Game) scaleDown() {
	g.scale.ScaleDown()
	g.scaleChanged()
}

func (g *Game) scaleChanged() {
	g.relayout()
	g.log.Info("scale changed", zap.Float64("scale", g.scale.Spatial))
}

func (g *Game) speedUp() {
	g.scale.SpeedUp()
	g.log.Info("speed changed", zap.Float64("speed", g.scale.Speed))
}

func (g *Game) slowDown() {
	g.scale.SlowDown()
	g.log.Info("speed changed", zap.Float64("speed", g.scale.Speed))
}

// Mode returns the playback state.
func (g *Game) Mode() playback.Mode { return g.clock.Mode() }

// Scale returns the current scale state.
func (g *Game) Scale() scale.State { return g.scale }
