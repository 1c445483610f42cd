package window

import (
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/wec-replay/internal/engine/input"
)

// Events pumps the SDL event queue. It implements input.Source.
type Events struct {
	events []input.Event
}

// NewEvents creates an event pump. SDL must be initialized.
func NewEvents() *Events {
	return &Events{events: make([]input.Event, 0, 16)}
}

// Poll drains pending SDL events.
func (p *Events) Poll() []input.Event {
	p.events = p.events[:0]
	p.drain()
	return p.events
}

// Wait blocks up to timeout for the first event, then drains the rest.
func (p *Events) Wait(timeout time.Duration) []input.Event {
	p.events = p.events[:0]

	var first sdl.Event
	switch {
	case timeout < 0:
		first = sdl.WaitEvent()
	case timeout == 0:
	default:
		ms := int(math.Ceil(float64(timeout) / float64(time.Millisecond)))
		first = sdl.WaitEventTimeout(ms)
	}
	if first != nil {
		p.push(first)
	}

	p.drain()
	return p.events
}

func (p *Events) drain() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		p.push(event)
	}
}

// push converts an SDL event and appends it. Unhandled events are dropped.
func (p *Events) push(event sdl.Event) {
	if e, ok := translate(event); ok {
		p.events = append(p.events, e)
	}
}

func translate(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Event{Type: input.EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return input.Event{
				Type:   input.EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		case sdl.WINDOWEVENT_CLOSE:
			return input.Event{Type: input.EventQuit}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return input.Event{Type: input.EventKeyDown, Key: keyFor(e.Keysym.Sym)}, true
		}

	case *sdl.MouseMotionEvent:
		return input.Event{
			Type:   input.EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
		}, true

	case *sdl.MouseButtonEvent:
		ev := input.Event{
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Type = input.EventMouseDown
		} else {
			ev.Type = input.EventMouseUp
		}
		return ev, true
	}

	return input.Event{}, false
}

func keyFor(sym sdl.Keycode) input.Key {
	switch sym {
	case sdl.K_SPACE:
		return input.KeySpace
	case sdl.K_s:
		return input.KeyS
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
		return input.KeyPlus
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		return input.KeyMinus
	case sdl.K_LEFTBRACKET:
		return input.KeyBracketLeft
	case sdl.K_RIGHTBRACKET:
		return input.KeyBracketRight
	case sdl.K_ESCAPE:
		return input.KeyEscape
	case sdl.K_F12:
		return input.KeyF12
	default:
		return input.KeyUnknown
	}
}
