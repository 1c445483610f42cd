// Package input defines the window and pointer events consumed by the game
// loop and the source interface that delivers them.
package input

import "time"

// EventType identifies an event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Key is a keyboard key the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyS
	KeyPlus
	KeyMinus
	KeyBracketLeft
	KeyBracketRight
	KeyEscape
	KeyF12
)

// Mouse buttons.
const (
	ButtonLeft  uint8 = 1
	ButtonRight uint8 = 3
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Forever makes Wait block until an event arrives.
const Forever time.Duration = -1

// Source delivers events to the game loop. Both methods drain every pending
// event; the returned slice is only valid until the next call.
type Source interface {
	// Poll returns pending events without blocking.
	Poll() []Event

	// Wait blocks until at least one event is pending or timeout elapses,
	// then drains. A negative timeout waits indefinitely.
	Wait(timeout time.Duration) []Event
}

// Quit reports whether events contain a close request.
func Quit(events []Event) bool {
	for _, e := range events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}
