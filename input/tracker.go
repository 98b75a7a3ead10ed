package input

import "github.com/ushitora-anqou/rasteriser/window"

// Tracker is a window.InputHandler that remembers which keys are held.
// Held state changes only inside Window.Update.
type Tracker struct {
	held [window.KeyF12 + 1]bool
	next window.InputHandler
}

// NewTracker returns a Tracker that forwards every event to next after
// recording it. next may be nil.
func NewTracker(next window.InputHandler) *Tracker {
	return &Tracker{next: next}
}

func (t *Tracker) HandleKey(code window.KeyCode, state window.KeyState) {
	if int(code) < len(t.held) {
		t.held[code] = state == window.Pressed
	}
	if t.next != nil {
		t.next.HandleKey(code, state)
	}
}

func (t *Tracker) Held(code window.KeyCode) bool {
	if int(code) >= len(t.held) {
		return false
	}
	return t.held[code]
}

// Axis returns -1, 0 or 1 depending on which of neg and pos are held.
func (t *Tracker) Axis(neg, pos window.KeyCode) int {
	v := 0
	if t.Held(neg) {
		v--
	}
	if t.Held(pos) {
		v++
	}
	return v
}
