package input

import (
	"testing"

	"github.com/ushitora-anqou/rasteriser/window"
)

func TestTracker(t *testing.T) {
	var forwarded int
	tr := NewTracker(window.InputHandlerFunc(func(window.KeyCode, window.KeyState) {
		forwarded++
	}))

	tr.HandleKey(window.KeyLeft, window.Pressed)
	tr.HandleKey(window.KeyUp, window.Pressed)
	tr.HandleKey(window.KeyUp, window.Released)

	if !tr.Held(window.KeyLeft) {
		t.Fatalf("Left should be held")
	}
	if tr.Held(window.KeyUp) {
		t.Fatalf("Up should be released")
	}
	if forwarded != 3 {
		t.Fatalf("forwarded: (got: %d) (expected: 3)", forwarded)
	}
}

func TestTrackerAxis(t *testing.T) {
	table := []struct {
		held     []window.KeyCode
		expected int
	}{
		{nil, 0},
		{[]window.KeyCode{window.KeyLeft}, -1},
		{[]window.KeyCode{window.KeyRight}, 1},
		{[]window.KeyCode{window.KeyLeft, window.KeyRight}, 0},
	}

	for _, entry := range table {
		tr := NewTracker(nil)
		for _, code := range entry.held {
			tr.HandleKey(code, window.Pressed)
		}
		if got := tr.Axis(window.KeyLeft, window.KeyRight); got != entry.expected {
			t.Fatalf("Axis with %v held: (got: %d) (expected: %d)", entry.held, got, entry.expected)
		}
	}
}

func TestTrackerIgnoresUnknownCodes(t *testing.T) {
	tr := NewTracker(nil)
	tr.HandleKey(window.KeyCode(5000), window.Pressed)
	if tr.Held(window.KeyCode(5000)) {
		t.Fatalf("out-of-range code reported as held")
	}
}
