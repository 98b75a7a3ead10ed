//go:build sdl2

package sdl2

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/rasteriser/window"
)

func TestKeyCode(t *testing.T) {
	table := []struct {
		sym  sdl.Keycode
		code window.KeyCode
	}{
		{sdl.K_a, window.KeyA},
		{sdl.K_m, window.KeyM},
		{sdl.K_z, window.KeyZ},
		{sdl.K_0, window.Key0},
		{sdl.K_9, window.Key9},
		{sdl.K_ESCAPE, window.KeyEscape},
		{sdl.K_RETURN, window.KeyEnter},
		{sdl.K_F12, window.KeyF12},
	}

	for _, entry := range table {
		code, ok := keyCode(entry.sym)
		if !ok || code != entry.code {
			t.Fatalf("keyCode(%d): (got: %v, %v) (expected: %v, true)", entry.sym, code, ok, entry.code)
		}
	}
}

func TestKeyCodeUnmapped(t *testing.T) {
	for _, sym := range []sdl.Keycode{sdl.K_CAPSLOCK, sdl.K_LSHIFT, sdl.K_PRINTSCREEN} {
		if code, ok := keyCode(sym); ok {
			t.Fatalf("keyCode(%d): expected no mapping, got %v", sym, code)
		}
	}
}
