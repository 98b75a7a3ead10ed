//go:build sdl2

package sdl2

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/rasteriser/window"
)

var keymap = map[sdl.Keycode]window.KeyCode{
	sdl.K_ESCAPE:    window.KeyEscape,
	sdl.K_RETURN:    window.KeyEnter,
	sdl.K_KP_ENTER:  window.KeyEnter,
	sdl.K_SPACE:     window.KeySpace,
	sdl.K_BACKSPACE: window.KeyBackspace,
	sdl.K_TAB:       window.KeyTab,
	sdl.K_DELETE:    window.KeyDelete,
	sdl.K_UP:        window.KeyUp,
	sdl.K_DOWN:      window.KeyDown,
	sdl.K_LEFT:      window.KeyLeft,
	sdl.K_RIGHT:     window.KeyRight,
	sdl.K_HOME:      window.KeyHome,
	sdl.K_END:       window.KeyEnd,
	sdl.K_F1:        window.KeyF1,
	sdl.K_F2:        window.KeyF2,
	sdl.K_F3:        window.KeyF3,
	sdl.K_F4:        window.KeyF4,
	sdl.K_F5:        window.KeyF5,
	sdl.K_F6:        window.KeyF6,
	sdl.K_F7:        window.KeyF7,
	sdl.K_F8:        window.KeyF8,
	sdl.K_F9:        window.KeyF9,
	sdl.K_F10:       window.KeyF10,
	sdl.K_F11:       window.KeyF11,
	sdl.K_F12:       window.KeyF12,
}

func init() {
	// SDL keycodes for letters and digits are their lowercase ASCII values.
	for i := 0; i < 26; i++ {
		keymap[sdl.Keycode('a'+i)] = window.KeyA + window.KeyCode(i)
	}
	for i := 0; i < 10; i++ {
		keymap[sdl.Keycode('0'+i)] = window.Key0 + window.KeyCode(i)
	}
}

// keyCode reports false for keys that have no window.KeyCode.
func keyCode(sym sdl.Keycode) (window.KeyCode, bool) {
	code, ok := keymap[sym]
	return code, ok
}
