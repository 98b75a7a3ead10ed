// Package headless provides a window.Surface that never touches a display.
// Every uploaded frame is kept in memory and events are fed in by the caller.
package headless

import (
	"fmt"

	"github.com/ushitora-anqou/rasteriser/pixbuf"
	"github.com/ushitora-anqou/rasteriser/window"
)

// Config controls a headless surface.
type Config struct {
	// CloseAfter queues a close request once that many frames have been
	// presented. Zero means never.
	CloseAfter uint64
}

type Surface struct {
	cfg       Config
	width     int
	height    int
	frame     []uint8
	presented uint64
	events    []window.Event
	destroyed bool
}

func NewSurface(width, height int, cfg Config) *Surface {
	return &Surface{
		cfg:    cfg,
		width:  width,
		height: height,
		frame:  make([]uint8, width*height*pixbuf.BytesPerPixel),
	}
}

func (s *Surface) Upload(pixels []uint8, width, height int) error {
	if s.destroyed {
		return fmt.Errorf("headless: upload to destroyed surface")
	}
	if width != s.width || height != s.height || len(pixels) != len(s.frame) {
		return fmt.Errorf(
			"headless: invalid upload: expected %dx%d (%d bytes), got %dx%d (%d bytes)",
			s.width, s.height, len(s.frame), width, height, len(pixels),
		)
	}
	copy(s.frame, pixels)
	return nil
}

func (s *Surface) Present() error {
	if s.destroyed {
		return fmt.Errorf("headless: present on destroyed surface")
	}
	s.presented++
	if s.cfg.CloseAfter > 0 && s.presented == s.cfg.CloseAfter {
		s.events = append(s.events, window.Event{Type: window.EventClose})
	}
	return nil
}

func (s *Surface) PollEvent() (window.Event, bool) {
	if len(s.events) == 0 {
		return window.Event{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func (s *Surface) Destroy() {
	s.destroyed = true
	s.frame = nil
	s.events = nil
}

// Push queues events for the next PollEvent calls.
func (s *Surface) Push(events ...window.Event) {
	s.events = append(s.events, events...)
}

// PushKey queues a single key event.
func (s *Surface) PushKey(code window.KeyCode, state window.KeyState) {
	s.Push(window.Event{Type: window.EventKey, Code: code, State: state})
}

// RequestClose queues a close request.
func (s *Surface) RequestClose() {
	s.Push(window.Event{Type: window.EventClose})
}

// Presented returns the number of frames presented so far.
func (s *Surface) Presented() uint64 { return s.presented }

// Pixel returns the colour at logical (x, y) of the last uploaded frame,
// which is stored bottom row first.
func (s *Surface) Pixel(x, y int) (r, g, b uint8) {
	if s.destroyed || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0, 0, 0
	}
	off := ((s.height-y-1)*s.width + x) * pixbuf.BytesPerPixel
	return s.frame[off+0], s.frame[off+1], s.frame[off+2]
}

// Frame returns a copy of the last uploaded frame in upload order.
func (s *Surface) Frame() []uint8 {
	return append([]uint8(nil), s.frame...)
}
