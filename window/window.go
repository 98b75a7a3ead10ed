package window

import (
	"errors"
	"fmt"

	"github.com/ushitora-anqou/rasteriser/colour"
	"github.com/ushitora-anqou/rasteriser/pixbuf"
	"github.com/ushitora-anqou/rasteriser/util"
)

var (
	ErrInvalidSize = errors.New("window: width and height must be positive")
	ErrClosed      = errors.New("window: closed")
)

type EventType uint8

const (
	EventKey EventType = iota
	EventClose
)

// Event is a window event reported by a Surface. Code and State are only
// meaningful for EventKey.
type Event struct {
	Type  EventType
	Code  KeyCode
	State KeyState
}

// Surface is what a backend provides to a Window: a GPU-side image of the
// window's size, a way to show it, and the window's event queue.
type Surface interface {
	// Upload overwrites the whole surface image. pixels holds width*height
	// RGB triples, bottom row first. Upload must not retain pixels.
	Upload(pixels []uint8, width, height int) error
	// Present shows the last uploaded image, scaled to the drawable area
	// with nearest-neighbor sampling.
	Present() error
	// PollEvent returns the next pending event without blocking. ok is false
	// once the queue is drained.
	PollEvent() (ev Event, ok bool)
	Destroy()
}

// InputHandler reacts to key transitions. It runs inside Window.Update, on
// the caller's goroutine.
type InputHandler interface {
	HandleKey(code KeyCode, state KeyState)
}

// InputHandlerFunc adapts a function to InputHandler.
type InputHandlerFunc func(code KeyCode, state KeyState)

func (f InputHandlerFunc) HandleKey(code KeyCode, state KeyState) {
	f(code, state)
}

type nopHandler struct{}

func (nopHandler) HandleKey(KeyCode, KeyState) {}

// Window owns a pixel buffer and the surface it is presented on. Draw calls
// use logical coordinates with the origin at the top-left corner; the buffer
// itself is stored bottom row first.
//
// A Window is not safe for concurrent use.
type Window struct {
	width, height int
	surface       Surface
	pixels        *pixbuf.Buffer
	handler       InputHandler
	closed        bool
	destroyed     bool
}

// New builds a Window on top of surface. It takes ownership of surface and
// destroys it if the size is rejected.
func New(width, height int, surface Surface) (*Window, error) {
	if width <= 0 || height <= 0 {
		if surface != nil {
			surface.Destroy()
		}
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Window{
		width:   width,
		height:  height,
		surface: surface,
		pixels:  pixbuf.Empty(width, height),
		handler: nopHandler{},
	}, nil
}

func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetInputHandler replaces the active input handler. A nil handler discards
// input.
func (w *Window) SetInputHandler(h InputHandler) {
	if h == nil {
		h = nopHandler{}
	}
	w.handler = h
}

// SetInputCallback is shorthand for SetInputHandler(InputHandlerFunc(fn)).
func (w *Window) SetInputCallback(fn func(code KeyCode, state KeyState)) {
	if fn == nil {
		w.SetInputHandler(nil)
		return
	}
	w.SetInputHandler(InputHandlerFunc(fn))
}

// DrawPixel writes c at logical (x, y). Coordinates outside the window are
// ignored.
func (w *Window) DrawPixel(x, y int, c colour.Colour) {
	if w.destroyed || y < 0 || y >= w.height {
		return
	}
	r, g, b := c.ToRaw()
	// The surface addresses rows from the bottom.
	w.pixels.Set(x, w.height-y-1, r, g, b)
}

// Pixel returns the colour stored at logical (x, y).
func (w *Window) Pixel(x, y int) (r, g, b uint8) {
	if w.destroyed || y < 0 || y >= w.height {
		return 0, 0, 0
	}
	return w.pixels.At(x, w.height-y-1)
}

// Update runs one frame: upload the pixel buffer, optionally start the next
// frame from a blank buffer, present, and dispatch every pending event to
// the input handler in arrival order. It reports false once the window has
// been asked to close; the window must not be used after that except for
// Close.
//
// A failed upload leaves the pixel buffer untouched. A failed present comes
// after the clear, so with clear set the drawn frame is already gone.
func (w *Window) Update(clear bool) (bool, error) {
	if w.closed || w.destroyed {
		return false, ErrClosed
	}

	if err := w.surface.Upload(w.pixels.Bytes(), w.width, w.height); err != nil {
		util.Logger().Warn("upload failed", "error", err)
		return false, fmt.Errorf("upload pixel buffer: %w", err)
	}

	if clear {
		w.pixels = pixbuf.Empty(w.width, w.height)
	}

	if err := w.surface.Present(); err != nil {
		util.Logger().Warn("present failed", "error", err)
		return false, fmt.Errorf("present: %w", err)
	}

	running := true
	for ev, ok := w.surface.PollEvent(); ok; ev, ok = w.surface.PollEvent() {
		switch ev.Type {
		case EventClose:
			running = false
		case EventKey:
			w.handler.HandleKey(ev.Code, ev.State)
		}
	}

	if !running {
		w.closed = true
		util.Logger().Debug("window close requested", "width", w.width, "height", w.height)
	}
	return running, nil
}

// Close releases the surface and the pixel buffer. It is safe to call more
// than once.
func (w *Window) Close() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.closed = true
	if w.surface != nil {
		w.surface.Destroy()
	}
	w.surface = nil
	w.pixels = nil
	util.Logger().Debug("window destroyed", "width", w.width, "height", w.height)
}
