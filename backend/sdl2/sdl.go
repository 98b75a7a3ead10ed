//go:build sdl2

package sdl2

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ushitora-anqou/rasteriser/pixbuf"
	"github.com/ushitora-anqou/rasteriser/util"
	"github.com/ushitora-anqou/rasteriser/window"
)

type Options struct {
	VSync bool
}

type Surface struct {
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	width, height int
}

func NewSurface(width, height int, title string, opts Options) (*Surface, error) {
	// Video is reference counted by SDL; Destroy releases this one.
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initialize SDL video: %w", err)
	}

	// Nearest-neighbor scaling. It applies to textures created after this.
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	wind, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, fmt.Errorf("create window: %w", err)
	}

	var flags uint32 = sdl.RENDERER_ACCELERATED
	if opts.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(wind, -1, flags)
	if err != nil {
		wind.Destroy()
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height),
	)
	if err != nil {
		renderer.Destroy()
		wind.Destroy()
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, fmt.Errorf("create texture: %w", err)
	}

	util.Logger().Debug("SDL surface ready", "width", width, "height", height, "vsync", opts.VSync)

	return &Surface{
		window:   wind,
		renderer: renderer,
		texture:  texture,
		width:    width,
		height:   height,
	}, nil
}

func (s *Surface) Upload(pixels []uint8, width, height int) error {
	rowBytes := width * pixbuf.BytesPerPixel
	if width != s.width || height != s.height || len(pixels) != rowBytes*height {
		return fmt.Errorf(
			"Invalid upload: expected %dx%d, got %dx%d (%d bytes)",
			s.width, s.height, width, height, len(pixels),
		)
	}

	dst, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return err
	}
	flipRows(dst, pitch, pixels, width, height)
	s.texture.Unlock()
	return nil
}

func (s *Surface) Present() error {
	if err := s.renderer.Clear(); err != nil {
		return err
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return err
	}
	s.renderer.Present()
	return nil
}

func (s *Surface) PollEvent() (window.Event, bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return window.Event{Type: window.EventClose}, true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				return window.Event{Type: window.EventClose}, true
			}

		case *sdl.KeyboardEvent:
			code, ok := keyCode(e.Keysym.Sym)
			if !ok {
				continue
			}
			state := window.Pressed
			if e.Type == sdl.KEYUP {
				state = window.Released
			}
			return window.Event{Type: window.EventKey, Code: code, State: state}, true
		}
	}
	return window.Event{}, false
}

func (s *Surface) Destroy() {
	if s.window == nil {
		return
	}
	s.texture.Destroy()
	s.renderer.Destroy()
	s.window.Destroy()
	s.texture, s.renderer, s.window = nil, nil, nil
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}
