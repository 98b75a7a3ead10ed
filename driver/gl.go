//go:build sdl2

package driver

import (
	"fmt"

	"github.com/ushitora-anqou/rasteriser/backend/sdl2"
	"github.com/ushitora-anqou/rasteriser/util"
	"github.com/ushitora-anqou/rasteriser/window"
)

type glDriver struct {
	opts sdl2.Options
}

func newGLDriver(o options) (Driver, error) {
	return &glDriver{opts: sdl2.Options{VSync: o.vsync}}, nil
}

func (d *glDriver) Kind() Kind { return GL }

func (d *glDriver) CreateWindow(width, height int, title string) (*window.Window, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	surface, err := sdl2.NewSurface(width, height, title, d.opts)
	if err != nil {
		util.Logger().Warn("GL window creation failed", "error", err)
		return nil, fmt.Errorf("gl driver: %w", err)
	}
	wind, err := window.New(width, height, surface)
	if err != nil {
		return nil, err
	}
	util.Logger().Info("window created", "driver", GL, "width", width, "height", height, "title", title)
	return wind, nil
}
