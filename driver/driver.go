// Package driver selects a window backend and creates windows on it.
package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ushitora-anqou/rasteriser/backend/headless"
	"github.com/ushitora-anqou/rasteriser/util"
	"github.com/ushitora-anqou/rasteriser/window"
)

var (
	ErrNotImplemented = errors.New("driver: not implemented")
	ErrUnknownKind    = errors.New("driver: unknown kind")
)

// Kind names a backend.
type Kind int

const (
	// GL presents through a hardware accelerated SDL2 renderer.
	GL Kind = iota
	// Text is reserved for a terminal backend. It is not implemented.
	Text
	// Headless keeps frames in memory and never opens a display.
	Headless
)

var kindNames = []string{
	GL:       "gl",
	Text:     "text",
	Headless: "headless",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Driver creates windows of one backend kind.
type Driver interface {
	Kind() Kind
	// CreateWindow returns a fully provisioned window or an error; it never
	// returns a partially built one.
	CreateWindow(width, height int, title string) (*window.Window, error)
}

// Option configures Create.
type Option func(*options)

type options struct {
	vsync      bool
	closeAfter uint64
}

// WithVSync makes GL windows wait for vertical sync when presenting.
func WithVSync(enabled bool) Option {
	return func(o *options) {
		o.vsync = enabled
	}
}

// WithHeadlessCloseAfter makes headless windows report a close request
// after n presented frames.
func WithHeadlessCloseAfter(n uint64) Option {
	return func(o *options) {
		o.closeAfter = n
	}
}

// Create returns the driver for kind. Kinds without an implementation
// yield ErrNotImplemented.
func Create(kind Kind, opts ...Option) (Driver, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case GL:
		return newGLDriver(o)
	case Text:
		return nil, fmt.Errorf("%w: %s driver", ErrNotImplemented, kind)
	case Headless:
		return &headlessDriver{cfg: headless.Config{CloseAfter: o.closeAfter}}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", window.ErrInvalidSize, width, height)
	}
	return nil
}

type headlessDriver struct {
	cfg headless.Config
}

func (d *headlessDriver) Kind() Kind { return Headless }

func (d *headlessDriver) CreateWindow(width, height int, title string) (*window.Window, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	wind, err := window.New(width, height, headless.NewSurface(width, height, d.cfg))
	if err != nil {
		return nil, err
	}
	util.Logger().Info("window created", "driver", Headless, "width", width, "height", height, "title", title)
	return wind, nil
}
