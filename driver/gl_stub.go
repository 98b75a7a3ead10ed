//go:build !sdl2

package driver

import "fmt"

func newGLDriver(options) (Driver, error) {
	return nil, fmt.Errorf("%w: gl driver requires building with -tags sdl2", ErrNotImplemented)
}
