// Package sdl2 implements window.Surface with SDL2: a native window, an
// accelerated renderer and a streaming RGB24 texture the size of the
// window.
//
// The implementation is only built with the sdl2 build tag, which needs
// cgo and the SDL2 development files.
package sdl2
