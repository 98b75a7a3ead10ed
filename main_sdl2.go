//go:build sdl2

package main

import "runtime"

const defaultDriver = "gl"

func init() {
	// SDL wants every video call on the thread that initialized it.
	runtime.LockOSThread()
}
