//go:build !sdl2

package main

// Without SDL the only backend that can open a window is headless.
const defaultDriver = "headless"
