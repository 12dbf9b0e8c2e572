// Package render describes what the simulation needs from a windowing
// library. The simulation only ever talks to these interfaces so it can be
// driven by raylib, ebiten or a test recorder.
package render

import "image/color"

// Canvas receives the drawing calls for one frame.
type Canvas interface {
	FillRect(x, y, w, h int32, c color.RGBA)
	FillCircle(x, y int32, radius float32, c color.RGBA)
	Text(s string, x, y, size int32, c color.RGBA)
	// FPS draws the current frame rate at (x, y).
	FPS(x, y int32)
}

// Window owns the frame clock. ShouldClose reports a close request from the
// user (window button or exit key); which keys count is up to the
// implementation.
type Window interface {
	Canvas
	ShouldClose() bool
	BeginFrame()
	EndFrame()
	Close()
}
