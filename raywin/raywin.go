// Package raywin is the raylib implementation of render.Window.
package raywin

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rehoy/dvn/render"
)

var _ render.Window = (*Window)(nil)

var ErrNotReady = errors.New("raywin: window could not be created")

// Window is the single raylib window of the process. ESC and the window
// close button both make ShouldClose report true.
type Window struct {
	closed bool
}

// Open creates the window with 4x MSAA and sets the frame rate cap.
func Open(width, height int32, title string, fps int32) (*Window, error) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	if !rl.IsWindowReady() {
		return nil, ErrNotReady
	}
	rl.SetTargetFPS(fps)
	return &Window{}, nil
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) BeginFrame() {
	rl.BeginDrawing()
}

func (w *Window) EndFrame() {
	rl.EndDrawing()
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	rl.CloseWindow()
}

func (w *Window) FillRect(x, y, width, height int32, c color.RGBA) {
	rl.DrawRectangle(x, y, width, height, c)
}

func (w *Window) FillCircle(x, y int32, radius float32, c color.RGBA) {
	rl.DrawCircle(x, y, radius, c)
}

func (w *Window) Text(s string, x, y, size int32, c color.RGBA) {
	rl.DrawText(s, x, y, size, c)
}

func (w *Window) FPS(x, y int32) {
	rl.DrawFPS(x, y)
}
