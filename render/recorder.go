package render

import (
	"fmt"
	"image/color"
)

type Op int

const (
	OpRect Op = iota
	OpCircle
	OpText
	OpFPS
	OpBegin
	OpEnd
)

func (o Op) String() string {
	switch o {
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	case OpFPS:
		return "fps"
	case OpBegin:
		return "begin"
	case OpEnd:
		return "end"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Call is one recorded drawing call.
type Call struct {
	Op         Op
	X, Y, W, H int32
	Radius     float32
	Size       int32
	Text       string
	Color      color.RGBA
}

// Recorder is a headless Window that keeps every call it receives. It closes
// itself after CloseAfter frames when CloseAfter is positive.
type Recorder struct {
	Calls      []Call
	Frames     int
	CloseAfter int
	Closed     bool
}

func (r *Recorder) FillRect(x, y, w, h int32, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(x, y int32, radius float32, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, X: x, Y: y, Radius: radius, Color: c})
}

func (r *Recorder) Text(s string, x, y, size int32, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: OpText, X: x, Y: y, Size: size, Text: s, Color: c})
}

func (r *Recorder) FPS(x, y int32) {
	r.Calls = append(r.Calls, Call{Op: OpFPS, X: x, Y: y})
}

func (r *Recorder) ShouldClose() bool {
	return r.CloseAfter > 0 && r.Frames >= r.CloseAfter
}

func (r *Recorder) BeginFrame() {
	r.Calls = append(r.Calls, Call{Op: OpBegin})
}

func (r *Recorder) EndFrame() {
	r.Calls = append(r.Calls, Call{Op: OpEnd})
	r.Frames++
}

func (r *Recorder) Close() {
	r.Closed = true
}

// Ops returns just the operation sequence, handy for order checks.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}
