package balls

import (
	"image/color"

	"github.com/rehoy/dvn/cells"
	"github.com/rehoy/dvn/render"
)

type Point struct {
	X float32
	Y float32
}

type Velocity struct {
	X float32
	Y float32
}

// Ball is a moving circle. Kind is the side it plays for: cells already of
// that state are left alone, the others get flipped.
type Ball struct {
	Center Point
	Radius float32
	V      Velocity
	Color  color.RGBA
	Kind   cells.State
}

func New(kind cells.State, x, y, radius float32, v Velocity, c color.RGBA) *Ball {
	return &Ball{
		Center: Point{X: x, Y: y},
		Radius: radius,
		V:      v,
		Color:  c,
		Kind:   kind,
	}
}

// UpdatePosition advances the ball by one velocity step.
// There is no substepping, so a fast enough ball can skip over a cell.
func (b *Ball) UpdatePosition() {
	b.Center.X += b.V.X
	b.Center.Y += b.V.Y
}

// ReflectOnWindowBounds bounces the ball off the window edges. Each axis is
// checked on its own: when the ball reaches an edge the velocity on that
// axis is negated and one step of the new velocity is applied.
func (b *Ball) ReflectOnWindowBounds(width, height float32) {
	if b.Center.X >= width-b.Radius || b.Center.X <= b.Radius {
		b.V.X = -b.V.X
		b.Center.X += b.V.X
	}
	if b.Center.Y >= height-b.Radius || b.Center.Y <= b.Radius {
		b.V.Y = -b.V.Y
		b.Center.Y += b.V.Y
	}
}

func (b *Ball) Draw(c render.Canvas) {
	c.FillCircle(int32(b.Center.X), int32(b.Center.Y), b.Radius, b.Color)
}
