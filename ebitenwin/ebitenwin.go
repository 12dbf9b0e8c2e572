// Package ebitenwin runs the simulation on ebiten. Ebiten owns the loop, so
// instead of a render.Window this package provides an ebiten.Game whose
// Update and Draw forward to the simulation.
package ebitenwin

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rehoy/dvn/game"
)

// faceHeight is the pixel height of basicfont.Face7x13.
const faceHeight = 13

type Game struct {
	sim           *game.Sim
	width, height int
	face          text.Face
}

func New(sim *game.Sim, width, height int) *Game {
	return &Game{
		sim:    sim,
		width:  width,
		height: height,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.sim.Stop()
		return ebiten.Termination
	}
	g.sim.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Draw(&canvas{dst: screen, face: g.face})
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until ESC or the close button. The
// simulation is stopped either way.
func Run(g *Game, title string, tps int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(g)
	g.sim.Stop()
	if err != nil {
		return fmt.Errorf("ebitenwin: %w", err)
	}
	return nil
}

type canvas struct {
	dst  *ebiten.Image
	face text.Face
}

func (c *canvas) FillRect(x, y, w, h int32, clr color.RGBA) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *canvas) FillCircle(x, y int32, radius float32, clr color.RGBA) {
	vector.FillCircle(c.dst, float32(x), float32(y), radius, clr, true)
}

func (c *canvas) Text(s string, x, y, size int32, clr color.RGBA) {
	scale := float64(size) / faceHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, c.face, op)
}

func (c *canvas) FPS(x, y int32) {
	ebitenutil.DebugPrintAt(c.dst, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()), int(x), int(y))
}
