// Package config holds the compile-time settings of the day/night toy.
// Nothing here is read from flags, files or the environment.
package config

const (
	Title = "DvN (Day vs Night)"

	Width  = 800
	Height = Width

	// CellCount is the number of cells in each row and column.
	CellCount = 20
	CellSize  = Width / CellCount

	BallRadius   = Width/40 - 5
	BallInitialY = Height / 2

	TargetFPS = 60

	// FlushEvery is how many frames the journal buffers before it is
	// written out, ten seconds at the target rate.
	FlushEvery = TargetFPS * 10

	LogPath = "dvn.log"
)

// Overlay placement, in window pixels.
const (
	FPSX = 20
	FPSY = 20

	HintText = "Press ESC to exit"
	HintX    = 20
	HintY    = 45
	HintSize = 20
)

// BallStart is the initial state of one ball.
type BallStart struct {
	X, Y   float32
	VX, VY float32
}

// Config describes one world. Default returns the values the program runs
// with; tests build smaller worlds by hand.
type Config struct {
	Width, Height float32
	CellCount     int
	CellSize      float32
	BallRadius    float32

	// FlushEvery is the journal flush period in frames; zero disables
	// periodic flushing.
	FlushEvery int

	Day   BallStart
	Night BallStart
}

func Default() Config {
	return Config{
		Width:      Width,
		Height:     Height,
		CellCount:  CellCount,
		CellSize:   CellSize,
		BallRadius: BallRadius,
		FlushEvery: FlushEvery,
		Day: BallStart{
			X:  Width / 4.0 * 3.0,
			Y:  BallInitialY,
			VX: -12,
			VY: 9,
		},
		Night: BallStart{
			X:  Width / 4.0,
			Y:  BallInitialY,
			VX: 8,
			VY: -8,
		},
	}
}
