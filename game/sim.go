package game

import (
	"github.com/rehoy/dvn/balls"
	"github.com/rehoy/dvn/cells"
	"github.com/rehoy/dvn/config"
	"github.com/rehoy/dvn/palette"
	"github.com/rehoy/dvn/render"
)

type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	if s == Terminating {
		return "terminating"
	}
	return "running"
}

// Journal receives simulation events. *logger.Logger satisfies it.
type Journal interface {
	Logf(format string, args ...interface{})
	LogError(msg string, err error)
	Flush() error
}

type nopJournal struct{}

func (nopJournal) Logf(string, ...interface{}) {}
func (nopJournal) LogError(string, error)      {}
func (nopJournal) Flush() error                { return nil }

// Sim owns the grid and both balls. All methods must be called from the
// goroutine that drives the frames.
type Sim struct {
	width, height float32
	flushEvery    int

	grid  *cells.Grid
	day   *balls.Ball
	night *balls.Ball

	state   State
	frame   int
	journal Journal
}

// New builds a world from cfg with the grid already split into halves.
// A nil journal discards events.
func New(cfg config.Config, journal Journal) *Sim {
	if journal == nil {
		journal = nopJournal{}
	}
	grid := cells.NewGrid(cfg.CellCount, cfg.CellSize)
	grid.Initialize()

	return &Sim{
		width:      cfg.Width,
		height:     cfg.Height,
		flushEvery: cfg.FlushEvery,
		grid:       grid,
		day: balls.New(cells.Day, cfg.Day.X, cfg.Day.Y, cfg.BallRadius,
			balls.Velocity{X: cfg.Day.VX, Y: cfg.Day.VY}, palette.DayBall),
		night: balls.New(cells.Night, cfg.Night.X, cfg.Night.Y, cfg.BallRadius,
			balls.Velocity{X: cfg.Night.VX, Y: cfg.Night.VY}, palette.NightBall),
		state:   Running,
		journal: journal,
	}
}

func (s *Sim) Grid() *cells.Grid  { return s.grid }
func (s *Sim) Day() *balls.Ball   { return s.day }
func (s *Sim) Night() *balls.Ball { return s.night }
func (s *Sim) State() State       { return s.state }
func (s *Sim) Frame() int         { return s.frame }

// Update runs one frame of physics, day ball first. It does nothing once
// the simulation is terminating.
func (s *Sim) Update() {
	if s.state != Running {
		return
	}
	s.step(s.day)
	s.step(s.night)
	s.frame++

	if s.flushEvery > 0 && s.frame%s.flushEvery == 0 {
		if err := s.journal.Flush(); err != nil {
			s.journal.LogError("flush journal", err)
		}
	}
}

func (s *Sim) step(b *balls.Ball) {
	b.UpdatePosition()
	b.ReflectOnWindowBounds(s.width, s.height)
	if row, col, ok := Resolve(b, b.Kind, s.grid); ok {
		s.journal.Logf("frame=%d %s ball flipped cell(%d,%d) v=(%g,%g)",
			s.frame, b.Kind, row, col, b.V.X, b.V.Y)
	}
}

// Draw issues one frame: cells, day ball, night ball, frame rate, exit hint.
func (s *Sim) Draw(c render.Canvas) {
	s.grid.Draw(c, palette.DayBackground, palette.NightBackground)
	s.day.Draw(c)
	s.night.Draw(c)

	c.FPS(config.FPSX, config.FPSY)
	c.Text(config.HintText, config.HintX, config.HintY, config.HintSize, palette.Hint)
}

// Run drives the simulation from w's frame clock until w asks to close,
// then stops the simulation and closes w.
func (s *Sim) Run(w render.Window) {
	for s.state == Running && !w.ShouldClose() {
		s.Update()

		w.BeginFrame()
		s.Draw(w)
		w.EndFrame()
	}
	s.Stop()
	w.Close()
}

// Stop moves the simulation to Terminating and writes a summary to the
// journal. Calling it again has no effect.
func (s *Sim) Stop() {
	if s.state == Terminating {
		return
	}
	s.state = Terminating
	s.journal.Logf("stopped after %d frames: day=%d night=%d",
		s.frame, s.grid.Count(cells.Day), s.grid.Count(cells.Night))
	if err := s.journal.Flush(); err != nil {
		s.journal.LogError("flush journal", err)
	}
}
