package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rehoy/dvn/balls"
	"github.com/rehoy/dvn/cells"
	"github.com/rehoy/dvn/config"
	"github.com/rehoy/dvn/palette"
	"github.com/rehoy/dvn/render"
)

type fakeJournal struct {
	lines    []string
	errs     []string
	flushes  int
	flushErr error
}

func (j *fakeJournal) Logf(format string, args ...interface{}) {
	j.lines = append(j.lines, fmt.Sprintf(format, args...))
}

func (j *fakeJournal) LogError(msg string, err error) {
	j.errs = append(j.errs, fmt.Sprintf("%s: %v", msg, err))
}

func (j *fakeJournal) Flush() error {
	j.flushes++
	return j.flushErr
}

// smallConfig is a 4x4 board of 10px cells where both balls hit a cell on
// the first frame.
func smallConfig() config.Config {
	return config.Config{
		Width:      40,
		Height:     40,
		CellCount:  4,
		CellSize:   10,
		BallRadius: 3,
		Day:        config.BallStart{X: 21, Y: 20, VX: -5, VY: 0},
		Night:      config.BallStart{X: 35, Y: 5, VX: 1, VY: 0},
	}
}

func TestNew_DefaultWorld(t *testing.T) {
	s := New(config.Default(), nil)
	if s.State() != Running {
		t.Fatalf("initial state = %v, want running", s.State())
	}
	g := s.Grid()
	if g.Size() != config.CellCount || g.Count(cells.Day) != config.CellCount*config.CellCount/2 {
		t.Fatalf("grid not split in halves: size=%d day=%d", g.Size(), g.Count(cells.Day))
	}
	day, night := s.Day(), s.Night()
	if day.Center != (balls.Point{X: 600, Y: 400}) || day.V != (balls.Velocity{X: -12, Y: 9}) || day.Kind != cells.Day {
		t.Fatalf("unexpected day ball %+v", day)
	}
	if night.Center != (balls.Point{X: 200, Y: 400}) || night.V != (balls.Velocity{X: 8, Y: -8}) || night.Kind != cells.Night {
		t.Fatalf("unexpected night ball %+v", night)
	}
	if day.Radius != 15 || day.Color != palette.DayBall || night.Color != palette.NightBall {
		t.Fatal("unexpected radius or colors")
	}
}

func TestUpdate_FirstFrameDefaultWorld(t *testing.T) {
	s := New(config.Default(), nil)
	s.Update()

	// Both balls start deep inside their own half, so they only move.
	if got := s.Day().Center; got != (balls.Point{X: 588, Y: 409}) {
		t.Fatalf("day center = %+v", got)
	}
	if got := s.Night().Center; got != (balls.Point{X: 208, Y: 392}) {
		t.Fatalf("night center = %+v", got)
	}
	if s.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", s.Frame())
	}
	if s.Grid().Count(cells.Day) != 200 {
		t.Fatal("no cell should flip on the first frame")
	}
}

func TestUpdate_JournalsFlips(t *testing.T) {
	j := &fakeJournal{}
	s := New(smallConfig(), j)
	s.Update()

	want := []string{
		"frame=0 day ball flipped cell(1,1) v=(5,0)",
		"frame=0 night ball flipped cell(0,3) v=(-1,0)",
	}
	if len(j.lines) != len(want) {
		t.Fatalf("journal = %q, want %q", j.lines, want)
	}
	for i := range want {
		if j.lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, j.lines[i], want[i])
		}
	}
	if s.Grid().Get(1, 1) != cells.Day || s.Grid().Get(0, 3) != cells.Night {
		t.Fatal("grid does not reflect the flips")
	}
}

func TestUpdate_PeriodicFlush(t *testing.T) {
	cfg := smallConfig()
	cfg.FlushEvery = 2
	j := &fakeJournal{}
	s := New(cfg, j)
	for i := 0; i < 5; i++ {
		s.Update()
	}
	if j.flushes != 2 {
		t.Fatalf("flushes = %d, want 2", j.flushes)
	}
}

func TestUpdate_FlushErrorIsReported(t *testing.T) {
	cfg := smallConfig()
	cfg.FlushEvery = 1
	j := &fakeJournal{flushErr: errors.New("disk full")}
	s := New(cfg, j)
	s.Update()
	if len(j.errs) != 1 || j.errs[0] != "flush journal: disk full" {
		t.Fatalf("errors = %q", j.errs)
	}
	if s.State() != Running {
		t.Fatal("a flush error must not stop the simulation")
	}
}

func TestDraw_Order(t *testing.T) {
	s := New(config.Default(), nil)
	rec := &render.Recorder{}
	s.Draw(rec)

	cellCount := config.CellCount * config.CellCount
	if len(rec.Calls) != cellCount+4 {
		t.Fatalf("got %d calls, want %d", len(rec.Calls), cellCount+4)
	}
	for i := 0; i < cellCount; i++ {
		if rec.Calls[i].Op != render.OpRect {
			t.Fatalf("call %d is %v, want rect", i, rec.Calls[i].Op)
		}
	}
	day, night := rec.Calls[cellCount], rec.Calls[cellCount+1]
	if day.Op != render.OpCircle || day.Color != palette.DayBall || day.X != 600 {
		t.Fatalf("day ball call = %+v", day)
	}
	if night.Op != render.OpCircle || night.Color != palette.NightBall || night.X != 200 {
		t.Fatalf("night ball call = %+v", night)
	}
	fps := rec.Calls[cellCount+2]
	if fps.Op != render.OpFPS || fps.X != 20 || fps.Y != 20 {
		t.Fatalf("fps call = %+v", fps)
	}
	hint := rec.Calls[cellCount+3]
	if hint.Op != render.OpText || hint.Text != "Press ESC to exit" || hint.X != 20 || hint.Y != 45 ||
		hint.Size != 20 || hint.Color != palette.Hint {
		t.Fatalf("hint call = %+v", hint)
	}
}

func TestRun_StopsWhenWindowCloses(t *testing.T) {
	j := &fakeJournal{}
	s := New(smallConfig(), j)
	rec := &render.Recorder{CloseAfter: 3}
	s.Run(rec)

	if s.Frame() != 3 || rec.Frames != 3 {
		t.Fatalf("frames sim=%d window=%d, want 3", s.Frame(), rec.Frames)
	}
	if s.State() != Terminating || !rec.Closed {
		t.Fatalf("state=%v closed=%t", s.State(), rec.Closed)
	}

	begins, ends := 0, 0
	for _, op := range rec.Ops() {
		switch op {
		case render.OpBegin:
			begins++
		case render.OpEnd:
			ends++
		}
	}
	if begins != 3 || ends != 3 {
		t.Fatalf("begin=%d end=%d, want 3 each", begins, ends)
	}
	if rec.Calls[0].Op != render.OpBegin || rec.Calls[len(rec.Calls)-1].Op != render.OpEnd {
		t.Fatal("drawing must be bracketed by begin/end")
	}

	last := j.lines[len(j.lines)-1]
	want := fmt.Sprintf("stopped after 3 frames: day=%d night=%d",
		s.Grid().Count(cells.Day), s.Grid().Count(cells.Night))
	if last != want {
		t.Fatalf("summary = %q, want %q", last, want)
	}
	if j.flushes != 1 {
		t.Fatalf("flushes = %d, want 1 on stop", j.flushes)
	}
}

func TestRun_WindowAlreadyClosing(t *testing.T) {
	s := New(config.Default(), nil)
	rec := &render.Recorder{CloseAfter: 1, Frames: 1}
	s.Run(rec)
	if s.Frame() != 0 || len(rec.Calls) != 0 || !rec.Closed {
		t.Fatalf("frame=%d calls=%d closed=%t", s.Frame(), len(rec.Calls), rec.Closed)
	}
}

func TestStop_Idempotent(t *testing.T) {
	j := &fakeJournal{}
	s := New(smallConfig(), j)
	s.Stop()
	s.Stop()
	s.Update()
	if j.flushes != 1 || len(j.lines) != 1 {
		t.Fatalf("flushes=%d lines=%d, want 1 and 1", j.flushes, len(j.lines))
	}
	if s.Frame() != 0 {
		t.Fatal("Update after Stop must not advance")
	}
}
