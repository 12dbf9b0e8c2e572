package main

import (
	"os"

	"github.com/rehoy/dvn/config"
	"github.com/rehoy/dvn/ebitenwin"
	"github.com/rehoy/dvn/game"
	"github.com/rehoy/dvn/logger"
)

func main() {
	journal := logger.NewLogger(config.LogPath)

	sim := game.New(config.Default(), journal)
	g := ebitenwin.New(sim, config.Width, config.Height)
	if err := ebitenwin.Run(g, config.Title, config.TargetFPS); err != nil {
		journal.LogError("run", err)
		journal.Close()
		os.Exit(1)
	}

	journal.Terminal().Info("bye", "frames", sim.Frame())
	journal.Close()
}
