package main

import (
	"os"

	"github.com/rehoy/dvn/config"
	"github.com/rehoy/dvn/game"
	"github.com/rehoy/dvn/logger"
	"github.com/rehoy/dvn/raywin"
)

func main() {
	journal := logger.NewLogger(config.LogPath)

	w, err := raywin.Open(config.Width, config.Height, config.Title, config.TargetFPS)
	if err != nil {
		journal.LogError("open window", err)
		journal.Close()
		os.Exit(1)
	}
	journal.Terminal().Info("window ready", "width", config.Width, "height", config.Height, "fps", config.TargetFPS)

	sim := game.New(config.Default(), journal)
	sim.Run(w)

	journal.Terminal().Info("bye", "frames", sim.Frame())
	journal.Close()
}
