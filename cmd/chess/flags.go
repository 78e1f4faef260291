// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-go/internal/config"
)

var (
	// Game setup
	startFEN = flag.String("fen", "", "Start from this FEN position (default: standard starting position)")
	moveList = flag.String("moves", "", "Play these moves non-interactively (space separated, e.g. 'e2e4 e7e5')")

	// Board display
	unicodeBoard  = flag.Bool("unicode", false, "Draw pieces with Unicode chess symbols")
	flipBoard     = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoordinates = flag.Bool("nocoords", false, "Don't draw rank and file labels")
	jsonOutput    = flag.Bool("J", false, "Output positions in JSON format")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", config.Normal, "Verbosity: 0=silent, 1=normal, 2=commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyRenderFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyRenderFlags configures board drawing.
func applyRenderFlags(cfg *config.Config) {
	cfg.Render.Unicode = *unicodeBoard
	cfg.Render.Flip = *flipBoard
	cfg.Render.Coordinates = !*noCoordinates
}
