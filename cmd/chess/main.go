// chess is an interactive two-player chess board for the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	g, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Verbosity >= config.Normal && cfg.StartFEN != "" {
		logger.Printf("starting from %s", cfg.StartFEN)
	}

	if *moveList != "" {
		var states output.StateWriter = output.NewTextWriter(cfg.OutputFile, cfg.Render)
		if *jsonOutput {
			states = output.NewJSONWriter(cfg.OutputFile)
		}
		if err := replay(g, strings.Fields(*moveList), states); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	states := output.NewStateWriter(cfg.OutputFile, cfg, *jsonOutput)
	d := newDriver(g, os.Stdin, cfg.OutputFile, states, logger, cfg.Verbosity)
	if err := d.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := states.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newGame starts from the configured FEN, or the standard position.
func newGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.StartFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(cfg.StartFEN)
}

// newLogger builds the diagnostics logger; silent mode discards everything.
func newLogger(cfg *config.Config) *log.Logger {
	w := cfg.LogFile
	if w == nil || cfg.Verbosity == config.Silent {
		w = io.Discard
	}
	return log.New(w, "chess ", log.LstdFlags)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess board that only accepts legal moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove input:\n")
	fmt.Fprintf(os.Stderr, "  e2e4   two squares, optionally separated by a space or '-'\n")
	fmt.Fprintf(os.Stderr, "  e7e8q  promotion piece appended (q, r, b, n), optionally after '='\n")
}
