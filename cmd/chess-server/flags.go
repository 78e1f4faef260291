// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-go/internal/config"
)

var (
	// Listening
	addr    = flag.String("addr", "", "Listen address (default :8080, or $CHESS_ADDR)")
	origins = flag.String("origins", "", "Comma separated browser origins allowed to connect (default: any)")

	// Limits
	maxGames        = flag.Int("max-games", 0, "Maximum number of live games (0 = default)")
	shutdownTimeout = flag.Duration("shutdown-timeout", 0, "Time allowed for graceful shutdown (0 = default)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file (default: stderr)")
	verbosity = flag.Int("v", -1, "Verbosity: 0=silent, 1=normal, 2=commentary (default 1, or $CHESS_VERBOSITY)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Flags that
// were left at their zero value keep the current setting, so flags win
// over the environment only when given.
func applyFlags(cfg *config.Config) {
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *origins != "" {
		cfg.Server.AllowedOrigins = config.SplitList(*origins)
	}
	if *maxGames > 0 {
		cfg.Server.MaxGames = *maxGames
	}
	if *shutdownTimeout > 0 {
		cfg.Server.ShutdownTimeout = *shutdownTimeout
	}
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
}
