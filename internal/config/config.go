// Package config provides configuration for the chess drivers.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // no log output
	Normal     = 1 // lifecycle and errors
	Commentary = 2 // every move attempt
)

// Environment variables read by ApplyEnv.
const (
	EnvAddr           = "CHESS_ADDR"
	EnvAllowedOrigins = "CHESS_ALLOWED_ORIGINS"
	EnvVerbosity      = "CHESS_VERBOSITY"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=lifecycle, 2=running commentary

	// StartFEN is the position new games start from. Empty means the
	// standard starting position.
	StartFEN string

	// Grouped settings
	Render RenderConfig
	Server ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Render:     *NewRenderConfig(),
		Server:     *NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and prompts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration and its sub-configs.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from environment variables, looked up with
// lookup (normally os.LookupEnv). Unset variables leave the current value.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if addr, ok := lookup(EnvAddr); ok {
		c.Server.Addr = addr
	}
	if origins, ok := lookup(EnvAllowedOrigins); ok {
		c.Server.AllowedOrigins = SplitList(origins)
	}
	if v, ok := lookup(EnvVerbosity); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvVerbosity, v, errors.ErrInvalidConfig)
		}
		c.Verbosity = n
	}
	return nil
}

// SplitList splits a comma separated list, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
