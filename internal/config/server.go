package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-go/internal/errors"
)

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowedOrigins lists the origins allowed by CORS and the WebSocket
	// upgrader. Empty allows any origin.
	AllowedOrigins []string

	// MaxGames caps the number of live sessions (0 = no limit)
	MaxGames int

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		MaxGames:        1000,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("max games (%d) < 0: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	if s.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown timeout (%s) < 0: %w", s.ShutdownTimeout, errors.ErrInvalidConfig)
	}
	return nil
}

// OriginAllowed reports whether a browser origin may connect.
func (s *ServerConfig) OriginAllowed(origin string) bool {
	if len(s.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range s.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
