package config

import (
	"bytes"
	stderrors "errors"
	"reflect"
	"testing"
	"time"

	"github.com/lgbarn/chess-go/internal/errors"
)

// TestRenderConfig_Defaults verifies RenderConfig has sensible defaults
func TestRenderConfig_Defaults(t *testing.T) {
	cfg := NewRenderConfig()

	if cfg.Unicode {
		t.Error("Unicode should be false by default")
	}
	if cfg.Flip {
		t.Error("Flip should be false by default")
	}
	if !cfg.Coordinates {
		t.Error("Coordinates should be true by default")
	}
}

// TestServerConfig_Defaults verifies ServerConfig has sensible defaults
func TestServerConfig_Defaults(t *testing.T) {
	cfg := NewServerConfig()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("AllowedOrigins = %v, want none", cfg.AllowedOrigins)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

// TestServerConfig_Validate verifies server config validation
func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServerConfig
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			cfg:     *NewServerConfig(),
			wantErr: false,
		},
		{
			name:    "empty address",
			cfg:     ServerConfig{},
			wantErr: true,
		},
		{
			name:    "negative max games",
			cfg:     ServerConfig{Addr: ":80", MaxGames: -1},
			wantErr: true,
		},
		{
			name:    "negative shutdown timeout",
			cfg:     ServerConfig{Addr: ":80", ShutdownTimeout: -time.Second},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

// TestServerConfig_OriginAllowed verifies origin matching
func TestServerConfig_OriginAllowed(t *testing.T) {
	open := ServerConfig{}
	if !open.OriginAllowed("http://anywhere.example") {
		t.Error("empty allow list should accept any origin")
	}

	restricted := ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}}
	if !restricted.OriginAllowed("http://localhost:3000") {
		t.Error("listed origin should be allowed")
	}
	if restricted.OriginAllowed("http://evil.example") {
		t.Error("unlisted origin should be rejected")
	}

	wildcard := ServerConfig{AllowedOrigins: []string{"*"}}
	if !wildcard.OriginAllowed("http://evil.example") {
		t.Error("wildcard should allow any origin")
	}
}

// TestConfig_Validate verifies top-level validation
func TestConfig_Validate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	cfg := NewConfig()
	cfg.Verbosity = 3
	if err := cfg.Validate(); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfig()
	cfg.Server.Addr = ""
	if err := cfg.Validate(); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

// TestConfig_SubConfigs verifies that Config carries its sub-configs
func TestConfig_SubConfigs(t *testing.T) {
	cfg := NewConfig()

	if !cfg.Render.Coordinates {
		t.Error("Render.Coordinates should be true")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Verbosity != Normal {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Normal)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_ApplyEnv verifies environment overrides
func TestConfig_ApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAddr:           "127.0.0.1:9000",
		EnvAllowedOrigins: "http://a.example, ,http://b.example",
		EnvVerbosity:      " 2 ",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := NewConfig()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	want := []string{"http://a.example", "http://b.example"}
	if !reflect.DeepEqual(cfg.Server.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.Server.AllowedOrigins, want)
	}
	if cfg.Verbosity != Commentary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Commentary)
	}

	t.Run("unset variables keep defaults", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.ApplyEnv(func(string) (string, bool) { return "", false })
		if err != nil {
			t.Fatalf("ApplyEnv() error = %v", err)
		}
		if cfg.Server.Addr != ":8080" || cfg.Verbosity != Normal {
			t.Errorf("defaults changed: %+v", cfg.Server)
		}
	})

	t.Run("bad verbosity", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.ApplyEnv(func(key string) (string, bool) {
			if key == EnvVerbosity {
				return "loud", true
			}
			return "", false
		})
		if !stderrors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("ApplyEnv() = %v, want ErrInvalidConfig", err)
		}
	})
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithUnicode(true).
		WithFlip(true).
		WithCoordinates(false).
		WithAddr(":9090").
		WithAllowedOrigins("http://localhost:5173").
		WithMaxGames(5).
		WithShutdownTimeout(time.Second).
		WithVerbosity(Commentary).
		WithOutput(buf).
		WithLog(buf).
		Build()

	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if !cfg.Render.Unicode || !cfg.Render.Flip || cfg.Render.Coordinates {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.MaxGames != 5 || cfg.Server.ShutdownTimeout != time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Verbosity != Commentary {
		t.Errorf("Verbosity = %d", cfg.Verbosity)
	}
	if cfg.OutputFile != buf || cfg.LogFile != buf {
		t.Error("writers not set")
	}
}
