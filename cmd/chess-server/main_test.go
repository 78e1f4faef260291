package main

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/lgbarn/chess-go/internal/config"
	chesserrors "github.com/lgbarn/chess-go/internal/errors"
)

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(env(nil))
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Server.Addr != ":8080" {
			t.Errorf("Addr = %q; want :8080", cfg.Server.Addr)
		}
		if cfg.Server.ShutdownTimeout != 10*time.Second {
			t.Errorf("ShutdownTimeout = %s; want 10s", cfg.Server.ShutdownTimeout)
		}
	})

	t.Run("environment", func(t *testing.T) {
		cfg, err := loadConfig(env(map[string]string{
			config.EnvAddr:           ":9000",
			config.EnvAllowedOrigins: "https://a.example, https://b.example",
			config.EnvVerbosity:      "2",
		}))
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Server.Addr != ":9000" {
			t.Errorf("Addr = %q; want :9000", cfg.Server.Addr)
		}
		want := []string{"https://a.example", "https://b.example"}
		if !reflect.DeepEqual(cfg.Server.AllowedOrigins, want) {
			t.Errorf("AllowedOrigins = %v; want %v", cfg.Server.AllowedOrigins, want)
		}
		if cfg.Verbosity != config.Commentary {
			t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Commentary)
		}
	})

	t.Run("flags override environment", func(t *testing.T) {
		defer saveRestoreString(addr, ":7000")()
		defer saveRestoreString(origins, "https://c.example")()
		defer saveRestoreInt(verbosity, 0)()
		cfg, err := loadConfig(env(map[string]string{
			config.EnvAddr:      ":9000",
			config.EnvVerbosity: "2",
		}))
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.Server.Addr != ":7000" {
			t.Errorf("Addr = %q; want :7000", cfg.Server.Addr)
		}
		if !reflect.DeepEqual(cfg.Server.AllowedOrigins, []string{"https://c.example"}) {
			t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
		}
		if cfg.Verbosity != config.Silent {
			t.Errorf("Verbosity = %d; want Silent", cfg.Verbosity)
		}
	})

	t.Run("invalid verbosity", func(t *testing.T) {
		_, err := loadConfig(env(map[string]string{config.EnvVerbosity: "loud"}))
		if !errors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("err = %v; want ErrInvalidConfig", err)
		}

		defer saveRestoreInt(verbosity, 7)()
		_, err = loadConfig(env(nil))
		if !errors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("err = %v; want ErrInvalidConfig", err)
		}
	})
}
