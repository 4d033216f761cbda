package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected info default level, got %s", cfg.Level)
	}
	if cfg.Format != "auto" {
		t.Errorf("expected auto default format, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected stderr default output, got %s", cfg.Output)
	}
}

func TestNewLoggerFromConfig(t *testing.T) {
	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(oldLevel) })

	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := NewLoggerFromConfig(nil)
		if logger.GetLevel() != zerolog.InfoLevel {
			t.Errorf("expected info level, got %v", logger.GetLevel())
		}
	})

	t.Run("explicit level", func(t *testing.T) {
		logger := NewLoggerFromConfig(&Config{Level: "error", Format: "json"})
		if logger.GetLevel() != zerolog.ErrorLevel {
			t.Errorf("expected error level, got %v", logger.GetLevel())
		}
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger := NewLoggerFromConfig(&Config{Level: "shout", Format: "json"})
		if logger.GetLevel() != zerolog.InfoLevel {
			t.Errorf("expected info level, got %v", logger.GetLevel())
		}
	})
}
