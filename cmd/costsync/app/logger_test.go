package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   string
	}{
		{name: "default", config: &Config{}, want: "info"},
		{name: "verbose", config: &Config{Verbose: true}, want: "debug"},
		{name: "quiet", config: &Config{Quiet: true}, want: "warn"},
		{name: "explicit level wins over verbose", config: &Config{Verbose: true, LogLevel: "error"}, want: "error"},
		{name: "verbose and quiet prefers quiet", config: &Config{Verbose: true, Quiet: true}, want: "warn"},
		{name: "invalid explicit level falls back", config: &Config{LogLevel: "shout"}, want: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(tt.config))
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, valid := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, valid, validateLogLevel(valid))
	}
	assert.Equal(t, "info", validateLogLevel("verbose"))
	assert.Equal(t, "info", validateLogLevel(""))
}
