// Package app provides the application context and dependency wiring for
// the costsync CLI: configuration, logging, and the sync pipeline built
// from it.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/costsync/costsync/internal/costcenter"
	"github.com/costsync/costsync/internal/github"
	gsync "github.com/costsync/costsync/internal/sync"
	"github.com/costsync/costsync/pkg/errors"
)

// App represents the costsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Syncer (lazy-initialized, singleton)
	mu     sync.Mutex
	syncer *gsync.Syncer
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	a := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	a.config = config

	logger := NewLogger(config)
	a.logger = &logger

	return a, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Syncer returns the sync pipeline, creating it lazily from the current
// configuration. Credentials are validated here so a misconfigured run
// fails before any network call.
func (a *App) Syncer() (*gsync.Syncer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.syncer != nil {
		return a.syncer, nil
	}

	cfg := a.config
	if cfg.Token == "" {
		return nil, errors.NewValidationError("auth_token",
			"an API token is required (set COSTSYNC_TOKEN or GITHUB_TOKEN)")
	}
	if cfg.Enterprise == "" {
		return nil, errors.NewValidationError("enterprise", "enterprise slug is required")
	}

	// The billing store may live behind a different base URL and token
	// than the directory API; each falls back to the directory settings.
	billingURL := cfg.BillingAPIURL
	if billingURL == "" {
		billingURL = cfg.APIURL
	}
	billingToken := cfg.BillingToken
	if billingToken == "" {
		billingToken = cfg.Token
	}

	source := github.New(cfg.APIURL, cfg.Token)
	store := costcenter.New(billingURL, billingToken, cfg.Enterprise)

	a.syncer = gsync.New(source, store, gsync.WithLogger(a.logger))
	return a.syncer, nil
}
