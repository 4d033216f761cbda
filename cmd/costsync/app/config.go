package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	gsync "github.com/costsync/costsync/internal/sync"
	"github.com/costsync/costsync/pkg/errors"
	"github.com/costsync/costsync/pkg/membership"
)

// Config holds the application configuration loaded from flags,
// environment variables, .env files, and the optional config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Target group
	Enterprise string
	CostCenter string

	// Membership sources. Orgs (optionally scoped by Team) and Sources
	// ("org/team" pairs) are explicit specifiers; SourcesFile points at a
	// YAML list of pairs. All empty means the cost center record's linked
	// organizations drive the run.
	Orgs        []string
	Team        string
	Sources     []string
	SourcesFile string

	// API endpoints and credentials
	APIURL        string
	BillingAPIURL string
	Token         string
	BillingToken  string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// command-line flags (bound by cobra), environment variables, .env files,
// the config file (~/.costsync.yaml), then defaults.
func LoadConfig() (*Config, error) {
	// Load .env files before Viper env binding
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Tokens may arrive under either the tool's own name or the
	// scheduler-provided GITHUB_TOKEN.
	_ = viper.BindEnv("token", "COSTSYNC_TOKEN", "GITHUB_TOKEN")
	_ = viper.BindEnv("billing_token", "COSTSYNC_BILLING_TOKEN")
	_ = viper.BindEnv("enterprise", "COSTSYNC_ENTERPRISE")
	_ = viper.BindEnv("cost_center", "COSTSYNC_COST_CENTER")
	_ = viper.BindEnv("api_url", "COSTSYNC_API_URL")
	_ = viper.BindEnv("billing_api_url", "COSTSYNC_BILLING_API_URL")

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".costsync")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no_color"),

		ConfigFile: viper.ConfigFileUsed(),

		Enterprise: viper.GetString("enterprise"),
		CostCenter: viper.GetString("cost_center"),

		Orgs:        viper.GetStringSlice("orgs"),
		Team:        viper.GetString("team"),
		Sources:     viper.GetStringSlice("sources"),
		SourcesFile: viper.GetString("sources_file"),

		APIURL:        viper.GetString("api_url"),
		BillingAPIURL: viper.GetString("billing_api_url"),
		Token:         viper.GetString("token"),
		BillingToken:  viper.GetString("billing_token"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// Specifiers resolves the configured membership sources into parsed group
// specifiers. An empty result means the run derives its sources from the
// cost center record instead.
func (c *Config) Specifiers() ([]membership.Specifier, error) {
	if c.Team != "" && (len(c.Sources) > 0 || c.SourcesFile != "") {
		return nil, errors.NewValidationError("team",
			"--team cannot be combined with org/team pair sources")
	}
	if c.Team != "" && len(c.Orgs) == 0 {
		return nil, errors.NewValidationError("team", "--team requires at least one --org")
	}

	var specs []membership.Specifier

	for _, org := range c.Orgs {
		spec := membership.Specifier{Org: org, Team: c.Team}
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	for _, pair := range c.Sources {
		spec, err := membership.ParseSpecifier(pair)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	if c.SourcesFile != "" {
		fromFile, err := gsync.LoadSourcesFile(c.SourcesFile)
		if err != nil {
			return nil, err
		}
		specs = append(specs, fromFile...)
	}

	return specs, nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
