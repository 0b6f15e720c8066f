package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/symptomcheck/internal/expert"
	"github.com/abhisek/symptomcheck/internal/rulefile"
)

// Config holds application configuration.
type Config struct {
	// RulesPath points at a YAML or JSON rule file. Empty means the
	// built-in rule table.
	RulesPath string

	// LogLevel is one of "debug", "info", "warn", "error". Default: "info".
	LogLevel string

	// LogFile receives structured logs. Required to see logs from the
	// interactive form, since the form owns the terminal.
	LogFile string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("SYMPTOMCHECK_RULES"); p != "" {
		cfg.RulesPath = p
	}
	if l := os.Getenv("SYMPTOMCHECK_LOG_LEVEL"); l != "" {
		cfg.LogLevel = l
	}
	if f := os.Getenv("SYMPTOMCHECK_LOG_FILE"); f != "" {
		cfg.LogFile = f
	}

	return cfg
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q (want debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// RulesSource describes where the rule table comes from, for log output.
func (c Config) RulesSource() string {
	if c.RulesPath == "" {
		return "built-in"
	}
	return c.RulesPath
}

// LoadStore returns the built-in rule table, or the table from RulesPath
// when one is configured.
func LoadStore(c Config) (*expert.RuleStore, error) {
	if c.RulesPath == "" {
		return expert.DefaultStore(), nil
	}
	return rulefile.Load(c.RulesPath)
}
