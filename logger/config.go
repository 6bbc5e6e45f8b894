package logger

import (
	"io"
	"os"

	"github.com/philipp01105/testlog/core"
)

// EnvLevel names the environment variable read by ConfigFromEnv.
const EnvLevel = "TESTLOG_LEVEL"

// Config holds Registry configuration
type Config struct {
	// Level is the minimum level new loggers emit (default: InfoLevel)
	Level core.Level
	// Writer is the console destination (default: os.Stdout)
	Writer io.Writer
}

// applyConfigDefaults fills in zero-value fields with defaults.
func applyConfigDefaults(cfg *Config) {
	if cfg.Level == 0 {
		cfg.Level = core.InfoLevel
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// ConfigFromEnv returns the default configuration, with the level taken
// from TESTLOG_LEVEL when it is set.
func ConfigFromEnv() Config {
	var cfg Config
	if v, ok := os.LookupEnv(EnvLevel); ok && v != "" {
		cfg.Level = ParseLevel(v)
	}
	applyConfigDefaults(&cfg)
	return cfg
}
