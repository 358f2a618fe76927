// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// EnvPrefix is prepended to every environment variable key recognized by
// the application.
const EnvPrefix = "COINCALC_"

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// parseEnvBool interprets common boolean spellings (case-insensitive).
// Unrecognized values leave the default untouched.
func parseEnvBool(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// envOverride declares a single environment variable override. Each entry
// maps an env key (without the COINCALC_ prefix) to the CLI flag name it
// corresponds to and a function that applies the env value. The flag takes
// precedence: the override is skipped when the flag was set explicitly.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"AMOUNTS", "amounts", func(c *AppConfig, v string) {
		if amounts, err := ParseAmounts(v); err == nil {
			c.Amounts = amounts
		}
	}},
	{"ALGO", "algo", func(c *AppConfig, v string) {
		c.Algo = v
	}},
	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"QUIET", "quiet", func(c *AppConfig, v string) {
		c.Quiet = parseEnvBool(v, c.Quiet)
	}},
	{"VERBOSE", "verbose", func(c *AppConfig, v string) {
		c.Verbose = parseEnvBool(v, c.Verbose)
	}},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) {
		c.NoColor = parseEnvBool(v, c.NoColor)
	}},
	{"METRICS_ADDR", "metrics-addr", func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},
}

// applyEnvOverrides applies the override table to cfg. Values set via CLI
// flags win over the environment.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
