// SPDX-License-Identifier: MIT
// Package: kipple/logging
//
// logging.go - zerolog construction with profiles and environment overrides.

package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment overrides, applied on top of the profile.
const (
	EnvLogLevel     = "KIPPLE_LOG_LEVEL"
	EnvLogTimestamp = "KIPPLE_LOG_TIMESTAMP"
	EnvLogNoColor   = "KIPPLE_LOG_NOCOLOR"
	EnvLogJSON      = "KIPPLE_LOG_JSON"
)

// App is the value of the "app" field on every record.
const App = "kipple"

// Profile selects baseline settings.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger configuration.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	JSON      bool
}

// DefaultConfig returns the baseline for profile.
func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false, NoColor: true}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

// FromEnv returns DefaultConfig(profile) with environment overrides applied.
func FromEnv(profile Profile) Config {
	cfg := DefaultConfig(profile)
	applyEnvOverrides(&cfg, os.Getenv)
	return cfg
}

// New builds a logger writing to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	out := w
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With().Str("app", App)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if lvl, ok := ParseLevel(getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(getenv(EnvLogJSON)); ok {
		cfg.JSON = v
	}
}

// ParseLevel accepts the usual level names plus a few aliases for "off".
// ok is false for blank or unknown input.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
