// Package config provides centralized configuration for langgpt.
// All default values are defined here to keep a single source of truth.
package config

import "time"

const (
	// ConfigName is the config file base name searched for (.langgpt.yaml).
	ConfigName = ".langgpt"

	// EnvPrefix prefixes every environment override, e.g. LANGGPT_SERVER_PORT.
	EnvPrefix = "LANGGPT"
)

// Server defaults
const (
	DefaultPort            = 8080
	DefaultShutdownTimeout = 10 * time.Second
)

// DefaultCORSOrigins allows any origin, matching the bundled browser UI served
// from a different port during development.
var DefaultCORSOrigins = []string{"*"}

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)
