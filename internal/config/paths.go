package config

import (
	"os"
	"path/filepath"
)

// GetGlobalConfigDir returns the global configuration directory (~/.langgpt).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".langgpt"), nil
}

// CrashLogBase returns where crash logs are kept. XDG_STATE_HOME wins when
// set; otherwise the global config directory is used.
func CrashLogBase() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "langgpt")
	}
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return ".langgpt"
	}
	return dir
}
