package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by WriteFile when the target exists and
// overwrite was not requested.
var ErrConfigExists = errors.New("config file already exists")

const fileHeader = "# langgpt configuration\n# Every key can be overridden with a LANGGPT_ environment variable,\n# e.g. LANGGPT_SERVER_PORT=9000.\n\n"

// Marshal renders cfg as the YAML accepted by Load.
func Marshal(cfg AppConfig) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return append([]byte(fileHeader), body...), nil
}

// WriteFile writes cfg to path, creating parent directories.
func WriteFile(fs afero.Fs, path string, cfg AppConfig, overwrite bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !overwrite {
		if _, err := fs.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("check config file %s: %w", path, err)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	return nil
}
