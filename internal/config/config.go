package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig is the fully resolved configuration.
type AppConfig struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=text json"`
}

// ServerConfig controls `langgpt serve`.
type ServerConfig struct {
	Port            int           `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// CatalogConfig points at an optional file whose roles override the built-in catalog.
type CatalogConfig struct {
	File string `mapstructure:"file" yaml:"file,omitempty"`
	// Watch reloads File on change while serve or mcp runs.
	Watch bool `mapstructure:"watch" yaml:"watch" validate:"excluded_without=File"`
}

// AnalysisConfig tunes the prompt analyzer.
type AnalysisConfig struct {
	FoldCase bool `mapstructure:"fold_case" yaml:"fold_case"`
}

var validate = validator.New()

// Validate checks the value ranges of c.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Default returns the configuration used when nothing is set.
func Default() AppConfig {
	return AppConfig{
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Server: ServerConfig{Port: DefaultPort, ShutdownTimeout: DefaultShutdownTimeout, CORSOrigins: append([]string(nil), DefaultCORSOrigins...)},
	}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.watch", false)
	v.SetDefault("analysis.fold_case", false)
}

// Load resolves configuration into v and returns it. Sources, lowest priority
// first: defaults, config file, .env, environment, flags already bound on v.
// cfgFile, when set, must exist; otherwise .langgpt.yaml is searched for in
// the working directory and then the global config directory.
func Load(v *viper.Viper, cfgFile string) (AppConfig, error) {
	// .env is optional.
	_ = godotenv.Load()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := GetGlobalConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// no config file: defaults and env only
		case cfgFile != "" && errors.Is(err, os.ErrNotExist):
			return AppConfig{}, fmt.Errorf("config file %s not found", cfgFile)
		default:
			return AppConfig{}, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
