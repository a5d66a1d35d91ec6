// Package config loads dashboard settings from ~/.config/devflow/config.yaml
// and DEVFLOW_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "DEVFLOW"

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const maxStepDelay = time.Minute

type Config struct {
	StepDelay time.Duration `mapstructure:"step_delay"`
	Theme     string        `mapstructure:"theme"`
	Catalog   string        `mapstructure:"catalog"` // alternate catalog file, builtin when empty
	LogFile   string        `mapstructure:"log_file"`
	LogLevel  string        `mapstructure:"log_level"`
}

// fileConfig is what Write puts on disk; durations are kept human readable.
type fileConfig struct {
	StepDelay string `yaml:"step_delay"`
	Theme     string `yaml:"theme"`
	Catalog   string `yaml:"catalog,omitempty"`
	LogFile   string `yaml:"log_file,omitempty"`
	LogLevel  string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		StepDelay: time.Second,
		Theme:     ThemeAuto,
		LogLevel:  "info",
	}
}

// DefaultPath is where the config file lives unless --config says otherwise.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "devflow", "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty) and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	def := Default()
	v := viper.New()
	v.SetDefault("step_delay", def.StepDelay)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("catalog", def.Catalog)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("log_level", def.LogLevel)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetConfigFile(path)
	// files such as ~/.devflowrc carry no extension to detect the format from
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	// backfill values cleared by an empty key in old files
	if cfg.Theme == "" {
		cfg.Theme = def.Theme
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.StepDelay <= 0 || c.StepDelay > maxStepDelay {
		return fmt.Errorf("step_delay must be between 0 and %s, got %s", maxStepDelay, c.StepDelay)
	}
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}

// Write stores cfg at path, creating parent directories.
func Write(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	data, err := yaml.Marshal(fileConfig{
		StepDelay: cfg.StepDelay.String(),
		Theme:     cfg.Theme,
		Catalog:   cfg.Catalog,
		LogFile:   cfg.LogFile,
		LogLevel:  cfg.LogLevel,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
