package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/jaskcalc/internal/calc"
)

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	History  HistoryConfig
	Display  DisplayConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// HistoryConfig controls the tape.
type HistoryConfig struct {
	Enabled bool
	// Keep bounds how many entries are stored; 0 keeps all.
	Keep int
	// Limit is how many entries the tape pane and `history` command show.
	Limit int
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Precision           int    `mapstructure:"precision"`
	MaxResultLen        int    `mapstructure:"max_result_len"`
	InfinityPlaceholder string `mapstructure:"infinity_placeholder"`
}

// LogConfig holds logging settings. An empty path disables logging while
// the TUI is running.
type LogConfig struct {
	Path string
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc")
}

// Path is the file Save writes to.
func Path() string {
	if p := os.Getenv("JASKCALC_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.toml")
}

// Default returns the built-in configuration.
func Default() Config {
	opts := calc.DefaultOptions()
	return Config{
		Database: DatabaseConfig{Path: filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskcalc", "tape.db")},
		History:  HistoryConfig{Enabled: true, Keep: 1000, Limit: 20},
		Display: DisplayConfig{
			Precision:           opts.Precision,
			MaxResultLen:        opts.MaxResultLen,
			InfinityPlaceholder: opts.InfinityPlaceholder,
		},
	}
}

// Load reads configuration from file and env. Env var overrides use prefix JASKCALC_.
func Load() (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("history.enabled", def.History.Enabled)
	v.SetDefault("history.keep", def.History.Keep)
	v.SetDefault("history.limit", def.History.Limit)
	v.SetDefault("display.precision", def.Display.Precision)
	v.SetDefault("display.max_result_len", def.Display.MaxResultLen)
	v.SetDefault("display.infinity_placeholder", def.Display.InfinityPlaceholder)
	v.SetDefault("log.path", def.Log.Path)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKCALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine, a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges the calculator depends on.
func (c Config) Validate() error {
	if c.Display.Precision < 0 || c.Display.Precision > 15 {
		return fmt.Errorf("%w: display.precision %d not in 0..15", ErrInvalid, c.Display.Precision)
	}
	if c.Display.MaxResultLen < 1 {
		return fmt.Errorf("%w: display.max_result_len must be positive", ErrInvalid)
	}
	if c.History.Keep < 0 || c.History.Limit < 0 {
		return fmt.Errorf("%w: history.keep and history.limit must not be negative", ErrInvalid)
	}
	return nil
}

// CalcOptions maps the display settings onto the state machine's options.
func (c Config) CalcOptions() calc.Options {
	return calc.Options{
		Precision:           c.Display.Precision,
		MaxResultLen:        c.Display.MaxResultLen,
		InfinityPlaceholder: c.Display.InfinityPlaceholder,
	}
}

// Save writes the provided config to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.keep", cfg.History.Keep)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("display.precision", cfg.Display.Precision)
	v.Set("display.max_result_len", cfg.Display.MaxResultLen)
	v.Set("display.infinity_placeholder", cfg.Display.InfinityPlaceholder)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
