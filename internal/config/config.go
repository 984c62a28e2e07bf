// Package config loads eventbot configuration.
//
// Sources are applied in order, later ones winning:
//  1. Defaults
//  2. YAML file (optional)
//  3. .env file (optional, never overrides variables already set)
//  4. Process environment
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/roach88/eventbot/internal/event"
)

// Config is the full runtime configuration.
type Config struct {
	// DataDir holds events.json and the media directory.
	DataDir string `yaml:"data_dir" env:"EVENTBOT_DATA_DIR"`

	// IDScheme selects the event id generator: "sequence" or "uuid".
	IDScheme string `yaml:"id_scheme" env:"EVENTBOT_ID_SCHEME"`

	// JournalPath enables the SQLite mutation journal when non-empty.
	JournalPath string `yaml:"journal_path" env:"EVENTBOT_JOURNAL"`

	LogLevel    string `yaml:"log_level" env:"EVENTBOT_LOG_LEVEL"`
	MetricsAddr string `yaml:"metrics_addr" env:"EVENTBOT_METRICS_ADDR"`

	Telegram Telegram `yaml:"telegram"`
}

// Telegram configures the startup notifier.
type Telegram struct {
	Token   string `yaml:"token" env:"TELEGRAM_TOKEN"`
	AdminID int64  `yaml:"admin_id" env:"ADMIN_ID"`
	APIBase string `yaml:"api_base" env:"TELEGRAM_API_BASE"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DataDir:     "data",
		IDScheme:    event.SchemeSequence,
		LogLevel:    "info",
		MetricsAddr: ":9464",
		Telegram: Telegram{
			APIBase: "https://api.telegram.org",
		},
	}
}

// Options selects the files Load reads. Empty paths are skipped.
type Options struct {
	// File is a YAML config file. It must exist when set.
	File string

	// EnvFile is a dotenv file. A missing file is ignored.
	EnvFile string
}

// Load builds a validated Config from defaults, files and environment.
func Load(opts Options) (Config, error) {
	cfg := Defaults()

	if opts.File != "" {
		if err := loadYAML(opts.File, &cfg); err != nil {
			return Config{}, err
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("invalid config: data_dir is required")
	}
	if _, err := event.GeneratorFor(c.IDScheme); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
