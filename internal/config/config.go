// Package config loads application settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/doctor"
	"github.com/kisanlabs/plantdoctor/internal/llm"
)

// Widget host kinds.
const (
	WidgetHostStdout = "stdout"
	WidgetHostSocket = "socket"
)

// Config holds the application settings. LLM provider settings live in
// llm.Config and are read with the same prefix.
type Config struct {
	// Language preselects a language by code or name, skipping the picker.
	Language string `env:"LANGUAGE"`

	// EventsDB is the event store path. Empty means store.DefaultDBPath.
	EventsDB string `env:"EVENTS_DB"`

	// ExportDir receives saved reports. Empty means the working directory.
	ExportDir string `env:"EXPORT_DIR"`

	// LogFile receives logs while the chat UI owns the terminal.
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor  bool   `env:"NO_COLOR"`

	Widget        bool     `env:"WIDGET"`
	WidgetHost    string   `env:"WIDGET_HOST" envDefault:"stdout"`
	WidgetAddr    string   `env:"WIDGET_ADDR" envDefault:"127.0.0.1:8765"`
	WidgetOrigins []string `env:"WIDGET_ORIGINS" envSeparator:","`

	TurnTimeout    time.Duration `env:"TURN_TIMEOUT" envDefault:"30s"`
	HistoryWindow  int           `env:"HISTORY_WINDOW" envDefault:"5"`
	ReportCapacity int           `env:"REPORT_CAPACITY" envDefault:"32"`
}

// Load reads envFile, when it exists, into the process environment and
// then parses PLANTDOCTOR_* variables. Variables already set win over the
// file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: llm.EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Language != "" {
		if _, ok := chat.LookupLanguage(c.Language); !ok {
			result = multierror.Append(result, fmt.Errorf("unsupported language %q", c.Language))
		}
	}
	if !validLevel(c.LogLevel) {
		result = multierror.Append(result, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	switch c.WidgetHost {
	case WidgetHostStdout:
	case WidgetHostSocket:
		if c.WidgetAddr == "" {
			result = multierror.Append(result, errors.New("widget socket host needs an address"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("unknown widget host %q", c.WidgetHost))
	}
	if c.TurnTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("turn timeout must be positive, got %s", c.TurnTimeout))
	}
	if c.HistoryWindow < 0 {
		result = multierror.Append(result, fmt.Errorf("history window must not be negative, got %d", c.HistoryWindow))
	}
	if c.ReportCapacity <= 0 {
		result = multierror.Append(result, fmt.Errorf("report capacity must be positive, got %d", c.ReportCapacity))
	}

	return result.ErrorOrNil()
}

// Level returns the configured log level.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Doctor returns the turn settings derived from c.
func (c Config) Doctor() doctor.Config {
	dc := doctor.DefaultConfig()
	dc.Timeout = c.TurnTimeout
	dc.Prompt.HistoryWindow = c.HistoryWindow
	return dc
}

func validLevel(s string) bool {
	var l slog.Level
	return l.UnmarshalText([]byte(strings.TrimSpace(s))) == nil
}
