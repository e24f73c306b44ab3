package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/dispenser/pkg/httpserver"
	"github.com/dmitrymomot/dispenser/pkg/logger"
)

const serviceName = "dispenser"

// Config is read from the environment, with an optional .env file.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	Inventory int    `env:"DISPENSER_INVENTORY" envDefault:"1"`
	MachineID string `env:"DISPENSER_ID"`
	HTTP      httpserver.Config
}

// newLogger applies environment defaults first, then explicit LOG_LEVEL and
// LOG_FORMAT overrides.
func newLogger(cfg Config, w io.Writer, extractors ...logger.ContextExtractor) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(w),
		logger.WithContextExtractors(extractors...),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}
