package app

import (
	"io"
	"log/slog"

	"github.com/wtdcode/dissectctl/internal/cmderr"
	"github.com/wtdcode/dissectctl/internal/proto"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	errs     *cmderr.Sink
	registry *proto.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and an
// empty protocol registry.
func NewApp(outW io.Writer, errs *cmderr.Sink, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		errs:     errs,
		registry: proto.NewRegistry(),
	}
}

// Registry exposes the protocol registry, primarily for tests.
func (a *App) Registry() *proto.Registry {
	return a.registry
}
