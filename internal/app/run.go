package app

import (
	"context"
	"errors"
	"os"

	"github.com/wtdcode/dissectctl/internal/ctxlog"
	"github.com/wtdcode/dissectctl/internal/timestamp"
)

// ErrProtocolSelection reports that one or more heuristic sub-dissector
// names from the command line could not be resolved by the registry.
var ErrProtocolSelection = errors.New("not every heuristic sub-dissector selection could be applied")

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.registry.LoadManifests(ctx, os.DirFS(cfg.ProtocolsPath), "."); err != nil {
		return err
	}

	// The protocol enable/disable lists are applied exactly once, now
	// that the registry is fully loaded.
	if !cfg.Dissect.ApplyProtocols(a.registry, a.errs) {
		return ErrProtocolSelection
	}
	a.logger.Debug("Protocol configuration applied.")

	if cfg.Dissect.TimeFormat != timestamp.FormatNotSet {
		cfg.Display.SetFormat(cfg.Dissect.TimeFormat)
	}
	if cfg.Dissect.TimePrecision != timestamp.PrecisionNotSet {
		cfg.Display.SetPrecision(cfg.Dissect.TimePrecision)
	}

	a.report(cfg)
	a.logger.Debug("App.Run method finished.")
	return nil
}
