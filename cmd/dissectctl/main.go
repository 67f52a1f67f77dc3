package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/wtdcode/dissectctl/internal/app"
	"github.com/wtdcode/dissectctl/internal/cli"
	"github.com/wtdcode/dissectctl/internal/cmderr"
)

// main is the entrypoint for the dissectctl application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	errs := cmderr.NewSink("dissectctl", os.Stderr)

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:], errs); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			// An empty message means the diagnostic sink already said
			// everything there is to say.
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string, errs *cmderr.Sink) (err error) {
	// Startup panics are turned into a clean error for the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	appConfig, shouldExit, err := cli.Parse(args, outW, errs)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	dissectApp := app.NewApp(outW, errs, appConfig)
	return dissectApp.Run(context.Background(), appConfig)
}
