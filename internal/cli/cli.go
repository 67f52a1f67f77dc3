package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wtdcode/dissectctl/internal/app"
	"github.com/wtdcode/dissectctl/internal/cmderr"
	"github.com/wtdcode/dissectctl/internal/decodeas"
	"github.com/wtdcode/dissectctl/internal/dissect"
	"github.com/wtdcode/dissectctl/internal/krb"
	"github.com/wtdcode/dissectctl/internal/resolv"
	"github.com/wtdcode/dissectctl/internal/timestamp"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// optionRecord is one dissection option occurrence, captured in
// command-line order for replay through the interpreter.
type optionRecord struct {
	code dissect.Option
	arg  string
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError. Validation diagnostics for dissection options go to errs
// before the ExitError is returned.
func Parse(args []string, output io.Writer, errs *cmderr.Sink) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("dissectctl", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
dissectctl - Assemble and validate a packet dissection configuration.

Usage:
  dissectctl [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var records []optionRecord
	collect := func(code dissect.Option) func(string) error {
		return func(value string) error {
			records = append(records, optionRecord{code: code, arg: value})
			return nil
		}
	}

	flagSet.Func("d", "Add a decode-as rule, e.g. tcp.port==8888,http. Repeatable.", collect(dissect.OptDecodeAs))
	flagSet.Func("K", "Load a Kerberos keytab file.", collect(dissect.OptKeytab))
	flagSet.BoolFunc("n", "Disable all name resolution.", func(string) error {
		records = append(records, optionRecord{code: dissect.OptDisableResolution})
		return nil
	})
	flagSet.Func("N", "Enable specific name resolution types: 'd', 'm', 'n', 'N', 't', 'v'.", collect(dissect.OptResolutionFlags))
	flagSet.Func("t", "Set the timestamp type and precision, e.g. ad, r.3, .6.", collect(dissect.OptTimestampFormat))
	flagSet.Func("u", "Set the seconds display style: 's' or 'hms'.", collect(dissect.OptSecondsType))
	flagSet.Func("disable-protocol", "Disable dissection of the named protocol. Repeatable.", collect(dissect.OptDisableProtocol))
	flagSet.Func("enable-protocol", "Enable dissection of the named protocol. Repeatable.", collect(dissect.OptEnableProtocol))
	flagSet.Func("enable-heuristic", "Enable the named heuristic sub-dissector. Repeatable.", collect(dissect.OptEnableHeuristic))
	flagSet.Func("disable-heuristic", "Disable the named heuristic sub-dissector. Repeatable.", collect(dissect.OptDisableHeuristic))

	protocolsFlag := flagSet.String("protocols", "protocols", "Path to the directory containing protocol manifests.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	opts := dissect.NewOptions()
	resolver := resolv.NewResolver()
	display := timestamp.NewDisplay()
	rules := decodeas.NewBook(errs)
	keytabs := krb.NewLoader()

	interp := dissect.NewInterpreter(opts, dissect.Collaborators{
		Errs:            errs,
		DecodeAs:        rules.Add,
		LoadKeytab:      keytabs.Load,
		KeytabSupported: krb.Supported,
		Resolver:        resolver,
		Display:         display,
	})

	for _, rec := range records {
		if !interp.HandleOption(rec.code, rec.arg) {
			// The diagnostic was already emitted to the sink.
			return nil, false, &ExitError{Code: 2}
		}
	}
	slog.Debug("Dissection options interpreted.", "count", len(records))

	config, err := app.NewConfig(app.Config{
		ProtocolsPath: *protocolsFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		Dissect:       opts,
		Resolver:      resolver,
		Display:       display,
		DecodeRules:   rules,
		Keytabs:       keytabs,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
