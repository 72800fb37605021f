package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kevindugan/dependencyTree/internal/app"
	"github.com/kevindugan/dependencyTree/internal/render"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("deptree", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
deptree - Resolve build order and roots of a library dependency tree.

Usage:
  deptree [options] [SOURCE]

Arguments:
  SOURCE
    A CMakeCache.txt file, a CMake build directory containing one, or a
    .hcl manifest file or directory of manifests.

Options:
`)
		flagSet.PrintDefaults()
	}

	sourceFlag := flagSet.String("source", "", "Path to the dependency source.")
	sFlag := flagSet.String("s", "", "Path to the dependency source (shorthand).")
	formatFlag := flagSet.String("format", render.FormatText, "Output format. Options: "+quoteList(render.Formats)+".")
	targetFlag := flagSet.String("target", "", "Resolve only this target and what it depends on.")
	rootsOfFlag := flagSet.String("roots-of", "", "Also report the roots that depend on this target.")
	strictFlag := flagSet.Bool("strict", false, "Fail on dependencies that are not declared as targets.")
	publishURLFlag := flagSet.String("publish-url", "", "Socket.IO server URL to publish the result to.")
	publishNSFlag := flagSet.String("publish-namespace", "", "Socket.IO namespace for -publish-url (default \"/\").")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *sourceFlag != "" {
		path = *sourceFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Source path determined.", "path", path)

	if path == "" {
		slog.Debug("No source path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}

	format := strings.ToLower(*formatFlag)
	if !render.IsFormat(format) {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be one of " + quoteList(render.Formats)}
	}

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

	config, err := app.NewConfig(app.Config{
		SourcePath:       path,
		Format:           format,
		Target:           *targetFlag,
		RootsOf:          *rootsOfFlag,
		Strict:           *strictFlag,
		PublishURL:       *publishURLFlag,
		PublishNamespace: *publishNSFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}
