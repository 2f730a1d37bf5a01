package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/taskmill/taskmill/internal/app"
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

// dirList collects repeatable -dir flags in given order.
type dirList []string

func (d *dirList) String() string {
	return strings.Join(*d, ",")
}

func (d *dirList) Set(value string) error {
	*d = append(*d, value)
	return nil
}

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("taskmill", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
taskmill - a task runner that locates, configures and invokes tasks.

Usage:
  taskmill [options] TASK... [key=value]...

Arguments:
  TASK
    One or more task or alias names, executed in order.
  key=value
    Arguments passed through to the invoked tasks. Keys with the
    reserved 'config:' prefix become configuration overrides.

Options:
`)
		flagSet.PrintDefaults()
	}

	var dirs dirList
	flagSet.Var(&dirs, "dir", "Search directory for tasks and config files. Repeatable; probed in order.")
	flagSet.Var(&dirs, "d", "Search directory (shorthand).")
	configFlag := flagSet.String("config", "taskmill.hcl", "Config file name looked up across the search directories.")
	listFlag := flagSet.Bool("list", false, "List available tasks and aliases instead of executing.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Remaining positionals split into task names and key=value argv pairs.
	var names []string
	argv := map[string]string{}
	for _, arg := range flagSet.Args() {
		if key, value, ok := strings.Cut(arg, "="); ok {
			argv[key] = value
			continue
		}
		names = append(names, arg)
	}
	slog.Debug("Positional arguments split.", "names", names, "argv", argv)

	if len(names) == 0 && !*listFlag {
		slog.Debug("No task names provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
		Names:      names,
		Dirs:       dirs,
		ConfigFile: *configFlag,
		List:       *listFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		Argv:       argv,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
