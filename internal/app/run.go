package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/taskmill/taskmill/internal/config"
	"github.com/taskmill/taskmill/internal/ctxlog"
	"github.com/taskmill/taskmill/internal/runner"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	options, err := config.Build(ctx, appConfig.Dirs, appConfig.ConfigFile, appConfig.Argv)
	if err != nil {
		return fmt.Errorf("failed to build configuration: %w", err)
	}
	a.logger.Debug("Configuration merged.", "keys", len(options))

	run := runner.New(appConfig.Dirs, options,
		runner.ScriptSource{},
		runner.RegistrySource{Registry: a.registry},
	)

	if appConfig.List {
		return a.list(ctx, run)
	}

	if err := run.Run(ctx, appConfig.Names, appConfig.Argv); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// list renders the discovery view: aliases and directory tasks first,
// then the built-in registered tasks.
func (a *App) list(ctx context.Context, run *runner.Runner) error {
	discovered, err := run.Tasks(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(discovered))
	for name := range discovered {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.outW, "Available tasks:")
	for _, name := range names {
		info := discovered[name]
		if len(info.Tasks) > 0 {
			fmt.Fprintf(a.outW, "  %s (alias: %s)\n", name, strings.Join(info.Tasks, ", "))
			continue
		}
		fmt.Fprintf(a.outW, "  %s %s\n", name, info.Description)
	}

	builtin := a.registry.All()
	builtinNames := make([]string, 0, len(builtin))
	for name := range builtin {
		if _, taken := discovered[name]; taken {
			continue
		}
		builtinNames = append(builtinNames, name)
	}
	sort.Strings(builtinNames)

	if len(builtinNames) > 0 {
		fmt.Fprintln(a.outW, "Built-in tasks:")
		for _, name := range builtinNames {
			fmt.Fprintf(a.outW, "  %s %s\n", name, builtin[name].Description)
		}
	}

	return nil
}
