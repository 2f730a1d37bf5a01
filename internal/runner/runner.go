package runner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/taskmill/taskmill/internal/config"
	"github.com/taskmill/taskmill/internal/ctxlog"
	"github.com/taskmill/taskmill/internal/fsutil"
	"github.com/taskmill/taskmill/internal/script"
)

// AliasesKey is the options key holding the alias-name to task-list
// mapping.
const AliasesKey = "aliases"

// PackagePrefix is the conventional prefix under which task packages
// register themselves, probed before the bare task name.
const PackagePrefix = "taskmill-task-"

// Runner dispatches task and alias names against a set of search
// directories, shared run options and an ordered list of resolution
// sources.
type Runner struct {
	dirs    []string
	options map[string]any
	sources []Source
}

// New creates a Runner. Sources are probed in the given order for every
// candidate identifier.
func New(dirs []string, options map[string]any, sources ...Source) *Runner {
	if options == nil {
		options = map[string]any{}
	}
	return &Runner{
		dirs:    dirs,
		options: options,
		sources: sources,
	}
}

// Run executes each named task or alias independently, in order. There is
// no shared state between runs beyond the common options mapping.
func (r *Runner) Run(ctx context.Context, names []string, argv map[string]string) error {
	for _, name := range names {
		if _, ok := r.Aliases()[name]; ok {
			if err := r.RunAlias(ctx, name, argv); err != nil {
				return err
			}
			continue
		}
		if err := r.RunTask(ctx, name, argv); err != nil {
			return err
		}
	}
	return nil
}

// RunAlias executes every member task of the named alias, strictly in
// list order, stopping on the first failure. Alias members are resolved
// as tasks, never as further aliases.
func (r *Runner) RunAlias(ctx context.Context, name string, argv map[string]string) error {
	members, ok := r.Aliases()[name]
	if !ok {
		return &UnknownAliasError{Name: name}
	}

	ctxlog.FromContext(ctx).Info("Running alias.", "alias", name, "tasks", members)

	for _, member := range members {
		if err := r.RunTask(ctx, member, argv); err != nil {
			return err
		}
	}
	return nil
}

// RunTask resolves the named task and invokes its entry point with a
// fresh config accessor over the run options and the raw argv. A task's
// own failure is never caught here.
func (r *Runner) RunTask(ctx context.Context, name string, argv map[string]string) error {
	ctxlog.FromContext(ctx).Info("Running task.", "task", name)

	var candidates []string
	if path, ok := fsutil.TryFile(r.dirs, filepath.Join(name, script.EntryFile)); ok {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, PackagePrefix+name, name)

	t, err := tryResolve(ctx, r.sources, candidates)
	if err != nil {
		return err
	}
	if t == nil {
		return &UnknownTaskError{Name: name}
	}

	return t.Run(ctx, config.NewValues(r.options), argv)
}

// Info describes one discovered task or alias.
type Info struct {
	Description string
	Tasks       []string
}

// Tasks enumerates every alias from the options plus every task found by
// scanning the search directories for subdirectories with an entry
// script, reading each script's declared description. Aliases take
// precedence over same-named discovered tasks.
func (r *Runner) Tasks(ctx context.Context) (map[string]Info, error) {
	all := make(map[string]Info)
	for name, members := range r.Aliases() {
		all[name] = Info{Tasks: members}
	}

	for _, dir := range r.dirs {
		for _, name := range fsutil.TaskDirs(dir, script.EntryFile) {
			if _, taken := all[name]; taken {
				continue
			}
			t, err := script.Load(ctx, name, filepath.Join(dir, name, script.EntryFile))
			if err != nil {
				return nil, fmt.Errorf("failed to inspect task %q: %w", name, err)
			}
			all[name] = Info{Description: t.Description}
		}
	}

	return all, nil
}

// Aliases returns the alias mapping derived from the options. The
// mapping tolerates both the native map[string][]string shape and the
// decoded-config shape map[string]any with []any members.
func (r *Runner) Aliases() map[string][]string {
	raw, ok := r.options[AliasesKey]
	if !ok {
		return map[string][]string{}
	}

	switch m := raw.(type) {
	case map[string][]string:
		return m
	case map[string]any:
		aliases := make(map[string][]string, len(m))
		for name, members := range m {
			switch list := members.(type) {
			case []string:
				aliases[name] = list
			case []any:
				var tasks []string
				for _, member := range list {
					if s, ok := member.(string); ok {
						tasks = append(tasks, s)
					}
				}
				aliases[name] = tasks
			}
		}
		return aliases
	default:
		return map[string][]string{}
	}
}
