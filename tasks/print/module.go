package print

import (
	"context"
	"fmt"
	"sort"

	"github.com/taskmill/taskmill/internal/config"
	"github.com/taskmill/taskmill/internal/registry"
	"github.com/taskmill/taskmill/internal/task"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Run is the entry point for the 'print' task. It dumps the merged
// configuration and the pass-through arguments.
func Run(ctx context.Context, cfg *config.Values, argv map[string]string) error {
	values := cfg.All()

	// Sort keys for consistent output
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		fmt.Println("      (no config)")
	}
	for _, k := range keys {
		fmt.Printf("      %s = %v\n", k, values[k])
	}

	argKeys := make([]string, 0, len(argv))
	for k := range argv {
		argKeys = append(argKeys, k)
	}
	sort.Strings(argKeys)

	for _, k := range argKeys {
		fmt.Printf("      argv %s = %q\n", k, argv[k])
	}

	return nil
}

// Register registers the task with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&task.Task{
		Name:        "print",
		Description: "Print the merged configuration and arguments",
		Run:         Run,
	})
}
