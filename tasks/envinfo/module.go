package envinfo

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/taskmill/taskmill/internal/config"
	"github.com/taskmill/taskmill/internal/registry"
	"github.com/taskmill/taskmill/internal/task"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Run is the entry point for the 'envinfo' task. It prints process
// environment variables, optionally filtered by a name prefix taken from
// the configuration.
func Run(ctx context.Context, cfg *config.Values, argv map[string]string) error {
	cfg.Defaults(map[string]any{"env_prefix": ""})

	prefix, ok := cfg.Get("env_prefix").(string)
	if !ok {
		return fmt.Errorf("env_prefix must be a string, got %v", cfg.Get("env_prefix"))
	}

	env := os.Environ()
	sort.Strings(env)

	for _, entry := range env {
		if prefix == "" || strings.HasPrefix(entry, prefix) {
			fmt.Println(entry)
		}
	}

	return nil
}

// Register registers the task with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&task.Task{
		Name:        "envinfo",
		Description: "Print process environment variables",
		Run:         Run,
	})
}
