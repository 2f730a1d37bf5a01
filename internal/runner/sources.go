package runner

import (
	"context"
	"os"
	"path/filepath"

	"github.com/taskmill/taskmill/internal/registry"
	"github.com/taskmill/taskmill/internal/script"
	"github.com/taskmill/taskmill/internal/task"
)

// Source is one place candidate module identifiers can resolve against.
// A nil task with a nil error is a normal miss; an error means the
// candidate was found but could not be loaded.
type Source interface {
	Resolve(ctx context.Context, id string) (*task.Task, error)
}

// tryResolve iterates candidates in given order and returns the first one
// any source can resolve. No candidate resolvable is reported as absence,
// not an error, at this layer.
func tryResolve(ctx context.Context, sources []Source, candidates []string) (*task.Task, error) {
	for _, id := range candidates {
		for _, source := range sources {
			t, err := source.Resolve(ctx, id)
			if err != nil {
				return nil, err
			}
			if t != nil {
				return t, nil
			}
		}
	}
	return nil, nil
}

// ScriptSource resolves candidates that are paths to on-disk script
// entry files.
type ScriptSource struct{}

// Resolve implements Source.
func (ScriptSource) Resolve(ctx context.Context, id string) (*task.Task, error) {
	if filepath.Ext(id) != ".lua" {
		return nil, nil
	}
	if _, err := os.Stat(id); err != nil {
		return nil, nil
	}
	name := filepath.Base(filepath.Dir(id))
	return script.Load(ctx, name, id)
}

// RegistrySource resolves candidates against the in-process task
// registry, the stand-in for globally installed task packages.
type RegistrySource struct {
	Registry *registry.Registry
}

// Resolve implements Source.
func (s RegistrySource) Resolve(ctx context.Context, id string) (*task.Task, error) {
	if t, ok := s.Registry.Resolve(id); ok {
		return t, nil
	}
	return nil, nil
}
