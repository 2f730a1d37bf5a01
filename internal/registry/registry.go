package registry

import (
	"fmt"
	"log/slog"

	"github.com/taskmill/taskmill/internal/task"
)

// Module is the interface that all built-in task packages must implement
// to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered task entry points for a single
// application instance. It is the "installed package" side of task
// resolution: names registered here are resolvable without touching the
// filesystem.
type Registry struct {
	tasks map[string]*task.Task
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		tasks: make(map[string]*task.Task),
	}
}

// Register registers a task under its name. Registering the same name
// twice is a programmer error and panics.
func (r *Registry) Register(t *task.Task) {
	if t.Name == "" {
		panic("task with empty name cannot be registered")
	}
	if _, exists := r.tasks[t.Name]; exists {
		panic(fmt.Sprintf("task with name '%s' already registered", t.Name))
	}
	slog.Debug("Registering task.", "name", t.Name)
	r.tasks[t.Name] = t
}

// Resolve looks up a registered task by name. Absence is a normal empty
// result at this layer.
func (r *Registry) Resolve(name string) (*task.Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// All returns every registered task keyed by name.
func (r *Registry) All() map[string]*task.Task {
	return r.tasks
}
