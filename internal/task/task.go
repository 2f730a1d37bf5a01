// Package task defines the contract between the runner and individual
// task implementations. A task is an independently authored unit of work
// identified by name; the runner hands it a config accessor and the raw
// command-line arguments and otherwise treats it as opaque.
package task

import (
	"context"

	"github.com/taskmill/taskmill/internal/config"
)

// Handler is the single invocable entry point every task exposes.
type Handler func(ctx context.Context, cfg *config.Values, argv map[string]string) error

// Task is a loadable unit of work. Tasks are discovered at run time,
// carry no state between invocations, and are never persisted.
type Task struct {
	Name        string
	Description string
	Run         Handler
}
