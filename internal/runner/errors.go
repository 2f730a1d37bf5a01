package runner

import "fmt"

// UnknownTaskError reports a task name for which no candidate module
// identifier resolved.
type UnknownTaskError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task %q", e.Name)
}

// UnknownAliasError reports a requested alias name with no entry in the
// alias mapping.
type UnknownAliasError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownAliasError) Error() string {
	return fmt.Sprintf("unknown alias %q", e.Name)
}
