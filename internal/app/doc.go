// Package app wires the application together: it owns the isolated
// logger, the task registry populated from built-in modules, and the
// dispatch from parsed CLI configuration to the runner.
package app
