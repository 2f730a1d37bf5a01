// Package config builds and exposes the flat configuration mapping handed
// to every task.
//
// The builder merges configuration from two layers, lowest precedence
// first: an optional config file located across the search directories,
// then command-line overrides carried in argv under the reserved
// "config:" key prefix. Task-supplied defaults are applied after the
// merge and only ever fill gaps (see Values.Defaults).
//
// Config files may be HCL (the native format) or YAML; both load into the
// same flat map[string]any shape. A missing config file is a normal empty
// result, not an error.
package config
