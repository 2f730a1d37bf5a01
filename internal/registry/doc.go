// Package registry provides the central "glue" for the task system.
//
// The Registry stores the mapping between task names and the compiled Go
// functions that implement them. It replaces ambient load-by-path module
// machinery with an explicit, injectable lookup: resolution code asks the
// registry for a name and gets back an entry point, which keeps the core
// runner logic testable without a real filesystem.
package registry
