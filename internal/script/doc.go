// Package script loads on-disk task implementations written in Lua.
//
// A script task lives at <searchDir>/<name>/index.lua. Loading executes
// the file's top level, which is expected to define an optional global
// `description` string and a global `run(config, argv)` function.
// Invoking the task calls `run` with the merged configuration and the raw
// command-line arguments as tables, plus a `require_keys` helper bound to
// the configuration. Task code is trusted: no sandboxing is applied and a
// script error propagates unchanged as the task's failure.
package script
