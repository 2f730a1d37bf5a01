// Package runner resolves task and alias names and invokes the matching
// task entry points.
//
// A name resolves, in priority order, to an on-disk script under one of
// the search directories, a conventionally-prefixed registered package
// name, or the bare registered name. Aliases are named ordered lists of
// task names carried in the run options; alias members run strictly in
// list order and the first failure aborts the rest. Task failures are
// never caught here: they propagate unchanged to the caller of Run.
package runner
