// Package core defines the shared types used across testlog.
//
// It provides the Level type together with the process-wide table of
// level display names, the Entry type that represents a single log
// event, the Field type used for keyword arguments, and Interpolate,
// which renders a message template.
//
// Built-in levels are spaced ten apart (Debug=10 .. Panic=60). The six
// test severities occupy InfoLevel+1 .. InfoLevel+6 in the fixed order
// START < END < PASS < KNOWN_FAIL < FAIL < CRASH, so a logger with the
// default Info threshold emits all of them while a Warn threshold
// silences them together with informational output.
//
// Display names are bound once from a static table when the package is
// loaded. RegisterLevelName can bind additional levels; a second
// registration for the same level replaces the first.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once the handler has
// consumed it.
package core
