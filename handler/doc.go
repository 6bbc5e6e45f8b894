// Package handler provides the Handler interface shared by every log
// destination, plus the Stats counters handlers keep.
//
// Handlers are synchronous: Handle formats and writes the entry before
// returning, so formatting errors (an unregistered level, a template
// that references a missing argument) reach the code that logged.
// There is no background queue and nothing is retried.
//
// Built-in handlers live in subpackages:
//
//   - consolehandler writes to any io.Writer (default: stdout).
//   - filehandler appends to a file opened when the handler is created.
//   - multihandler fans out a single entry to several child handlers.
//   - sloghandler adapts a Handler to log/slog.Handler.
//
// Stats counts written entries per test severity and the entries that
// failed, so a test harness can report a pass/fail summary from the
// log stream itself.
package handler
