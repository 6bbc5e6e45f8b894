// Package multihandler provides a fan-out handler that dispatches log
// entries to multiple child handlers, for example the console and a
// file at once. Child errors are combined with go.uber.org/multierr.
package multihandler
