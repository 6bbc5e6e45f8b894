// Package consolehandler provides the console destination: a handler
// that writes formatted log entries to any io.Writer (default:
// os.Stdout).
//
// Each ConsoleHandler owns its formatter and formats under the same
// lock it writes under, which is what keeps a stateful
// formatter.AlignedFormatter consistent when several goroutines log
// through one handler.
package consolehandler
