// Package filehandler provides the file destination. The file is opened
// in append mode when the handler is created, so a path that cannot be
// opened fails at construction rather than on the first log call.
//
// Every entry is written straight to the file, which keeps the log
// readable while a test run is still in progress.
package filehandler
