package handler

import (
	"github.com/philipp01105/testlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle formats and writes a log entry. Errors from formatting or
	// writing are returned to the caller.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count what they write.
type StatsProvider interface {
	Stats() Snapshot
}
