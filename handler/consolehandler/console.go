package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/testlog/core"
	"github.com/philipp01105/testlog/formatter"
	"github.com/philipp01105/testlog/handler"
)

// ConsoleHandler writes formatted entries to an io.Writer.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	stats           *handler.Stats
	mu              sync.Mutex // serializes the formatter and the writer
	closed          bool
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: a new AlignedFormatter)
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewAlignedFormatter(formatter.AlignedConfig{})
	}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	// Cache WriterFormatter to skip the intermediate copy
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h
}

// Handle formats and writes an entry while holding the handler lock.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	err := h.write(entry)
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

func (h *ConsoleHandler) write(entry *core.Entry) error {
	if h.closed {
		return os.ErrClosed
	}
	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(entry, h.writer)
	}
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler; later Handle calls return os.ErrClosed.
// The writer is left open, it belongs to the caller.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
