package filehandler

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/philipp01105/testlog/core"
	"github.com/philipp01105/testlog/formatter"
	"github.com/philipp01105/testlog/handler"
)

// FileHandler appends formatted entries to a file.
type FileHandler struct {
	filename        string
	file            *os.File
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	stats           *handler.Stats
	mu              sync.Mutex // serializes the formatter and the file
	closed          bool
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: a new AlignedFormatter)
	Formatter formatter.Formatter
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewAlignedFormatter(formatter.AlignedConfig{})
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
}

// NewFileHandler opens cfg.Filename for appending, creating it and its
// directory if needed. Failing to open the file is returned here, before
// anything is logged.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	applyFileDefaults(&cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
		return nil, fmt.Errorf("open log file %q: %w", cfg.Filename, err)
	}
	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", cfg.Filename, err)
	}

	h := &FileHandler{
		filename:  cfg.Filename,
		file:      file,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h, nil
}

// Filename returns the path the handler writes to.
func (h *FileHandler) Filename() string {
	return h.filename
}

// Handle formats an entry and appends it to the file.
func (h *FileHandler) Handle(entry *core.Entry) error {
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

func (h *FileHandler) write(entry *core.Entry) error {
	if h.closed {
		return os.ErrClosed
	}
	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(entry, h.file)
	}
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.file.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs and closes the underlying file.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	if err := h.file.Sync(); err != nil {
		h.file.Close()
		return err
	}
	return h.file.Close()
}
