package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/testlog/core"
)

// AlignedConfig holds AlignedFormatter configuration
type AlignedConfig struct {
	// Names resolves a level to its label (default: core.LevelName)
	Names func(core.Level) (string, error)
	// MaxWidth caps how far the separator column may move
	// (default: core.MaxLevelNameWidth() at construction time)
	MaxWidth int
}

// AlignedFormatter renders entries as "<logger> <LABEL><padding>| <message>".
type AlignedFormatter struct {
	names    func(core.Level) (string, error)
	padWidth int
	hardCap  int
}

// NewAlignedFormatter creates a new aligned formatter
func NewAlignedFormatter(cfg AlignedConfig) *AlignedFormatter {
	if cfg.Names == nil {
		cfg.Names = core.LevelName
	}
	if cfg.MaxWidth <= 0 {
		cfg.MaxWidth = core.MaxLevelNameWidth()
	}
	return &AlignedFormatter{names: cfg.Names, hardCap: cfg.MaxWidth}
}

// PadWidth returns the current column width.
func (f *AlignedFormatter) PadWidth() int {
	return f.padWidth
}

// HardCap returns the widest label allowed to move the column.
func (f *AlignedFormatter) HardCap() int {
	return f.hardCap
}

// Format formats an entry as an aligned line
func (f *AlignedFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.formatToBuffer(entry, buf); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it to w in a single Write call
func (f *AlignedFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.formatToBuffer(entry, buf); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// formatToBuffer renders the entry into buf. Both lookups run before the
// column state is touched, so a failed entry leaves it unchanged.
func (f *AlignedFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) error {
	label, err := f.names(entry.Level)
	if err != nil {
		return err
	}
	msg, err := core.Interpolate(entry.Message, entry.Args, entry.Fields)
	if err != nil {
		return err
	}

	pad := f.pad(len(label))

	buf.WriteString(entry.Logger)
	buf.WriteByte(' ')
	buf.WriteString(label)
	buf.WriteByte(' ')
	for i := 1; i < pad; i++ {
		buf.WriteByte(' ')
	}
	buf.WriteString("| ")
	buf.WriteString(msg)
	buf.WriteByte('\n')
	return nil
}

// pad returns the width the separator is right-justified to, widening
// the column when a longer label within the hard cap shows up.
func (f *AlignedFormatter) pad(width int) int {
	if width > f.padWidth {
		if width <= f.hardCap {
			f.padWidth = width
		}
		return 0
	}
	return f.padWidth - width + 1
}
