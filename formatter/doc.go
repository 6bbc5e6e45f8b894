// Package formatter defines how log entries are rendered into text.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available.
//
// AlignedFormatter renders each entry as
//
//	<logger> <LABEL><padding>| <message>
//
// and keeps the '|' column stable across lines. The column is sized to
// the widest label the formatter has seen so far; it widens when a
// longer label arrives and never narrows. Lines already written are not
// re-aligned. Labels longer than every name registered when the
// formatter was built never move the column.
//
// An AlignedFormatter carries mutable state and must not be used from
// several goroutines without external locking. The console and file
// handlers format under their own mutex.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
