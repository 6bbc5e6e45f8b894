package logger

import (
	"fmt"
	"os"

	"github.com/philipp01105/testlog/core"
	"github.com/philipp01105/testlog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is a named handle coupling a threshold with one handler (immutable)
type Logger struct {
	name    string
	handler handler.Handler
	level   core.Level
	fields  []core.Field
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name    string
	handler handler.Handler
	level   core.Level
	fields  []core.Field
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		name:  rootName,
		level: core.InfoLevel, // Default level
	}
}

// WithName sets the name printed at the start of every line
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default keyword arguments to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		name:    b.name,
		handler: b.handler,
		level:   b.level,
		fields:  b.fields,
	}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the minimum level the logger emits
func (l *Logger) Level() core.Level {
	return l.level
}

// Handler returns the handler the logger writes to
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// With creates a new Logger with additional keyword arguments (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		name:    l.name,
		handler: l.handler,
		level:   l.level,
		fields:  newFields,
	}
}

// Log logs a message at the specified level. Arguments of type
// core.Field are keyword arguments; all others are positional.
// A call without arguments writes msg verbatim, even when the logger
// carries default fields. Formatting and write errors are returned.
func (l *Logger) Log(level core.Level, msg string, args ...interface{}) error {
	// Level check optimization - exit early BEFORE any allocations
	if level < l.level {
		return nil
	}
	return l.log(level, msg, args)
}

func (l *Logger) log(level core.Level, msg string, args []interface{}) error {
	if l.handler == nil {
		return nil
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Logger = l.name
	entry.Level = level
	entry.Message = msg

	if len(args) > 0 && len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	for _, arg := range args {
		if f, ok := arg.(core.Field); ok {
			entry.Fields = append(entry.Fields, f)
			continue
		}
		entry.Args = append(entry.Args, arg)
	}

	return l.handler.Handle(entry)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) error {
	return l.Log(core.DebugLevel, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) error {
	return l.Log(core.InfoLevel, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) error {
	return l.Log(core.WarnLevel, msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) error {
	return l.Log(core.ErrorLevel, msg, args...)
}

// Fatal logs a fatal message and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, args ...interface{}) {
	_ = l.log(core.FatalLevel, msg, args)
	osExit(1)
}

// Panic logs a panic message and panics with the message template
func (l *Logger) Panic(msg string, args ...interface{}) {
	if err := l.log(core.PanicLevel, msg, args); err != nil {
		panic(fmt.Sprintf("%s (%v)", msg, err))
	}
	panic(msg)
}

// TestStart logs a test start message
func (l *Logger) TestStart(msg string, args ...interface{}) error {
	return l.Log(core.StartLevel, msg, args...)
}

// TestEnd logs a test end message
func (l *Logger) TestEnd(msg string, args ...interface{}) error {
	return l.Log(core.EndLevel, msg, args...)
}

// TestPass logs a test pass message
func (l *Logger) TestPass(msg string, args ...interface{}) error {
	return l.Log(core.PassLevel, msg, args...)
}

// TestFail logs an unexpected test failure
func (l *Logger) TestFail(msg string, args ...interface{}) error {
	return l.Log(core.FailLevel, msg, args...)
}

// TestKnownFail logs an expected test failure
func (l *Logger) TestKnownFail(msg string, args ...interface{}) error {
	return l.Log(core.KnownFailLevel, msg, args...)
}

// ProcessCrash logs a process crash message
func (l *Logger) ProcessCrash(msg string, args ...interface{}) error {
	return l.Log(core.CrashLevel, msg, args...)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
