package logger

import (
	"strings"

	"github.com/philipp01105/testlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel     = core.DebugLevel
	InfoLevel      = core.InfoLevel
	WarnLevel      = core.WarnLevel
	ErrorLevel     = core.ErrorLevel
	FatalLevel     = core.FatalLevel
	PanicLevel     = core.PanicLevel
	StartLevel     = core.StartLevel
	EndLevel       = core.EndLevel
	PassLevel      = core.PassLevel
	KnownFailLevel = core.KnownFailLevel
	FailLevel      = core.FailLevel
	CrashLevel     = core.CrashLevel
)

// ParseLevel converts a string to a Level. Registered display names such
// as TEST-PASS are accepted too; anything unknown yields InfoLevel.
func ParseLevel(s string) Level {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch upper {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "FATAL":
		return FatalLevel
	case "PANIC":
		return PanicLevel
	}
	if l, ok := core.LevelByName(upper); ok {
		return l
	}
	return InfoLevel
}
