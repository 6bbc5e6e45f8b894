package zapbridge

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/testlog/core"
)

// zap levels for the test severities. They reuse the core ranks, which
// are well above zap's own levels.
const (
	TestStartLevel     = zapcore.Level(core.StartLevel)
	TestEndLevel       = zapcore.Level(core.EndLevel)
	TestPassLevel      = zapcore.Level(core.PassLevel)
	TestKnownFailLevel = zapcore.Level(core.KnownFailLevel)
	TestFailLevel      = zapcore.Level(core.FailLevel)
	ProcessCrashLevel  = zapcore.Level(core.CrashLevel)
)

// FromZapLevel converts a zap level to a core.Level.
func FromZapLevel(l zapcore.Level) core.Level {
	switch {
	case l >= TestStartLevel && l <= ProcessCrashLevel:
		return core.Level(l)
	case l <= zapcore.DebugLevel:
		return core.DebugLevel
	case l == zapcore.InfoLevel:
		return core.InfoLevel
	case l == zapcore.WarnLevel:
		return core.WarnLevel
	case l == zapcore.ErrorLevel:
		return core.ErrorLevel
	case l == zapcore.DPanicLevel, l == zapcore.PanicLevel:
		return core.PanicLevel
	case l == zapcore.FatalLevel:
		return core.FatalLevel
	default:
		return core.ErrorLevel
	}
}

func logAt(l *zap.Logger, lvl zapcore.Level, msg string, fields []zap.Field) {
	if ce := l.Check(lvl, msg); ce != nil {
		ce.Write(fields...)
	}
}

// TestStart logs a test start message through a zap logger
func TestStart(l *zap.Logger, msg string, fields ...zap.Field) {
	logAt(l, TestStartLevel, msg, fields)
}

// TestEnd logs a test end message through a zap logger
func TestEnd(l *zap.Logger, msg string, fields ...zap.Field) {
	logAt(l, TestEndLevel, msg, fields)
}

// TestPass logs a test pass message through a zap logger
func TestPass(l *zap.Logger, msg string, fields ...zap.Field) {
	logAt(l, TestPassLevel, msg, fields)
}

// TestFail logs an unexpected test failure through a zap logger
func TestFail(l *zap.Logger, msg string, fields ...zap.Field) {
	logAt(l, TestFailLevel, msg, fields)
}

// TestKnownFail logs an expected test failure through a zap logger
func TestKnownFail(l *zap.Logger, msg string, fields ...zap.Field) {
	logAt(l, TestKnownFailLevel, msg, fields)
}

// ProcessCrash logs a process crash message through a zap logger
func ProcessCrash(l *zap.Logger, msg string, fields ...zap.Field) {
	logAt(l, ProcessCrashLevel, msg, fields)
}
