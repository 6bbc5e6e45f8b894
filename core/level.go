package core

import (
	"fmt"
	"math"
	"strconv"
	"sync"
)

// Level represents the severity rank of a log entry
type Level int8

// Built-in levels are spaced ten apart so application levels can be
// placed between them without colliding.
const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// InfoLevel for general informational messages (default threshold)
	InfoLevel Level = 20
	// WarnLevel for warning messages
	WarnLevel Level = 30
	// ErrorLevel for error messages
	ErrorLevel Level = 40
	// FatalLevel for fatal messages (causes os.Exit(1))
	FatalLevel Level = 50
	// PanicLevel for panic messages (causes panic)
	PanicLevel Level = 60
)

// Test severities, layered directly above InfoLevel.
const (
	// StartLevel marks the start of a test
	StartLevel = InfoLevel + 1 + iota
	// EndLevel marks the end of a test
	EndLevel
	// PassLevel reports a passing test
	PassLevel
	// KnownFailLevel reports an expected failure
	KnownFailLevel
	// FailLevel reports an unexpected failure
	FailLevel
	// CrashLevel reports a crashed process
	CrashLevel
)

// severityOrder lists the test severity keys in rank order.
var severityOrder = [...]string{"START", "END", "PASS", "KNOWN_FAIL", "FAIL", "CRASH"}

// MaxDefineBase is the highest base Define accepts; base+6 must still
// fit in a Level.
const MaxDefineBase = Level(math.MaxInt8 - len(severityOrder))

// Define assigns the test severities to base+1 .. base+6 in the order
// START, END, PASS, KNOWN_FAIL, FAIL, CRASH. Bases above MaxDefineBase
// are rejected.
//
// The caller must make sure none of the returned ranks is already in
// use; Define does not check for collisions.
func Define(base Level) (map[string]Level, error) {
	if base > MaxDefineBase {
		return nil, fmt.Errorf("define test levels: base %d above %d", int(base), int(MaxDefineBase))
	}
	m := make(map[string]Level, len(severityOrder))
	for i, name := range severityOrder {
		m[name] = base + Level(i+1)
	}
	return m, nil
}

// TestLevels returns the test severities in rank order.
func TestLevels() []Level {
	return []Level{StartLevel, EndLevel, PassLevel, KnownFailLevel, FailLevel, CrashLevel}
}

var (
	namesMu    sync.RWMutex
	levelNames = map[Level]string{
		DebugLevel:     "DEBUG",
		InfoLevel:      "INFO",
		WarnLevel:      "WARN",
		ErrorLevel:     "ERROR",
		FatalLevel:     "FATAL",
		PanicLevel:     "PANIC",
		StartLevel:     "TEST-START",
		EndLevel:       "TEST-END",
		PassLevel:      "TEST-PASS",
		KnownFailLevel: "TEST-KNOWN-FAIL",
		FailLevel:      "TEST-UNEXPECTED-FAIL",
		CrashLevel:     "PROCESS-CRASH",
	}
)

// RegisterLevelName binds a display name to a level for the whole
// process. Registering a level twice keeps the last name.
func RegisterLevelName(level Level, name string) {
	namesMu.Lock()
	levelNames[level] = name
	namesMu.Unlock()
}

// LevelName returns the display name bound to level, or a *LookupError
// if none was registered.
func LevelName(level Level) (string, error) {
	namesMu.RLock()
	name, ok := levelNames[level]
	namesMu.RUnlock()
	if !ok {
		return "", &LookupError{Level: level}
	}
	return name, nil
}

// LevelByName returns the level registered under name.
func LevelByName(name string) (Level, bool) {
	namesMu.RLock()
	defer namesMu.RUnlock()
	for l, n := range levelNames {
		if n == name {
			return l, true
		}
	}
	return 0, false
}

// MaxLevelNameWidth returns the length of the longest registered name.
func MaxLevelNameWidth() int {
	namesMu.RLock()
	defer namesMu.RUnlock()
	width := 0
	for _, n := range levelNames {
		if len(n) > width {
			width = len(n)
		}
	}
	return width
}

// String returns the display name of the level
func (l Level) String() string {
	if name, err := LevelName(l); err == nil {
		return name
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// LookupError is returned when a level has no display name.
type LookupError struct {
	Level Level
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no display name registered for level %d", int(e.Level))
}
