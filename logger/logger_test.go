package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/philipp01105/testlog/core"
	"github.com/philipp01105/testlog/handler/consolehandler"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: buf})
	return NewBuilder().
		WithName("t").
		WithHandler(h).
		WithLevel(level).
		Build()
}

func TestLogger_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel)

	// Debug should not be logged (below Info level)
	logger.Debug("debug message")
	if buf.Len() > 0 {
		t.Error("Debug message was logged when level is Info")
	}

	// Every test severity sits above Info
	logger.TestStart("started")
	logger.TestKnownFail("known")
	logger.ProcessCrash("crashed")
	for _, want := range []string{"started", "known", "crashed"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Expected %q in output, got: %s", want, buf.String())
		}
	}

	buf.Reset()
	warnLogger := newTestLogger(&buf, WarnLevel)
	warnLogger.TestPass("quiet")
	if buf.Len() > 0 {
		t.Errorf("Test severity was logged when level is Warn: %s", buf.String())
	}
	warnLogger.Warn("warn message")
	if !strings.Contains(buf.String(), "t WARN | warn message") {
		t.Errorf("Expected warn line in output, got: %s", buf.String())
	}
}

func TestLogger_SeverityMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel)

	tests := []struct {
		log   func(string, ...interface{}) error
		label string
	}{
		{logger.TestStart, "TEST-START"},
		{logger.TestEnd, "TEST-END"},
		{logger.TestPass, "TEST-PASS"},
		{logger.TestFail, "TEST-UNEXPECTED-FAIL"},
		{logger.TestKnownFail, "TEST-KNOWN-FAIL"},
		{logger.ProcessCrash, "PROCESS-CRASH"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			buf.Reset()
			if err := tt.log("msg {0}", 1); err != nil {
				t.Fatalf("log error = %v", err)
			}
			line := buf.String()
			if !strings.HasPrefix(line, "t "+tt.label+" ") {
				t.Errorf("Expected line to start with %q, got: %q", "t "+tt.label, line)
			}
			if !strings.HasSuffix(line, "| msg 1\n") {
				t.Errorf("Expected line to end with '| msg 1', got: %q", line)
			}
		})
	}
}

func TestLogger_Scenario(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel)
	logger = NewBuilder().WithName("suite1").WithHandler(logger.Handler()).Build()

	if err := logger.TestStart("init"); err != nil {
		t.Fatal(err)
	}
	if err := logger.TestFail("boom {0}", "x"); err != nil {
		t.Fatal(err)
	}

	want := "suite1 TEST-START | init\nsuite1 TEST-UNEXPECTED-FAIL | boom x\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogger_KeywordArguments(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel).With(String("suite", "dom"))

	err := logger.TestFail("{suite}/{case} failed after {0}", Int("case", 12), "3s")
	if err != nil {
		t.Fatalf("TestFail() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "| dom/12 failed after 3s\n") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestLogger_InterpolationErrorPropagates(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel)

	err := logger.TestFail("boom {0} {1}", "x")
	var ie *core.InterpolationError
	if !errors.As(err, &ie) {
		t.Fatalf("TestFail() error = %v, want *core.InterpolationError", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing written, got: %q", buf.String())
	}
}

func TestLogger_UnregisteredLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel)

	err := logger.Log(core.Level(96), "x")
	var lookupErr *core.LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("Log() error = %v, want *core.LookupError", err)
	}
}

func TestLogger_PlainMessageKeepsBraces(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel)

	if err := logger.Info("map[{a}]"); err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "| map[{a}]\n") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestLogger_DefaultFieldsWithoutCallArguments(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel).With(String("run", "1"))

	if err := logger.TestStart("map{a}"); err != nil {
		t.Fatalf("TestStart() error = %v", err)
	}
	if err := logger.TestEnd("run {run}"); err != nil {
		t.Fatalf("TestEnd() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "| map{a}") {
		t.Errorf("line 0 = %q, want template verbatim", lines[0])
	}
	if !strings.HasSuffix(lines[1], "| run {run}") {
		t.Errorf("line 1 = %q, want template verbatim", lines[1])
	}
}

func TestLogger_ImmutableWith(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, InfoLevel)
	child := parent.With(String("k", "v"))

	if err := child.Info("{k}={0}", "x"); err != nil {
		t.Fatalf("child Info() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "| v=x\n") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
	if err := parent.Info("{k}", "positional"); err == nil {
		t.Error("Parent logger picked up the child's fields")
	}
	if child.Name() != parent.Name() || child.Level() != parent.Level() {
		t.Error("Child logger should keep name and level")
	}
}

func TestLogger_NoHandler(t *testing.T) {
	logger := NewBuilder().Build()
	if err := logger.TestPass("nowhere"); err != nil {
		t.Errorf("TestPass() without handler error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() without handler error = %v", err)
	}
	if logger.Name() != "root" {
		t.Errorf("Name() = %q, want root", logger.Name())
	}
}

func TestLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel)

	// Override osExit to capture exit code instead of actually exiting
	exitCode := 0
	origExit := osExit
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = origExit }()

	logger.Fatal("fatal {0}", "error")

	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "FATAL | fatal error") {
		t.Errorf("Expected fatal line in output, got: %s", buf.String())
	}
}

func TestLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, InfoLevel)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic")
		}
		if r != "panic message" {
			t.Errorf("Expected panic value 'panic message', got %v", r)
		}
		if !strings.Contains(buf.String(), "PANIC | panic message") {
			t.Errorf("Expected panic line in output, got: %s", buf.String())
		}
	}()

	logger.Panic("panic message")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"panic", PanicLevel},
		{"test-pass", PassLevel},
		{"TEST-UNEXPECTED-FAIL", FailLevel},
		{" process-crash ", CrashLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
