package consolehandler_test

import (
	"os"

	"github.com/philipp01105/testlog/core"
	"github.com/philipp01105/testlog/handler/consolehandler"
)

// Create a console handler writing aligned lines to stdout.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
	})
	defer h.Close()

	_ = h.Handle(&core.Entry{Logger: "suite1", Level: core.StartLevel, Message: "init"})
	_ = h.Handle(&core.Entry{Logger: "suite1", Level: core.KnownFailLevel, Message: "flaky"})
	// Output:
	// suite1 TEST-START | init
	// suite1 TEST-KNOWN-FAIL | flaky
}
