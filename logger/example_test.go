package logger_test

import (
	"os"

	"github.com/philipp01105/testlog/logger"
)

// Request a named logger and report test progress.
func Example() {
	r := logger.NewRegistry(logger.Config{Writer: os.Stdout})
	defer r.Close()

	log, err := r.Get("suite1", logger.Console())
	if err != nil {
		return
	}
	log.TestStart("init")
	log.TestPass("{0} cases", 12)
	log.TestFail("boom {0}", "x")
	log.TestEnd("done")
	// Output:
	// suite1 TEST-START | init
	// suite1 TEST-PASS  | 12 cases
	// suite1 TEST-UNEXPECTED-FAIL | boom x
	// suite1 TEST-END             | done
}

// Use fields as keyword arguments.
func ExampleLogger_With() {
	r := logger.NewRegistry(logger.Config{Writer: os.Stdout})
	defer r.Close()

	log, _ := r.Get("runner", logger.Console())
	crashLog := log.With(logger.String("proc", "firefox"))
	crashLog.ProcessCrash("{proc} exited with signal {sig}", logger.Int("sig", 11))
	// Output:
	// runner PROCESS-CRASH | firefox exited with signal 11
}
