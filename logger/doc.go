// Package logger is the public API of testlog. Most users only need to
// import this package.
//
// Loggers are obtained by name from a Registry. The first request for a
// name creates the Logger together with its own AlignedFormatter and a
// handler for the requested destination; every later request returns
// that same Logger, even if it asks for a different destination:
//
//	log, err := logger.Get("suite1", logger.Console())
//	log.TestStart("init")
//	log.TestFail("boom {0}", "x")
//
// prints
//
//	suite1 TEST-START | init
//	suite1 TEST-UNEXPECTED-FAIL | boom x
//
// Messages are templates. Positional arguments fill {0}, {1} or {};
// fields (logger.String, logger.Int, ...) passed as arguments or
// attached with With fill {name}. A template that references a missing
// argument is not written; the log call returns a
// *core.InterpolationError instead.
//
// A Logger is immutable after construction. The Registry guards its
// map with a mutex, so concurrent first-time Get calls for one name
// create a single Logger.
//
// The package-level functions (TestStart, TestPass, Info, ...) log
// through the root console logger of the default registry, whose level
// can be set with the TESTLOG_LEVEL environment variable.
package logger
