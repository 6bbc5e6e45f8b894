// Package zapbridge lets programs that already log with go.uber.org/zap
// emit the test severities in the aligned text format.
//
// Core implements zapcore.Core on top of a handler.Handler. The test
// severities get zap levels of their own (TestStartLevel ..
// ProcessCrashLevel), and helpers such as TestPass log at them:
//
//	zl := zapbridge.New(h, "suite1", core.InfoLevel)
//	zapbridge.TestFail(zl, "{case} failed", zap.String("case", "dom/12"))
//
// zap reports write errors to its ErrorOutput rather than to the caller.
package zapbridge
