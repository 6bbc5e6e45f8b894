// Package benchmark compares testlog's aligned text output with the
// console/text output of zap, zerolog, logrus and log/slog. It lives in
// its own module so those libraries stay out of the main go.mod.
package benchmark
