// Package sloghandler provides an adapter from handler.Handler to
// log/slog.Handler, so code that logs through the standard library can
// emit the test severities and get the aligned text output:
//
//	log := slog.New(sloghandler.NewSlogHandler(h, "suite1", core.InfoLevel))
//	log.Log(ctx, sloghandler.LevelTestPass, "case {id} passed", "id", 7)
package sloghandler
