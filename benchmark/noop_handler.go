package benchmark

import (
	"github.com/philipp01105/testlog/core"
	"github.com/philipp01105/testlog/handler"
)

// noopHandler measures the logger path without any formatting.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
