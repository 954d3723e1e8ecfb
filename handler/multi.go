package handler

import "github.com/woodyhq/woodlog/core"

// MultiHandler sends log records to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle processes a log record by sending it to all handlers. Every
// handler gets the record even if an earlier one fails; the last error
// is returned.
func (h *MultiHandler) Handle(r *core.Record) error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Handle(r); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
