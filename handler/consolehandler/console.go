package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/woodyhq/woodlog/core"
	"github.com/woodyhq/woodlog/formatter"
	"github.com/woodyhq/woodlog/handler"
)

// Config holds configuration for the console handler
type Config struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// ConsoleHandler writes formatted lines to a console stream
type ConsoleHandler struct {
	mu              sync.Mutex
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	stats           *handler.Stats
}

// New creates a new console handler
func New(cfg Config) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}

	// Cache WriterFormatter so the write path is a single Write call
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle writes a formatted record to the console writer
func (h *ConsoleHandler) Handle(r *core.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.writerFormatter != nil {
		err = h.writerFormatter.FormatTo(r, h.writer)
	} else {
		var data []byte
		data, err = h.formatter.Format(r)
		if err == nil {
			_, err = h.writer.Write(data)
		}
	}

	if err != nil {
		h.stats.IncrementWriteErrors()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; the console stream is not owned by the handler
func (h *ConsoleHandler) Close() error {
	return nil
}
