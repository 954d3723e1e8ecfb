package handler

import "github.com/woodyhq/woodlog/core"

// Handler defines the interface for log sinks
type Handler interface {
	// Handle formats and writes a log record synchronously. The record
	// must not be retained after Handle returns.
	Handle(r *core.Record) error

	// Close flushes and releases the sink's resources
	Close() error
}

// StatsProvider is an optional interface for handlers that track
// emission counters.
type StatsProvider interface {
	Stats() Snapshot
}
