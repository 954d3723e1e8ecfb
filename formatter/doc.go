// Package formatter defines how log records are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// The single built-in TextFormatter implements both interfaces and
// renders one line per record:
//
//	2026-03-02 00:00:00,499 - INFO - handleRequest - request served
//
// with key=value fields appended after the message. Timestamps are
// rendered by core.AppendTime in the fixed UTC+8 offset unless the
// formatter is configured with its own layout.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
