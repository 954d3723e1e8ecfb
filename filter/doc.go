// Package filter suppresses log records by message content.
//
// A ContentFilter holds an ordered list of case-insensitive regular
// expressions compiled once at construction. ShouldEmit runs an
// unanchored search over the fully interpolated message and reports
// false as soon as any pattern matches.
//
// The default pattern set targets liveness-probe noise: requests to
// /health and /api/health (with or without a trailing slash) at the
// end of the message, so that "GET /health" is dropped while
// "GET /healthcheck" still reaches the sinks.
package filter
