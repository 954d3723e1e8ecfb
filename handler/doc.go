// Package handler defines the sink interface and the fan-out handler
// that ties the file and console sinks together.
//
// All handlers in this module are synchronous: Handle formats and
// writes the record before returning and must not retain the record
// afterwards, which lets the logger recycle records through the pool
// in core. Each concrete handler serializes its format-and-write path
// behind a single mutex, so a formatted line is always written whole
// and two goroutines can never interleave output or race a rotation.
package handler
