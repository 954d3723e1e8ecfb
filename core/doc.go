// Package core defines the shared types used across the woodlog facility.
//
// It provides the Level type for severity filtering, the Record type that
// represents a single log event, and the Field type for zero-allocation
// key-value pairs.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get a Record with GetRecord and must
// return it with PutRecord once every handler has consumed it. All
// handlers in this module are synchronous, so recycling after Handle
// returns is always safe.
//
// The package also owns the facility's civil clock: every displayed
// timestamp and every rotation decision is made in a fixed UTC+8
// offset, never in the host timezone. RenderTime and DateOf are pure
// functions of their time.Time argument, so output is identical across
// deployment environments.
package core
