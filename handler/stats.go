package handler

import "sync/atomic"

// Stats tracks per-handler emission counters
type Stats struct {
	processed   atomic.Uint64
	writeErrors atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed records a successfully written record
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementWriteErrors records a failed write
func (s *Stats) IncrementWriteErrors() {
	s.writeErrors.Add(1)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Processed   uint64
	WriteErrors uint64
}

// GetSnapshot returns a snapshot of the current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed:   s.processed.Load(),
		WriteErrors: s.writeErrors.Load(),
	}
}
