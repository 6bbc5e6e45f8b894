package handler

import (
	"sync/atomic"

	"github.com/philipp01105/testlog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// Per test severity, indexed by level - core.StartLevel
	severities [6]uint64
	// ProcessedTotal counts entries written successfully
	ProcessedTotal uint64
	// FailedTotal counts entries that could not be formatted or written
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func severityIndex(level core.Level) (int, bool) {
	i := int(level) - int(core.StartLevel)
	return i, i >= 0 && i < 6
}

// IncrementProcessed atomically counts a written entry
func (s *Stats) IncrementProcessed(level core.Level) {
	atomic.AddUint64(&s.ProcessedTotal, 1)
	if i, ok := severityIndex(level); ok {
		atomic.AddUint64(&s.severities[i], 1)
	}
}

// IncrementFailed atomically counts a failed entry
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetCount returns how many entries of a test severity were written
func (s *Stats) GetCount(level core.Level) uint64 {
	if i, ok := severityIndex(level); ok {
		return atomic.LoadUint64(&s.severities[i])
	}
	return 0
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.severities {
		atomic.StoreUint64(&s.severities[i], 0)
	}
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Severities     map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// Failures returns the number of unexpected failures and crashes.
func (s Snapshot) Failures() uint64 {
	return s.Severities[core.FailLevel] + s.Severities[core.CrashLevel]
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Severities:     make(map[core.Level]uint64, 6),
		ProcessedTotal: s.GetProcessed(),
		FailedTotal:    s.GetFailed(),
	}
	for _, l := range core.TestLevels() {
		snap.Severities[l] = s.GetCount(l)
	}
	return snap
}
