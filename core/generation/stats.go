package generation

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// maxStatsHistory bounds the in-memory run history.
const maxStatsHistory = 1000

// RunRecord is one entry of the tracker's run history.
type RunRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Competency   string    `json:"competency"`
	Role         string    `json:"role"`
	Archetype    string    `json:"archetype"`
	Quality      float64   `json:"quality"`
	MetThreshold bool      `json:"met_threshold"`
	IsFallback   bool      `json:"is_fallback"`
}

// Statistics is a point-in-time snapshot of the tracker.
type Statistics struct {
	TotalGenerated  int     `json:"total_generated"`
	MeetingThreshold int     `json:"meeting_threshold"`
	AverageQuality  float64 `json:"average_quality"`
	FallbackCount   int     `json:"fallback_count"`
}

// StatisticsTracker accumulates process-wide generation telemetry. It is
// injected into engines rather than shared implicitly, and every update goes
// through the mutex so concurrent engines can share one tracker. Telemetry
// never influences generation results.
type StatisticsTracker struct {
	mu        sync.Mutex
	qualities []float64
	history   []RunRecord
	meets     int
	fallbacks int
}

// NewStatisticsTracker creates an empty tracker.
func NewStatisticsTracker() *StatisticsTracker {
	return &StatisticsTracker{}
}

// Record appends one run to the tracker.
func (t *StatisticsTracker) Record(rec RunRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.qualities = append(t.qualities, rec.Quality)
	if rec.MetThreshold {
		t.meets++
	}
	if rec.IsFallback {
		t.fallbacks++
	}
	t.history = append(t.history, rec)
	if len(t.history) > maxStatsHistory {
		t.history = t.history[len(t.history)-maxStatsHistory:]
	}
}

// Snapshot returns current aggregate statistics.
func (t *StatisticsTracker) Snapshot() Statistics {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Statistics{
		TotalGenerated:   len(t.qualities),
		MeetingThreshold: t.meets,
		FallbackCount:    t.fallbacks,
	}
	if len(t.qualities) > 0 {
		s.AverageQuality = stat.Mean(t.qualities, nil)
	}
	return s
}

// History returns a copy of the recorded runs, oldest first.
func (t *StatisticsTracker) History() []RunRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]RunRecord{}, t.history...)
}
