package qbridge

import (
	"sync"
	"time"
)

// Metrics tracks QPU activity. All counters are guarded by the mutex;
// readers take a Snapshot instead of touching the fields directly.
type Metrics struct {
	mu sync.Mutex

	executions    int64
	failures      int64
	calibrations  int64
	shotsTaken    int64
	totalExecTime time.Duration
}

// MetricsSnapshot is a point-in-time copy of the counters, safe to
// read without holding any lock.
type MetricsSnapshot struct {
	Executions     int64
	Failures       int64
	Calibrations   int64
	ShotsTaken     int64
	AverageLatency time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordExecution(start time.Time, shots int, success bool) {
	duration := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.executions++
	m.totalExecTime += duration
	if success {
		m.shotsTaken += int64(shots)
	} else {
		m.failures++
	}
}

func (m *Metrics) recordCalibration() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calibrations++
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := MetricsSnapshot{
		Executions:   m.executions,
		Failures:     m.failures,
		Calibrations: m.calibrations,
		ShotsTaken:   m.shotsTaken,
	}
	if m.executions > 0 {
		snap.AverageLatency = m.totalExecTime / time.Duration(m.executions)
	}
	return snap
}
