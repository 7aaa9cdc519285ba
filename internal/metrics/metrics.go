package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	outcomes        map[string]int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*upstreamStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamCall counts an upstream call, its outcome, and stores the last observed latency.
func (r *Recorder) RecordUpstreamCall(provider, outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.outcomes[outcome]++
	stats.lastCallLatency = duration
	if outcome != OutcomeOK {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(provider, outcome, duration)
	}
}

// UpstreamCalls returns the total calls recorded for a provider.
func (r *Recorder) UpstreamCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// UpstreamErrors returns the total failed calls recorded for a provider.
func (r *Recorder) UpstreamErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	Outcomes        map[string]int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	outcomes := make(map[string]int, len(stats.outcomes))
	for k, v := range stats.outcomes {
		outcomes[k] = v
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Outcomes:        outcomes,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(provider string) *upstreamStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &upstreamStats{outcomes: make(map[string]int)}
		r.stats[provider] = stats
	}
	return stats
}
