package corpus

import (
	"sort"
	"sync"
	"time"
)

// Scan phases recorded by Timings. PhaseAnalyze includes loading.
const (
	PhaseLoad    = "load"
	PhaseAnalyze = "analyze"
	PhaseScan    = "scan"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
}

// TimingSnapshot is a point-in-time aggregate of one phase's samples.
type TimingSnapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

// Timings tracks recent per-phase durations within a rolling window.
type Timings struct {
	mu      sync.Mutex
	samples map[string][]sample
	maxAge  time.Duration
}

func NewTimings(maxAge time.Duration) *Timings {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Timings{
		samples: make(map[string][]sample),
		maxAge:  maxAge,
	}
}

// Record adds one sample. A nil receiver discards it.
func (t *Timings) Record(phase string, d time.Duration) {
	if t == nil {
		return
	}
	ms := max(d.Milliseconds(), 0)
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pruneLocked(phase, now)
	t.samples[phase] = append(t.samples[phase], sample{timestamp: now, durationMs: ms})
}

// Snapshot aggregates every phase that still has samples in the window.
func (t *Timings) Snapshot() map[string]TimingSnapshot {
	out := map[string]TimingSnapshot{}
	if t == nil {
		return out
	}
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	for phase := range t.samples {
		t.pruneLocked(phase, now)
		if snap, ok := aggregate(t.samples[phase]); ok {
			out[phase] = snap
		}
	}
	return out
}

func aggregate(samples []sample) (TimingSnapshot, bool) {
	if len(samples) == 0 {
		return TimingSnapshot{}, false
	}
	values := make([]int64, 0, len(samples))
	var sum int64
	for _, sm := range samples {
		values = append(values, sm.durationMs)
		sum += sm.durationMs
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return TimingSnapshot{
		Count: len(values),
		MinMs: values[0],
		MaxMs: values[len(values)-1],
		AvgMs: float64(sum) / float64(len(values)),
		P50Ms: percentile(values, 50),
		P95Ms: percentile(values, 95),
		P99Ms: percentile(values, 99),
	}, true
}

func (t *Timings) pruneLocked(phase string, now time.Time) {
	cutoff := now.Add(-t.maxAge)
	samples := t.samples[phase]
	writeIdx := 0
	for _, sm := range samples {
		if !sm.timestamp.Before(cutoff) {
			samples[writeIdx] = sm
			writeIdx++
		}
	}
	t.samples[phase] = samples[:writeIdx]
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
