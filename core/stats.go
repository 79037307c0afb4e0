package core

import "sync"

// Stats is a point-in-time snapshot of dispatch activity.
type Stats struct {
	// Calculations counts every dispatch attempt, including failures.
	Calculations int
	// Failures counts dispatches that returned an error.
	Failures int
	// ByMeasure counts dispatch attempts per measure.
	ByMeasure map[Measure]int
}

// StatsCollector accumulates dispatch counters.
type StatsCollector struct {
	mu           sync.Mutex
	calculations int
	failures     int
	byMeasure    map[Measure]int
}

// NewStatsCollector creates an empty collector.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{byMeasure: make(map[Measure]int)}
}

// Record counts one dispatch attempt for the measure.
func (sc *StatsCollector) Record(measure Measure, success bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.calculations++
	if !success {
		sc.failures++
	}

	sc.byMeasure[measure]++
}

// Snapshot returns a copy of the counters that is safe to retain.
func (sc *StatsCollector) Snapshot() Stats {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	byMeasure := make(map[Measure]int, len(sc.byMeasure))
	for measure, count := range sc.byMeasure {
		byMeasure[measure] = count
	}

	return Stats{
		Calculations: sc.calculations,
		Failures:     sc.failures,
		ByMeasure:    byMeasure,
	}
}
