package registry

import (
	"fmt"
	"sync"

	"github.com/hupe1980/shapemesh/core"
)

// InMemoryStore is a process-local core.Registry. It offers:
//  1. Binding of measure implementations keyed by (measure, kind)
//  2. Exact-match lookup with no fallback between kinds or measures
//
// Concurrency: protected by RWMutex, so registration and dispatch may
// interleave freely across goroutines.
// Overwrites: registering a pair that already has an implementation replaces
// it silently; the last registration wins.
type InMemoryStore struct {
	mu     sync.RWMutex
	tables map[core.Measure]map[core.Kind]core.MeasureFunc // measure -> kind -> implementation
}

// NewInMemoryStore creates a new in-memory registry
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		tables: make(map[core.Measure]map[core.Kind]core.MeasureFunc),
	}
}

// Register binds fn as the implementation for the (measure, kind) pair. The
// measure's table is created lazily on its first registration and lives for
// the rest of the process.
func (s *InMemoryStore) Register(measure core.Measure, kind core.Kind, fn core.MeasureFunc) error {
	if measure == "" {
		return fmt.Errorf("measure must not be empty")
	}

	if kind == "" {
		return fmt.Errorf("kind must not be empty")
	}

	if fn == nil {
		return fmt.Errorf("implementation for %s/%s must not be nil", measure, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tables[measure]; !exists {
		s.tables[measure] = make(map[core.Kind]core.MeasureFunc)
	}
	s.tables[measure][kind] = fn
	return nil
}

// Lookup returns the implementation for the exact (measure, kind) pair.
func (s *InMemoryStore) Lookup(measure core.Measure, kind core.Kind) (core.MeasureFunc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, exists := s.tables[measure]
	if !exists {
		return nil, false
	}
	fn, exists := table[kind]
	return fn, exists
}

// Table returns a read view over the measure's implementations. The view is
// live: registrations made after the call are visible through it. The second
// return is false when nothing has ever been registered for the measure.
func (s *InMemoryStore) Table(measure core.Measure) (core.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, exists := s.tables[measure]; !exists {
		return nil, false
	}
	return &tableView{store: s, measure: measure}, true
}

// Measures lists every measure that currently owns a table, in map order.
func (s *InMemoryStore) Measures() []core.Measure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	measures := make([]core.Measure, 0, len(s.tables))
	for measure := range s.tables {
		measures = append(measures, measure)
	}
	return measures
}

// tableView is a live read view over one measure's table. It holds no copy;
// every call re-reads the store under its lock, so a view handed out before a
// registration still sees it.
type tableView struct {
	store   *InMemoryStore
	measure core.Measure
}

// Measure returns the tag this table belongs to.
func (t *tableView) Measure() core.Measure { return t.measure }

// Lookup returns the implementation for a shape kind, if one is registered.
func (t *tableView) Lookup(kind core.Kind) (core.MeasureFunc, bool) {
	return t.store.Lookup(t.measure, kind)
}

// Kinds lists the covered shape kinds, in map order.
func (t *tableView) Kinds() []core.Kind {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	table := t.store.tables[t.measure]
	kinds := make([]core.Kind, 0, len(table))
	for kind := range table {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Len returns the number of registered implementations for this measure.
func (t *tableView) Len() int {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return len(t.store.tables[t.measure])
}
