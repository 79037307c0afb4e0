package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hupe1980/shapemesh/core"
)

// Interface compliance (compile-time assertions)
var _ core.Registry = (*InMemoryStore)(nil)

// constant returns an implementation that ignores its shape and yields v.
func constant(v float64) core.MeasureFunc {
	return func(core.Shape) (float64, error) { return v, nil }
}

func TestInMemoryStore_RegisterAndLookup(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Register("area", "square", constant(100)); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	fn, ok := store.Lookup("area", "square")
	if !ok {
		t.Fatalf("expected implementation for area/square")
	}
	got, err := fn(nil)
	if err != nil || got != 100 {
		t.Fatalf("unexpected result: %v, %v", got, err)
	}
}

func TestInMemoryStore_ExactMatchOnly(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Register("area", "square", constant(1)); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	// same measure, unregistered kind: the table exists but the kind misses
	if _, ok := store.Lookup("area", "circle"); ok {
		t.Fatalf("expected no fallback to another kind")
	}
	if _, ok := store.Table("area"); !ok {
		t.Fatalf("expected table for area")
	}
	// unregistered measure: no table at all
	if _, ok := store.Lookup("perimeter", "square"); ok {
		t.Fatalf("expected miss for unregistered measure")
	}
	if _, ok := store.Table("perimeter"); ok {
		t.Fatalf("expected no table for unregistered measure")
	}
}

func TestInMemoryStore_OverwriteLastWins(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Register("area", "square", constant(1)); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := store.Register("area", "square", constant(2)); err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	fn, ok := store.Lookup("area", "square")
	if !ok {
		t.Fatalf("expected implementation after overwrite")
	}
	if got, _ := fn(nil); got != 2 {
		t.Fatalf("expected last registration to win, got %v", got)
	}
	// overwrites never grow the table
	table, _ := store.Table("area")
	if table.Len() != 1 {
		t.Fatalf("expected table length 1, got %d", table.Len())
	}
}

func TestInMemoryStore_RejectsInvalidRegistrations(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Register("", "square", constant(1)); err == nil {
		t.Fatalf("expected error for empty measure")
	}
	if err := store.Register("area", "", constant(1)); err == nil {
		t.Fatalf("expected error for empty kind")
	}
	if err := store.Register("area", "square", nil); err == nil {
		t.Fatalf("expected error for nil implementation")
	}
}

func TestInMemoryStore_TableViewIsLive(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Register("area", "square", constant(1)); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	table, ok := store.Table("area")
	if !ok {
		t.Fatalf("expected table for area")
	}
	if table.Measure() != "area" {
		t.Fatalf("unexpected table measure: %s", table.Measure())
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 implementation, got %d", table.Len())
	}
	// a registration after the view was taken is visible through it
	if err := store.Register("area", "circle", constant(2)); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, ok := table.Lookup("circle"); !ok {
		t.Fatalf("expected live view to see new registration")
	}

	sortKinds := cmpopts.SortSlices(func(a, b core.Kind) bool { return a < b })
	want := []core.Kind{"circle", "square"}
	if diff := cmp.Diff(want, table.Kinds(), sortKinds); diff != "" {
		t.Errorf("unexpected kinds (-want +got):\n%s", diff)
	}
}

func TestInMemoryStore_Measures(t *testing.T) {
	store := NewInMemoryStore()
	if got := store.Measures(); len(got) != 0 {
		t.Fatalf("expected no measures on empty store, got %v", got)
	}
	for _, measure := range []core.Measure{"area", "perimeter", "area"} {
		if err := store.Register(measure, "square", constant(1)); err != nil {
			t.Fatalf("register failed: %v", err)
		}
	}

	sortMeasures := cmpopts.SortSlices(func(a, b core.Measure) bool { return a < b })
	want := []core.Measure{"area", "perimeter"}
	if diff := cmp.Diff(want, store.Measures(), sortMeasures); diff != "" {
		t.Errorf("unexpected measures (-want +got):\n%s", diff)
	}
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryStore()
	wg := sync.WaitGroup{}
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			measure := core.Measure(fmt.Sprintf("measure_%d", i%5))
			kind := core.Kind(fmt.Sprintf("kind_%d", i))
			if err := store.Register(measure, kind, constant(float64(i))); err != nil {
				t.Errorf("register error: %v", err)
			}
			if _, ok := store.Lookup(measure, kind); !ok {
				t.Errorf("lookup miss for %s/%s", measure, kind)
			}
			if table, ok := store.Table(measure); ok {
				_ = table.Kinds()
				_ = table.Len()
			}
			_ = store.Measures()
		}(i)
	}
	wg.Wait()
	// final read
	if got := len(store.Measures()); got != 5 {
		t.Fatalf("expected 5 measures after concurrent registrations, got %d", got)
	}
}
