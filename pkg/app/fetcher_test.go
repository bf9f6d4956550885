package app

import (
	"context"
	"testing"

	"github.com/agroplanner/fieldops/pkg/store"
	"github.com/agroplanner/fieldops/pkg/task"
)

type tempConfig struct {
	path string
}

func (c *tempConfig) APIBase() string   { return "" }
func (c *tempConfig) Token() string     { return "" }
func (c *tempConfig) CachePath() string { return c.path }

func seededCache(t *testing.T) *store.Cache {
	t.Helper()
	cache, err := store.Open(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	if err := cache.PutTasks("2024-01", []task.Task{
		{ID: "T0", DateKey: "2024-01-15", PlotID: "P1"},
		{ID: "T1", DateKey: "2024-01-31", PlotID: "P1", ProposedDateKey: "2024-02-02"},
	}); err != nil {
		t.Fatalf("seed january: %v", err)
	}
	if err := cache.PutTasks("2024-02", []task.Task{
		{ID: "T2", DateKey: "2024-02-01", PlotID: "P1"},
		{ID: "T3", DateKey: "2024-02-29", PlotID: "P2"},
	}); err != nil {
		t.Fatalf("seed february: %v", err)
	}
	return cache
}

func TestCacheFetcherTasksBetween(t *testing.T) {
	f := CacheFetcher{Cache: seededCache(t)}

	got, err := f.TasksBetween(context.Background(), "2024-01-20", "2024-02-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "T1" || got[1].ID != "T2" {
		t.Fatalf("unexpected window contents: %v", got)
	}
}

func TestCacheFetcherUnsyncedMonthReadsEmpty(t *testing.T) {
	f := CacheFetcher{Cache: seededCache(t)}
	got, err := f.TasksBetween(context.Background(), "2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty window, got %v", got)
	}
}

func TestCacheFetcherProposals(t *testing.T) {
	f := CacheFetcher{Cache: seededCache(t)}
	got, err := f.Proposals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "T1" {
		t.Fatalf("unexpected proposals: %v", got)
	}
}
