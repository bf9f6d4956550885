// Package app wires the fetch collaborators to the view builders. Service
// assembles internally consistent snapshots of backend records; the pure
// schedule/report/insight packages do everything else.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agroplanner/fieldops/pkg/datekey"
	"github.com/agroplanner/fieldops/pkg/task"
)

// Fetcher supplies raw records. Implementations fetch live from the
// backend, read the local cache, or fake it in tests.
type Fetcher interface {
	Plots(ctx context.Context) ([]task.Plot, error)
	Workers(ctx context.Context) ([]task.Worker, error)
	TasksBetween(ctx context.Context, fromKey, toKey string) ([]task.Task, error)
	Proposals(ctx context.Context) ([]task.Task, error)
	Suggestions(ctx context.Context) ([]task.Suggestion, error)
}

// Service provides high-level record access for the CLI and TUI.
type Service struct {
	Fetcher Fetcher
}

// Snapshot bundles one month of records fetched together, so every view
// built from it resolves foreign keys against the same catalog state.
type Snapshot struct {
	Year    int
	Month   time.Month
	Tasks   []task.Task
	Plots   []task.Plot
	Workers []task.Worker
}

// MonthKey returns the snapshot's YYYY-MM grouping key.
func (s Snapshot) MonthKey() string {
	return datekey.New(s.Year, s.Month, 1).MonthKey()
}

// MonthSnapshot fetches the tasks of the given month together with the
// plot and worker catalogs.
func (s *Service) MonthSnapshot(ctx context.Context, year int, month time.Month) (Snapshot, error) {
	first := datekey.New(year, month, 1)
	last := datekey.New(year, month, datekey.DaysInMonth(year, month))
	return s.RangeSnapshot(ctx, first, last)
}

// RangeSnapshot fetches the tasks of an arbitrary date window together
// with the catalogs. The snapshot's year-month is the window start's;
// week views use this to span month boundaries.
func (s *Service) RangeSnapshot(ctx context.Context, from, to datekey.Date) (Snapshot, error) {
	if s.Fetcher == nil {
		return Snapshot{}, errors.New("app: no fetcher configured")
	}

	tasks, err := s.Fetcher.TasksBetween(ctx, from.Key(), to.Key())
	if err != nil {
		return Snapshot{}, fmt.Errorf("app: fetching tasks: %w", err)
	}
	plots, err := s.Fetcher.Plots(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("app: fetching plots: %w", err)
	}
	workers, err := s.Fetcher.Workers(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("app: fetching workers: %w", err)
	}
	return Snapshot{
		Year:    from.Year,
		Month:   from.Month,
		Tasks:   tasks,
		Plots:   plots,
		Workers: workers,
	}, nil
}

// Proposals returns tasks with a reschedule proposal awaiting review.
func (s *Service) Proposals(ctx context.Context) ([]task.Task, error) {
	if s.Fetcher == nil {
		return nil, errors.New("app: no fetcher configured")
	}
	return s.Fetcher.Proposals(ctx)
}

// Suggestions returns the decision engine's advisory list in its upstream
// order.
func (s *Service) Suggestions(ctx context.Context) ([]task.Suggestion, error) {
	if s.Fetcher == nil {
		return nil, errors.New("app: no fetcher configured")
	}
	return s.Fetcher.Suggestions(ctx)
}
