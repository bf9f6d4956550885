package app

import (
	"context"

	"github.com/agroplanner/fieldops/pkg/client"
	"github.com/agroplanner/fieldops/pkg/datekey"
	"github.com/agroplanner/fieldops/pkg/store"
	"github.com/agroplanner/fieldops/pkg/task"
)

// ClientFetcher fetches live records from the backend.
type ClientFetcher struct {
	Client *client.Client
}

func (f ClientFetcher) Plots(ctx context.Context) ([]task.Plot, error) {
	return f.Client.Plots(ctx)
}

func (f ClientFetcher) Workers(ctx context.Context) ([]task.Worker, error) {
	return f.Client.Workers(ctx)
}

func (f ClientFetcher) TasksBetween(ctx context.Context, fromKey, toKey string) ([]task.Task, error) {
	return f.Client.Tasks(ctx, client.TaskQuery{DateFrom: fromKey, DateTo: toKey})
}

func (f ClientFetcher) Proposals(ctx context.Context) ([]task.Task, error) {
	proposed := true
	return f.Client.Tasks(ctx, client.TaskQuery{HasProposed: &proposed})
}

func (f ClientFetcher) Suggestions(ctx context.Context) ([]task.Suggestion, error) {
	return f.Client.Suggestions(ctx)
}

// CacheFetcher serves records from the local sync cache so the dashboard
// works offline. Months that were never synced read as empty.
type CacheFetcher struct {
	Cache *store.Cache
}

func (f CacheFetcher) Plots(ctx context.Context) ([]task.Plot, error) {
	return f.Cache.Plots()
}

func (f CacheFetcher) Workers(ctx context.Context) ([]task.Worker, error) {
	return f.Cache.Workers()
}

func (f CacheFetcher) TasksBetween(ctx context.Context, fromKey, toKey string) ([]task.Task, error) {
	from, okFrom := datekey.Parse(fromKey)
	to, okTo := datekey.Parse(toKey)
	if !okFrom || !okTo {
		return []task.Task{}, nil
	}

	var out []task.Task
	cursor := datekey.New(from.Year, from.Month, 1)
	for cursor.MonthKey() <= to.MonthKey() {
		tasks, err := f.Cache.Tasks(cursor.MonthKey())
		if err == nil {
			for _, t := range tasks {
				if t.DateKey >= fromKey && t.DateKey <= toKey {
					out = append(out, t)
				}
			}
		}
		cursor = cursor.AddMonths(1)
	}
	if out == nil {
		out = []task.Task{}
	}
	return out, nil
}

func (f CacheFetcher) Proposals(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	for _, monthKey := range f.Cache.TaskMonths() {
		tasks, err := f.Cache.Tasks(monthKey)
		if err != nil {
			continue
		}
		for _, t := range tasks {
			if t.HasProposal() {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (f CacheFetcher) Suggestions(ctx context.Context) ([]task.Suggestion, error) {
	return f.Cache.Suggestions()
}
