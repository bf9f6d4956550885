// Package syncdata pulls backend records into the local cache so the
// dashboard can render offline.
package syncdata

import (
	"context"
	"fmt"
	"time"

	"github.com/agroplanner/fieldops/pkg/client"
	"github.com/agroplanner/fieldops/pkg/datekey"
	"github.com/agroplanner/fieldops/pkg/store"
)

type Sync struct {
	Client *client.Client
	Cache  *store.Cache

	// MonthsBack and MonthsAhead bound the task window around the
	// current month.
	MonthsBack  int
	MonthsAhead int

	Now time.Time
}

func (s *Sync) Do(ctx context.Context) error {
	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}

	plots, err := s.Client.Plots(ctx)
	if err != nil {
		return err
	}
	if err := s.Cache.PutPlots(plots); err != nil {
		return err
	}
	fmt.Printf("synced %d plots\n", len(plots))

	workers, err := s.Client.Workers(ctx)
	if err != nil {
		return err
	}
	if err := s.Cache.PutWorkers(workers); err != nil {
		return err
	}
	fmt.Printf("synced %d workers\n", len(workers))

	suggestions, err := s.Client.Suggestions(ctx)
	if err != nil {
		return err
	}
	if err := s.Cache.PutSuggestions(suggestions); err != nil {
		return err
	}
	fmt.Printf("synced %d suggestions\n", len(suggestions))

	first := datekey.Today(now).AddMonths(-s.MonthsBack)
	for i := 0; i <= s.MonthsBack+s.MonthsAhead; i++ {
		cursor := first.AddMonths(i)
		from := datekey.New(cursor.Year, cursor.Month, 1)
		to := datekey.New(cursor.Year, cursor.Month, datekey.DaysInMonth(cursor.Year, cursor.Month))
		tasks, err := s.Client.Tasks(ctx, client.TaskQuery{DateFrom: from.Key(), DateTo: to.Key()})
		if err != nil {
			return err
		}
		if err := s.Cache.PutTasks(from.MonthKey(), tasks); err != nil {
			return err
		}
		fmt.Printf("synced %d tasks for %s\n", len(tasks), from.MonthKey())
	}
	return nil
}
