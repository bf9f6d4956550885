package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agroplanner/fieldops/pkg/commands/options"
	"github.com/agroplanner/fieldops/pkg/runner/scheduleview"
)

func addSchedule(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	on := &options.OnOptions{}
	vo := &options.ViewOptions{}
	so := &options.SourceOptions{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "show the task calendar",
		Example: `
fieldops schedule
fieldops schedule --view week --on "2024-02-01"
fieldops schedule --plot P1 --status pending
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so.Cached)
			if err != nil {
				return err
			}
			s := scheduleview.ScheduleView{
				Service: svc,
				View:    vo.View,
				On:      on.On,
				Plot:    fo.Plot,
				Status:  fo.Status,
				Limit:   vo.Limit,
				ShowID:  vo.ShowID,
			}
			return s.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddOnArgs(cmd, on)
	options.AddViewArgs(cmd, vo)
	options.AddSourceArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
