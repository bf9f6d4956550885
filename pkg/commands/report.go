package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/agroplanner/fieldops/pkg/commands/options"
	"github.com/agroplanner/fieldops/pkg/runner/reportview"
)

func addReport(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	so := &options.SourceOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "summarize a month of tasks by plot and by worker",
		Example: `
fieldops report
fieldops report --month "2024-02"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so.Cached)
			if err != nil {
				return err
			}
			r := reportview.ReportView{
				Service:  svc,
				MonthKey: mo.Month,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddSourceArgs(cmd, so)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
