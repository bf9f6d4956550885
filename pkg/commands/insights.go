package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agroplanner/fieldops/pkg/commands/options"
	"github.com/agroplanner/fieldops/pkg/runner/insights"
)

func addInsights(topLevel *cobra.Command) {
	so := &options.SourceOptions{}
	limit := 5

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "show scheduling suggestions from the backend",
		Example: `
fieldops insights
fieldops insights --limit 10
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so.Cached)
			if err != nil {
				return err
			}
			i := insights.Insights{
				Service: svc,
				Limit:   limit,
			}
			return i.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5,
		"Suggestions shown before the 'and N more' line. Negative shows all.")
	options.AddSourceArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
