package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agroplanner/fieldops/pkg/commands/options"
	"github.com/agroplanner/fieldops/pkg/runner/catalog"
)

func addPlots(topLevel *cobra.Command) {
	topLevel.AddCommand(catalogCommand(catalog.Plots, "plots", "list the plot catalog"))
}

func addWorkers(topLevel *cobra.Command) {
	topLevel.AddCommand(catalogCommand(catalog.Workers, "workers", "list the worker catalog"))
}

func catalogCommand(resource catalog.Resource, use, short string) *cobra.Command {
	so := &options.SourceOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Example: `
fieldops ` + use + `
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so.Cached)
			if err != nil {
				return err
			}
			c := catalog.Catalog{
				Service:  svc,
				Resource: resource,
			}
			return c.Do(context.Background())
		},
	}

	options.AddSourceArgs(cmd, so)
	return cmd
}
