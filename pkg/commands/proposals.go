package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agroplanner/fieldops/pkg/commands/options"
	"github.com/agroplanner/fieldops/pkg/runner/proposals"
)

func addProposals(topLevel *cobra.Command) {
	so := &options.SourceOptions{}

	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "list tasks with a pending reschedule proposal",
		Example: `
fieldops proposals
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so.Cached)
			if err != nil {
				return err
			}
			p := proposals.Proposals{Service: svc}
			return p.Do(context.Background())
		},
	}

	options.AddSourceArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
