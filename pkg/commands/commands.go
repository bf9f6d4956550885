package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "fieldops",
		Short: base.Wrap80("Farm operations dashboard on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addSchedule(topLevel)
	addReport(topLevel)
	addInsights(topLevel)
	addProposals(topLevel)
	addPlots(topLevel)
	addWorkers(topLevel)
	addSync(topLevel)
	addVersion(topLevel)
}
