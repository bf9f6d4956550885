package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agroplanner/fieldops/pkg/commands/options"
	"github.com/agroplanner/fieldops/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SourceOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based schedule browser",
		Example: `
fieldops ui
fieldops ui --cached
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(so.Cached)
			if err != nil {
				return err
			}
			u := tui.UI{Service: svc}
			return u.Do(context.Background())
		},
	}

	options.AddSourceArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
