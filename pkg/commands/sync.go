package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agroplanner/fieldops/pkg/client"
	"github.com/agroplanner/fieldops/pkg/commands/options"
	"github.com/agroplanner/fieldops/pkg/runner/syncdata"
	"github.com/agroplanner/fieldops/pkg/store"
)

func addSync(topLevel *cobra.Command) {
	yo := &options.SyncOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "pull catalogs, suggestions and a window of tasks into the local cache",
		Example: `
fieldops sync
fieldops sync --back 6 --ahead 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			cache, err := store.Open(cfg)
			if err != nil {
				return err
			}
			s := syncdata.Sync{
				Client:      client.New(cfg.APIBase(), cfg.Token()),
				Cache:       cache,
				MonthsBack:  yo.MonthsBack,
				MonthsAhead: yo.MonthsAhead,
			}
			return s.Do(context.Background())
		},
	}

	options.AddSyncArgs(cmd, yo)

	topLevel.AddCommand(cmd)
}
