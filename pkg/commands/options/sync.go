package options

import (
	"github.com/spf13/cobra"
)

// SyncOptions bounds the task window pulled into the local cache.
type SyncOptions struct {
	MonthsBack  int
	MonthsAhead int
}

func AddSyncArgs(cmd *cobra.Command, o *SyncOptions) {
	cmd.Flags().IntVar(&o.MonthsBack, "back", 2,
		"Months of tasks to pull before the current month.")
	cmd.Flags().IntVar(&o.MonthsAhead, "ahead", 2,
		"Months of tasks to pull after the current month.")
}
