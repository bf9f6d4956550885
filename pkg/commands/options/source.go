package options

import (
	"github.com/spf13/cobra"
)

// SourceOptions picks between the live backend and the local sync cache.
type SourceOptions struct {
	Cached bool
}

func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.Flags().BoolVar(&o.Cached, "cached", false,
		"Read from the local sync cache instead of the backend.")
}
