// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions captures common task filter flags for commands.
type FilterOptions struct {
	Plot   string
	Status string
}

// AddFilterArgs wires task filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Plot, "plot", "p", "all",
		"Limit to one plot id, or 'all'.")
	cmd.Flags().StringVarP(&o.Status, "status", "s", "all",
		"Limit to one status (proceed, pending, stop), or 'all'.")
}
