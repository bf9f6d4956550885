package options

import (
	"github.com/spf13/cobra"
)

// ViewOptions selects the calendar granularity and cell rendering.
type ViewOptions struct {
	View   string
	Limit  int
	ShowID bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.View, "view", "v", "month",
		"Calendar granularity. One of 'month', 'week' or 'day'.")
	cmd.Flags().IntVar(&o.Limit, "limit", 3,
		"Tasks shown per day before the +N badge. Negative shows all.")
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show task ids next to each task.")
}
