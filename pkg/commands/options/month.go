package options

import (
	"github.com/spf13/cobra"
)

// MonthOptions holds the report month flag.
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Report month, example: --month="2024-02". Defaults to the current month.`)
}
