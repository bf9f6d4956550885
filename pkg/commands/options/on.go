package options

import (
	"github.com/spf13/cobra"
)

// OnOptions holds the anchor date flag shared by calendar commands.
type OnOptions struct {
	On string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		`Anchor date, example: --on="2024-02-29". Defaults to today.`)
}
