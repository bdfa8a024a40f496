package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pveldandi/recap/internal/ui"
)

// tuiCmd launches the Bubble Tea viewer.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run(loadDataset, renderConfig())
	},
}
