package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pveldandi/recap/internal/render"
)

// chartsCmd prints the time-by-type distribution and the daily totals.
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Summary charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		r := render.NewRenderer(renderConfig())
		fmt.Println(r.RenderCharts(ds))
		return nil
	},
}
