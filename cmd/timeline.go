package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pveldandi/recap/internal/render"
)

// timelineCmd draws one proportional 24-hour bar per recorded day.
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Per-day session timelines",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		r := render.NewRenderer(renderConfig())
		fmt.Println(r.RenderTimeline(ds))
		return nil
	},
}
