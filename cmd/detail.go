package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pveldandi/recap/internal/render"
)

var detailFormat string

// detailCmd lists every session grouped by type, then tag.
var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Grouped session listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		rc := renderConfig()
		rc.Format = render.OutputFormat(detailFormat)
		r := render.NewRenderer(rc)
		out, err := r.RenderDetail(ds)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	detailCmd.Flags().StringVar(&detailFormat, "format", "default", "Output format: default, json, csv")
}
