package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pveldandi/recap/internal/config"
	"github.com/pveldandi/recap/internal/dataset"
	"github.com/pveldandi/recap/internal/logging"
	"github.com/pveldandi/recap/internal/render"
	"github.com/pveldandi/recap/internal/utils"
)

var (
	flagFile    string
	flagSample  bool
	flagNoColor bool
	flagSince   string
	flagUntil   string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "recap",
	Short: "Visualize time-tracked study sessions",
	Long: `recap renders the session file written by the capture tool as
per-day timelines, summary charts, and a grouped detail listing.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(flagDebug)
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Session YAML file (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagSample, "sample", false, "Use the built-in sample sessions")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagSince, "since", "", "Only sessions starting on or after this day (today, yesterday, '3 days ago', 2025-06-30)")
	rootCmd.PersistentFlags().StringVar(&flagUntil, "until", "", "Only sessions starting on or before this day")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose diagnostics on stderr")

	rootCmd.AddCommand(timelineCmd, chartsCmd, detailCmd, tuiCmd, versionCmd)
}

// loadDataset resolves the input source and flag filters and runs the load
// pipeline.
func loadDataset() (*dataset.Dataset, error) {
	cfg, _ := config.Load()
	loc := cfg.Location()

	var filter dataset.Filter
	if flagSince != "" {
		t, err := utils.ParseDayFilter(flagSince, loc)
		if err != nil {
			return nil, err
		}
		filter.Since = t
	}
	if flagUntil != "" {
		t, err := utils.ParseDayFilter(flagUntil, loc)
		if err != nil {
			return nil, err
		}
		// inclusive day bound
		filter.Until = t.AddDate(0, 0, 1)
	}

	path := flagFile
	if flagSample {
		path = ""
	} else if path == "" {
		path = cfg.DataFile
	}
	return dataset.Load(path, loc, filter)
}

// renderConfig builds the render configuration from app config and flags.
func renderConfig() *render.Config {
	cfg, _ := config.Load()
	rc := render.DefaultConfig()
	rc.Location = cfg.Location()
	rc.Palette = rc.Palette.WithOverrides(cfg.Colors)
	if flagNoColor {
		rc.Color = false
	}
	return rc
}
