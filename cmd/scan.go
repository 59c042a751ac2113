package cmd

import (
	"github.com/clipscout/clipscout/core"
	"github.com/clipscout/clipscout/internal/contract"
	"github.com/spf13/cobra"
)

// scanCmd performs a batch scan over a directory of retention exports.
var scanCmd = &cobra.Command{
	Use:   "scan [curve-dir]",
	Short: "Scan recent and top videos for clip candidates.",
	Long: `Scan per-video retention exports and rank the best short-form clip candidates.

The scan covers videos published within the lookback window plus the all-time
top performers by views, skipping anything that is already a Short or blocked
by the configured safety rules. Each video's retention curve is searched for
sustained stretches of above-baseline retention, and the winners are scored
by how strongly they beat the baseline and how close they sit to the ideal
clip length.

Examples:
  # Scan the current directory of exports
  clipscout scan

  # Widen the window and keep more clips per video
  clipscout scan ./exports --lookback-days 180 --clips-per-video 5

  # Include detailed metrics and suggested titles
  clipscout scan ./exports --detail --explain

  # Export findings to CSV for tracking
  clipscout scan ./exports --output csv --output-file clips.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScan(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run clip scan", err)
		}
	},
}
