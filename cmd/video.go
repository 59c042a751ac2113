package cmd

import (
	"github.com/clipscout/clipscout/core"
	"github.com/clipscout/clipscout/internal/contract"
	"github.com/spf13/cobra"
)

// videoID holds the positional video argument for videoCmd.
var videoID string

// videoCmd analyzes a single video by ID.
var videoCmd = &cobra.Command{
	Use:   "video <video-id> [curve-dir]",
	Short: "Find clip candidates in a single video.",
	Long: `Analyze one video's retention curve and rank its clip candidates.

Unlike 'scan', this skips the publish-window and top-performer scoping and
goes straight at the named video. Safety rules still apply as review flags.

Examples:
  # Analyze a single video from the current directory
  clipscout video vid-042

  # Analyze with a custom threshold
  clipscout video vid-042 ./exports --boost-threshold 0.4`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// First positional is the video ID; the rest is the curve directory.
		videoID = args[0]
		return sharedSetup(rootCtx, cmd, args[1:])
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteVideo(rootCtx, cfg, videoID, cacheManager); err != nil {
			contract.LogFatal("Cannot run video analysis", err)
		}
	},
}
