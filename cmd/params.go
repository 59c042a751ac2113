package cmd

import (
	"github.com/clipscout/clipscout/core"
	"github.com/clipscout/clipscout/internal/contract"
	"github.com/spf13/cobra"
)

// paramsCmd displays the effective clip-finding parameters.
var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Display the effective clip-finding parameters and scoring formula",
	Long: `Show the resolved clip-finding parameters after merging defaults, config
file, environment variables, and flags.

No curves are read - this is purely informational.

Use this to:
- Verify which threshold and duration bounds a scan will use
- Explain the scoring formula to your team
- Validate overrides from .clipscout.yaml

Examples:
  # Show effective parameters
  clipscout params

  # View with custom values from a config file
  clipscout params --config .clipscout.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteParams(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot display parameters", err)
		}
	},
}
