// Package cmd defines the command-line interface for clipscout.
package cmd

import (
	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(videoCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-clip metadata (boost, retention, content type, flags)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of clips to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Float64("boost-threshold", contract.DefaultBoostThreshold, "Minimum relative retention boost over baseline for a hot moment")
	rootCmd.PersistentFlags().Int("min-duration", contract.DefaultMinDuration, "Shortest acceptable clip in seconds")
	rootCmd.PersistentFlags().Int("max-duration", contract.DefaultMaxDuration, "Longest acceptable clip in seconds")
	rootCmd.PersistentFlags().Int("min-sustained", contract.DefaultMinSustained, "Minimum contiguous hot seconds before a run qualifies")
	rootCmd.PersistentFlags().Float64("intro-exclusion", contract.DefaultIntroExclusion, "Leading fraction of each video to skip")
	rootCmd.PersistentFlags().Float64("outro-exclusion", contract.DefaultOutroExclusion, "Trailing fraction of each video to skip")
	rootCmd.PersistentFlags().Int("clips-per-video", contract.DefaultClipsPerVideo, "Maximum clip candidates kept per video")
	rootCmd.PersistentFlags().Float64("peak-bonus", contract.DefaultPeakBonus, "Duration bonus at the sweet-spot clip length")
	rootCmd.PersistentFlags().Float64("edge-bonus", contract.DefaultEdgeBonus, "Duration bonus at the min/max clip lengths")
	rootCmd.PersistentFlags().Int("lookback-days", contract.DefaultLookbackDays, "Only scan videos published within this many days")
	rootCmd.PersistentFlags().Int("top-alltime", contract.DefaultTopAllTime, "Also scan the top N videos by views regardless of age")
	rootCmd.PersistentFlags().String("as-of", "", "Reference time for the lookback window in ISO8601 (defaults to now)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Curve cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("run-backend", "", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for run tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scanCmd to Viper
	scanCmd.Flags().Bool("explain", false, "Print per-clip suggested title")
	if err := viper.BindPFlags(scanCmd.Flags()); err != nil {
		contract.LogFatal("Error binding scan flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
