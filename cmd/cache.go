package cmd

import (
	"fmt"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/internal/iocache"
	"github.com/clipscout/clipscout/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config (no run tracking for cache commands)
	if err := iocache.InitStores(backend, connStr, schema.NoneBackend, ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on curve cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by scan commands. This avoids curve directory
// validation and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the retention curve cache (improves performance)",
	Long: `Manage the retention curve cache that speeds up repeated scans.

Clipscout caches parsed retention curves to avoid re-reading and re-validating
every export on each run. Entries expire after a day so fresh analytics exports
are always picked up.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached curves

Examples:
  # Check cache status
  clipscout cache status

  # Clear cache after re-exporting analytics
  clipscout cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached retention curves",
	Long: `Delete all cached retention curves from the configured backend.

Use this when:
- Analytics exports were regenerated with corrected data
- Cache may be stale or corrupted
- Testing performance without cache

Examples:
  # Clear SQLite cache (default)
  clipscout cache clear

  # Clear MySQL cache (set connection string via env variable)
  CLIPSCOUT_CACHE_BACKEND=mysql CLIPSCOUT_CACHE_DB_CONNECT="..." clipscout cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.Manager.GetCurveStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the retention curve cache.

Displays:
- Backend type and connection status
- Total number of cached curves
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  clipscout cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetCurveStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}
