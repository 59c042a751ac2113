package iocache

import (
	"fmt"
	"sync"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
)

// curveTable is the name of the table for curve caching.
const curveTable = "curve_cache"

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for curve cache storage.
func GetDBFilePath() string {
	return contract.GetDBFilePath()
}

// GetRunDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunDBFilePath() string {
	return contract.GetRunDBFilePath()
}

// InitStores initializes the global cache manager with separate curve and run stores.
// cacheBackend and cacheConnStr can be empty to disable curve caching.
// runBackend and runConnStr can be empty to disable run tracking.
func InitStores(cacheBackend schema.DatabaseBackend, cacheConnStr string, runBackend schema.DatabaseBackend, runConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var err error

		// Initialize Curve Cache Store only if backend is configured
		var curveStore contract.CacheStore
		if cacheBackend != "" {
			curveStore, err = NewCacheStore(curveTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize curve caching: %w", err)
				return
			}
		}

		// Initialize Run Store only if backend is configured
		var runStore contract.RunStore
		if runBackend != "" {
			runStore, err = NewRunStore(runBackend, runConnStr)
			if err != nil {
				if curveStore != nil {
					_ = curveStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize run store: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.curve = curveStore
		Manager.runs = runStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.curve != nil {
			_ = Manager.curve.Close()
		}
		if Manager.runs != nil {
			_ = Manager.runs.Close()
		}
	})
}
