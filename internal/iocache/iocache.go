// Package iocache is for durable storage of curves and scan runs.
package iocache

import (
	"sync"

	"github.com/clipscout/clipscout/internal/contract"
)

// CacheStoreManager manages the curve cache and run store instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	curve        contract.CacheStore
	runs         contract.RunStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetCurveStore returns the curve CacheStore.
func (mgr *CacheStoreManager) GetCurveStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.curve
}

// GetRunStore returns the scan RunStore.
func (mgr *CacheStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
