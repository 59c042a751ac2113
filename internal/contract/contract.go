// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/clipscout/clipscout/schema"
)

// CurveSource defines where retention curves and video metadata come from.
// The production implementation reads analytics exports from disk; tests
// substitute in-memory sources.
type CurveSource interface {
	// ListVideos returns metadata for every video the source knows about.
	ListVideos() ([]schema.VideoMeta, error)

	// GetCurve returns the retention curve for one video.
	GetCurve(videoID string) (schema.RetentionCurve, error)
}

// CacheManager defines the interface for managing the durable stores.
// This allows the persistence layer to be mocked for testing.
type CacheManager interface {
	GetCurveStore() CacheStore
	GetRunStore() RunStore
}

// CacheStore defines the interface for curve cache storage.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Clear() error
	Close() error
}

// RunStore defines the interface for tracking scan runs and their clip records.
type RunStore interface {
	// BeginRun creates a new scan run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the scan run with completion data
	EndRun(runID int64, endTime time.Time, videosScanned, clipsFound int) error

	// RecordClips stores the clip records emitted for one video
	RecordClips(runID int64, recordedAt time.Time, records []schema.ClipRecord) error

	// GetRuns returns all scan run rows for export
	GetRuns() ([]schema.ScanRunRecord, error)

	// GetClipRows returns all clip record rows for export
	GetClipRows() ([]schema.ClipRecordRow, error)

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// Clear removes all runs and clip records
	Clear() error

	// Close closes the underlying connection
	Close() error
}
