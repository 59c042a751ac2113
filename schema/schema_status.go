package schema

import "time"

// CacheStatus represents the status of the curve cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// RunStatus represents the status of the scan-run store.
type RunStatus struct {
	Backend         string           `json:"backend"`
	Connected       bool             `json:"connected"`
	TotalRuns       int              `json:"total_runs"`
	LastRunID       int64            `json:"last_run_id"`
	LastRunTime     time.Time        `json:"last_run_time"`
	OldestRunTime   time.Time        `json:"oldest_run_time"`
	TotalClipsFound int              `json:"total_clips_found"`
	TableSizes      map[string]int64 `json:"table_sizes"`
}

// ScanRunRecord represents a row from the clipscout_scan_runs table.
type ScanRunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	VideosScanned int32
	ClipsFound    int32
	ConfigParams  *string
}

// ClipRecordRow represents a row from the clipscout_clip_records table.
type ClipRecordRow struct {
	RunID          int64
	VideoID        string
	VideoTitle     string
	RecordedAt     time.Time
	StartSeconds   int32
	EndSeconds     int32
	PriorityScore  float64
	BoostPercent   float64
	ClipRetention  float64
	VideoRetention float64
	ContentType    string
	SuggestedTitle string
	TimestampedURL string
}
