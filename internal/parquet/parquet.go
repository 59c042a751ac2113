// Package parquet provides data structures and functions for exporting
// clipscout scan data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/clipscout/clipscout/schema"
	"github.com/parquet-go/parquet-go"
)

// ScanRun represents a single clip scan run with metadata.
// This struct maps to the clipscout_scan_runs database table.
type ScanRun struct {
	// RunID is the unique identifier for this scan run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the scan began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the scan completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the scan run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// VideosScanned is the number of videos scanned in this run
	VideosScanned int32 `parquet:"videos_scanned,snappy"`

	// ClipsFound is the number of clip candidates emitted in this run
	ClipsFound int32 `parquet:"clips_found,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// ClipRecord represents one selected clip candidate in an export.
// This struct maps to the clipscout_clip_records database table.
type ClipRecord struct {
	// RunID references the parent scan run
	RunID int64 `parquet:"run_id,snappy"`

	// VideoID is the source video identifier
	VideoID string `parquet:"video_id,snappy"`

	// VideoTitle is the source video title
	VideoTitle string `parquet:"video_title,snappy"`

	// RecordedAt is when this clip was recorded (stored as TIMESTAMP with nanosecond precision)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// StartSeconds is the clip start offset in the source video
	StartSeconds int32 `parquet:"start_seconds,snappy"`

	// EndSeconds is the clip end offset in the source video
	EndSeconds int32 `parquet:"end_seconds,snappy"`

	// PriorityScore is the final ranking score
	PriorityScore float64 `parquet:"priority_score,snappy"`

	// BoostPercent is the retention boost over baseline, as a percentage
	BoostPercent float64 `parquet:"boost_percent,snappy"`

	// ClipRetention is the average retention inside the clip, as a percentage
	ClipRetention float64 `parquet:"clip_retention_pct,snappy"`

	// VideoRetention is the baseline retention of the video, as a percentage
	VideoRetention float64 `parquet:"video_retention_pct,snappy"`

	// ContentType classifies the source footage
	ContentType string `parquet:"content_type,snappy"`

	// SuggestedTitle is the templated working title
	SuggestedTitle string `parquet:"suggested_title,snappy"`

	// Hashtags is the pipe-joined hashtag list (nullable)
	Hashtags *string `parquet:"hashtags,optional,snappy"`

	// TimestampedURL links to the clip start in the source video
	TimestampedURL string `parquet:"timestamped_url,snappy"`
}

// WriteScanRunsParquet writes a slice of ScanRun structs to a Parquet file.
func WriteScanRunsParquet(data []ScanRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ScanRun struct tags
	writer := parquet.NewGenericWriter[ScanRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteClipRecordsParquet writes a slice of ClipRecord structs to a Parquet file.
func WriteClipRecordsParquet(data []ClipRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ClipRecord struct tags
	writer := parquet.NewGenericWriter[ClipRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertScanRunRecords converts schema.ScanRunRecord to ScanRun for Parquet export.
func ConvertScanRunRecords(records []schema.ScanRunRecord) []ScanRun {
	result := make([]ScanRun, len(records))
	for i, record := range records {
		result[i] = ScanRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			VideosScanned: record.VideosScanned,
			ClipsFound:    record.ClipsFound,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertClipRecordRows converts schema.ClipRecordRow to ClipRecord for Parquet export.
func ConvertClipRecordRows(rows []schema.ClipRecordRow) []ClipRecord {
	result := make([]ClipRecord, len(rows))
	for i, row := range rows {
		result[i] = ClipRecord{
			RunID:          row.RunID,
			VideoID:        row.VideoID,
			VideoTitle:     row.VideoTitle,
			RecordedAt:     row.RecordedAt,
			StartSeconds:   row.StartSeconds,
			EndSeconds:     row.EndSeconds,
			PriorityScore:  row.PriorityScore,
			BoostPercent:   row.BoostPercent,
			ClipRetention:  row.ClipRetention,
			VideoRetention: row.VideoRetention,
			ContentType:    row.ContentType,
			SuggestedTitle: row.SuggestedTitle,
			TimestampedURL: row.TimestampedURL,
		}
	}
	return result
}

// ConvertClipRecords converts in-memory schema.ClipRecord results to ClipRecord
// rows for direct Parquet export from a scan.
func ConvertClipRecords(records []schema.ClipRecord) []ClipRecord {
	now := time.Now()
	result := make([]ClipRecord, len(records))
	for i, r := range records {
		entry := ClipRecord{
			VideoID:        r.VideoID,
			VideoTitle:     r.VideoTitle,
			RecordedAt:     now,
			StartSeconds:   int32(r.StartSeconds),
			EndSeconds:     int32(r.EndSeconds),
			PriorityScore:  r.PriorityScore,
			BoostPercent:   r.BoostPercent,
			ClipRetention:  r.ClipRetention,
			VideoRetention: r.VideoRetention,
			ContentType:    string(r.ContentType),
			SuggestedTitle: r.SuggestedTitle.Suggestion,
			TimestampedURL: r.TimestampedURL,
		}
		if len(r.Hashtags) > 0 {
			tags := strings.Join(r.Hashtags, "|")
			entry.Hashtags = &tags
		}
		result[i] = entry
	}
	return result
}
