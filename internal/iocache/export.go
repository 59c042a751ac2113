package iocache

import (
	"errors"
	"fmt"

	"github.com/clipscout/clipscout/internal/parquet"
)

// ExecuteRunExport performs the actual export of run data to Parquet files.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no scan data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scan runs: %d\n", status.TotalRuns)
	fmt.Printf("Total clip records: %d\n", status.TableSizes[clipRecordsTable])

	// Retrieve all scan runs
	scanRuns, err := store.GetRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve scan runs: %w", err)
	}

	// Retrieve all clip records
	clipRows, err := store.GetClipRows()
	if err != nil {
		return fmt.Errorf("failed to retrieve clip records: %w", err)
	}

	// Convert to Parquet format
	parquetScanRuns := parquet.ConvertScanRunRecords(scanRuns)
	parquetClipRecords := parquet.ConvertClipRecordRows(clipRows)

	// Write scan runs to Parquet
	scanRunsFile := outputFile + ".scan_runs.parquet"
	if err := parquet.WriteScanRunsParquet(parquetScanRuns, scanRunsFile); err != nil {
		return fmt.Errorf("failed to write scan runs: %w", err)
	}
	fmt.Printf("Exported %d scan runs to: %s\n", len(parquetScanRuns), scanRunsFile)

	// Write clip records to Parquet
	clipRecordsFile := outputFile + ".clip_records.parquet"
	if err := parquet.WriteClipRecordsParquet(parquetClipRecords, clipRecordsFile); err != nil {
		return fmt.Errorf("failed to write clip records: %w", err)
	}
	fmt.Printf("Exported %d clip records to: %s\n", len(parquetClipRecords), clipRecordsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
