package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/internal/parquet"
	"github.com/clipscout/clipscout/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintClipResults outputs the scan results, dispatching based on the output format configured.
func PrintClipResults(output *schema.ScanOutput, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeClipJSONResults(output, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeClipCSVResults(output.Records, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("parquet output requires --output-file")
		}
		data := parquet.ConvertClipRecords(output.Records)
		if err := parquet.WriteClipRecordsParquet(data, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClipTable(output, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeClipJSONResults handles opening the file and calling the JSON writer.
func writeClipJSONResults(output *schema.ScanOutput, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForClips(w, output)
	}, "Wrote JSON")
}

// writeClipCSVResults handles opening the file and calling the CSV writer.
func writeClipCSVResults(records []schema.ClipRecord, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForClips(csvWriter, records, fmtFloat)
	}, "Wrote CSV")
}

// writeClipTable generates and writes the human-readable table.
func writeClipTable(output *schema.ScanOutput, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Video", "Clip", "Dur", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Boost", "ClipRet", "BaseRet", "Type", "Flags")
	}
	if cfg.Explain {
		headers = append(headers, "Title")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	maxTitle := GetMaxTableTitleWidth(cfg)
	var data [][]string
	for i, r := range output.Records {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateTitle(r.VideoTitle, maxTitle),
			fmt.Sprintf("%s-%s", r.StartFormatted, r.EndFormatted),
			strconv.Itoa(r.DurationSeconds) + "s",
			fmtFloat(r.PriorityScore),
			label(r.PriorityScore),
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(r.BoostPercent)+"%",   // Boost
				fmtFloat(r.ClipRetention)+"%",  // ClipRet
				fmtFloat(r.VideoRetention)+"%", // BaseRet
				string(r.ContentType),          // Type
				schema.FormatFlags(r.Flags),    // Flags
			)
		}
		if cfg.Explain {
			row = append(row, r.SuggestedTitle.Suggestion)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d clips from %d videos (%d skipped)\n",
		len(output.Records), output.VideosScanned, output.VideosSkipped); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scan completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForClips writes the scan results in CSV format.
func writeCSVResultsForClips(w *csv.Writer, records []schema.ClipRecord, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"video_id",
		"video_title",
		"start",
		"end",
		"duration_s",
		"score",
		"label",
		"boost_pct",
		"clip_retention_pct",
		"video_retention_pct",
		"content_type",
		"suggested_title",
		"hashtags",
		"flags",
		"url",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range records {
		rec := []string{
			strconv.Itoa(i + 1),
			r.VideoID,
			r.VideoTitle,
			r.StartFormatted,
			r.EndFormatted,
			strconv.Itoa(r.DurationSeconds),
			fmtFloat(r.PriorityScore),
			contract.GetPlainLabel(r.PriorityScore),
			fmtFloat(r.BoostPercent),
			fmtFloat(r.ClipRetention),
			fmtFloat(r.VideoRetention),
			string(r.ContentType),
			r.SuggestedTitle.Suggestion,
			strings.Join(r.Hashtags, "|"),
			schema.FormatFlags(r.Flags),
			r.TimestampedURL,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForClips writes the scan results in JSON format.
func writeJSONResultsForClips(w io.Writer, output *schema.ScanOutput) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONClipRecord struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ClipRecord
	}

	type JSONScanOutput struct {
		Clips         []JSONClipRecord `json:"clips"`
		VideosScanned int              `json:"videos_scanned"`
		VideosSkipped int              `json:"videos_skipped"`
	}

	clips := make([]JSONClipRecord, len(output.Records))
	for i, r := range output.Records {
		clips[i] = JSONClipRecord{
			Rank:       i + 1,
			Label:      contract.GetPlainLabel(r.PriorityScore),
			ClipRecord: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, JSONScanOutput{
		Clips:         clips,
		VideosScanned: output.VideosScanned,
		VideosSkipped: output.VideosSkipped,
	})
}
