package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
)

// paramEntry is one row of the effective parameter display.
type paramEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Note  string `json:"note"`
}

// buildParamsRenderModel flattens the effective finder configuration into
// display rows.
func buildParamsRenderModel(cfg *contract.Config) []paramEntry {
	fc := &cfg.Finder
	sweetSpot := math.Sqrt(float64(fc.MinDurationSeconds) * float64(fc.MaxDurationSeconds))
	return []paramEntry{
		{"boost_threshold", fmt.Sprintf("%.2f", fc.BoostThreshold), "relative boost over baseline to qualify as hot"},
		{"min_duration", fmt.Sprintf("%ds", fc.MinDurationSeconds), "shortest acceptable clip"},
		{"max_duration", fmt.Sprintf("%ds", fc.MaxDurationSeconds), "longest acceptable clip"},
		{"min_sustained", fmt.Sprintf("%ds", fc.MinSustainedSeconds), "minimum contiguous hot run"},
		{"intro_exclusion", fmt.Sprintf("%.0f%%", fc.IntroExclusionFraction*100), "leading fraction never clipped"},
		{"outro_exclusion", fmt.Sprintf("%.0f%%", fc.OutroExclusionFraction*100), "trailing fraction never clipped"},
		{"clips_per_video", fmt.Sprintf("%d", fc.MaxCandidatesPerVideo), "per-video output cap"},
		{"peak_bonus", fmt.Sprintf("%.2f", fc.PeakDurationBonus), fmt.Sprintf("duration bonus at the %.0fs sweet spot", sweetSpot)},
		{"edge_bonus", fmt.Sprintf("%.2f", fc.EdgeDurationBonus), "duration bonus at the min/max edges"},
		{"lookback_days", fmt.Sprintf("%d", cfg.LookbackDays), "recent-window scope"},
		{"top_alltime", fmt.Sprintf("%d", cfg.TopAllTime), "all-time top-N by views always in scope"},
	}
}

// PrintParamsDefinitions displays the effective finder parameters.
// This is a static display that reads no curves.
func PrintParamsDefinitions(cfg *contract.Config) error {
	entries := buildParamsRenderModel(cfg)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"name", "value", "note"}, func(cw *csv.Writer) error {
				for _, e := range entries {
					if err := cw.Write([]string{e.Name, e.Value, e.Note}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printParamsText(w, entries, cfg)
		}, "Wrote text")
	}
}

// printParamsText displays parameters in human-readable text format.
func printParamsText(w io.Writer, entries []paramEntry, cfg *contract.Config) error {
	header := "Clip Finder Parameters"
	if cfg.UseEmojis {
		header = "🎬 " + header
	}
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "======================\n\n"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-18s %-8s %s\n", e.Name, e.Value, e.Note); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nPriority = boost x duration bonus x 100\n"); err != nil {
		return err
	}
	return nil
}
