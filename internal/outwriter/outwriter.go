// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteClips prints scan results using the configured output format.
func (ow *OutWriter) WriteClips(output *schema.ScanOutput, cfg *contract.Config, duration time.Duration) error {
	return PrintClipResults(output, cfg, duration)
}

// WriteParams prints the effective finder parameters.
func (ow *OutWriter) WriteParams(cfg *contract.Config) error {
	return PrintParamsDefinitions(cfg)
}

// LogScanHeader prints a concise, 2-line header for a scan.
func LogScanHeader(cfg *contract.Config) {
	dirName := filepath.Base(cfg.CurveDir)
	if dirName == "" || dirName == "." {
		dirName = "current"
	}

	if cfg.UseEmojis {
		fmt.Printf("🔎 Source: %s (window: %dd + top %d all-time)\n", dirName, cfg.LookbackDays, cfg.TopAllTime)
		fmt.Printf("📅 As of: %s\n", cfg.AsOf.Format(contract.DateTimeFormat))
	} else {
		fmt.Printf("Source: %s (window: %dd + top %d all-time)\n", dirName, cfg.LookbackDays, cfg.TopAllTime)
		fmt.Printf("As of: %s\n", cfg.AsOf.Format(contract.DateTimeFormat))
	}
}

// GetMaxTableTitleWidth calculates the maximum width for video titles in
// table output based on terminal width and table configuration.
func GetMaxTableTitleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 40 // Rank + Clip + Dur + Score + Label with borders/padding

	if cfg.Detail {
		baseWidth += 45 // Boost + ClipRet + BaseRet + Type + Flags columns
	}
	if cfg.Explain {
		baseWidth += 35 // Suggested title column
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}
