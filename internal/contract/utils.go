package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Priority label constants.
const (
	PrimeValue  = "Prime"  // Prime candidate, publish-ready
	StrongValue = "Strong" // Strong candidate
	FairValue   = "Fair"   // Fair candidate, borderline
	WeakValue   = "Weak"   // Weak candidate
)

// Color variables for console output.
var (
	PrimeColor  = color.New(color.FgGreen, color.Bold) // primeColor marks the best candidates.
	StrongColor = color.New(color.FgCyan, color.Bold)  // strongColor marks solid picks.
	FairColor   = color.New(color.FgYellow)            // fairColor represents borderline picks, not bold.
	WeakColor   = color.New(color.FgHiBlack)           // weakColor de-emphasizes the long tail.
)

// GetPlainLabel returns a plain text label indicating the candidate tier
// based on the clip's priority score. This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 60:
		return PrimeValue
	case score >= 40:
		return StrongValue
	case score >= 20:
		return FairValue
	default:
		return WeakValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case PrimeValue:
		return PrimeColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for curve cache storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".clipscout_cache.db"
	}
	return filepath.Join(homeDir, ".clipscout_cache.db")
}

// GetRunDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".clipscout_runs.db"
	}
	return filepath.Join(homeDir, ".clipscout_runs.db")
}

// TruncateTitle truncates a video title to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for the ellipsis plus at
// least one character of content.
func TruncateTitle(title string, maxWidth int) string {
	runes := []rune(title)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return title
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
