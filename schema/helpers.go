package schema

import (
	"fmt"
	"math"
	"strings"
)

// Clamp01 clamps a value to the [0,1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// FormatTimestamp formats a second offset as M:SS under an hour and H:MM:SS
// at or above. Matches the timestamp style used in video descriptions.
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 3600 {
		return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// ClassifyContent assigns a content type to a video from its title and
// description. Keyword groups are checked in order of specificity; the first
// hit wins and anything unmatched falls back to GeneralContent.
func ClassifyContent(title, description string) ContentType {
	text := strings.ToLower(title + " " + description)
	for _, group := range contentKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return group.ctype
			}
		}
	}
	return GeneralContent
}

// FormatFlags renders review flags as a compact comma-joined list.
func FormatFlags(flags []ReviewFlag) string {
	if len(flags) == 0 {
		return ""
	}
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}
