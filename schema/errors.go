package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure classes the Finder distinguishes.
// A configuration error is a deployment mistake and fails fast at
// construction time; a curve error is a per-video event the caller skips.
var (
	ErrInvalidConfiguration = errors.New("invalid finder configuration")
	ErrInvalidCurve         = errors.New("invalid retention curve")
)

// invalidCurvef wraps ErrInvalidCurve with video context.
func invalidCurvef(videoID, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: video %q: %s", ErrInvalidCurve, videoID, detail)
}

// InvalidConfigf wraps ErrInvalidConfiguration with detail.
func InvalidConfigf(format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, detail)
}
