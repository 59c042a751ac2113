// Package schema has configs, models and global variables for all parts of clipscout.
package schema

// RetentionSample is a single point on an audience-retention curve.
// Position and Retention are both normalized fractions in [0,1].
type RetentionSample struct {
	Position  float64 `json:"position"`  // Normalized position in the video (0.0 to 1.0)
	Retention float64 `json:"retention"` // Fraction of viewers still watching at this position
}

// RetentionCurve holds the normalized per-position retention samples for one video.
// It is constructed fresh per video per run and never mutated afterwards.
type RetentionCurve struct {
	VideoID         string            `json:"video_id"`         // Opaque video identifier
	DurationSeconds int               `json:"duration_seconds"` // Total video length in seconds
	Samples         []RetentionSample `json:"samples"`          // Ordered by strictly increasing position
}

// NewRetentionCurve builds a curve from raw analytics samples. Retention values
// outside [0,1] are clamped rather than trusted raw. Sample ordering is the
// caller's responsibility and is checked by Validate.
func NewRetentionCurve(videoID string, durationSeconds int, samples []RetentionSample) RetentionCurve {
	clamped := make([]RetentionSample, len(samples))
	for i, s := range samples {
		clamped[i] = RetentionSample{
			Position:  Clamp01(s.Position),
			Retention: Clamp01(s.Retention),
		}
	}
	return RetentionCurve{
		VideoID:         videoID,
		DurationSeconds: durationSeconds,
		Samples:         clamped,
	}
}

// Validate checks the curve invariants: a positive duration, at least two
// samples, and strictly increasing positions. Violations are reported as
// ErrInvalidCurve so callers can skip the video and continue the batch.
func (c *RetentionCurve) Validate() error {
	if c.DurationSeconds <= 0 {
		return invalidCurvef(c.VideoID, "duration must be positive, got %d", c.DurationSeconds)
	}
	if len(c.Samples) < MinCurveSamples {
		return invalidCurvef(c.VideoID, "need at least %d samples, got %d", MinCurveSamples, len(c.Samples))
	}
	for i := 1; i < len(c.Samples); i++ {
		if c.Samples[i].Position <= c.Samples[i-1].Position {
			return invalidCurvef(c.VideoID, "sample positions must be strictly increasing (sample %d)", i)
		}
	}
	return nil
}

// VideoMeta is the minimal video metadata the Finder needs to describe a clip.
type VideoMeta struct {
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	CanonicalURL    string `json:"canonical_url"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	Views           int64  `json:"views,omitempty"`
	PublishedAt     string `json:"published_at,omitempty"` // RFC3339; empty if unknown
	IsShort         bool   `json:"is_short,omitempty"`
}
