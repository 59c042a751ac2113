package schema

// Interval is a candidate time range proposed as a short-form clip.
// It is created by the detector, enriched by the scorer, and possibly
// merged or dropped by the selector.
type Interval struct {
	StartSeconds      int     `json:"start_seconds"`
	EndSeconds        int     `json:"end_seconds"` // Exclusive; always > StartSeconds
	AvgRetention      float64 `json:"avg_retention"`
	PeakRetention     float64 `json:"peak_retention"`
	BaselineRetention float64 `json:"baseline_retention"`
	Boost             float64 `json:"boost"`          // Relative excess over baseline, floored at 0
	PriorityScore     float64 `json:"priority_score"` // Total ordering key, set by the scorer
}

// DurationSeconds returns the interval length in seconds.
func (iv Interval) DurationSeconds() int {
	return iv.EndSeconds - iv.StartSeconds
}

// Overlaps reports whether two intervals share any time at all.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.StartSeconds < other.EndSeconds && other.StartSeconds < iv.EndSeconds
}

// TitleSuggestion is a templated working title for a clip, with alternates.
// Selection is deterministic per video so repeated runs agree.
type TitleSuggestion struct {
	Suggestion   string   `json:"suggestion"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// ReviewFlag marks a clip that needs human review before publishing.
// Flags never block a candidate; they ride along on the output record.
type ReviewFlag struct {
	Kind string `json:"kind"` // "player" or "content"
	Name string `json:"name"`
	Note string `json:"note"`
}

// ClipRecord is the finalized, read-only output record for one selected clip.
type ClipRecord struct {
	VideoID         string          `json:"video_id"`
	VideoTitle      string          `json:"video_title"`
	VideoURL        string          `json:"video_url"`
	TimestampedURL  string          `json:"timestamped_url"`
	StartSeconds    int             `json:"start_seconds"`
	EndSeconds      int             `json:"end_seconds"`
	StartFormatted  string          `json:"start_formatted"`
	EndFormatted    string          `json:"end_formatted"`
	DurationSeconds int             `json:"duration_seconds"`
	PriorityScore   float64         `json:"priority_score"`
	BoostPercent    float64         `json:"boost_percent"`       // Rounded, human-facing
	ClipRetention   float64         `json:"clip_retention_pct"`  // Rounded percent
	VideoRetention  float64         `json:"video_retention_pct"` // Rounded baseline percent
	ContentType     ContentType     `json:"content_type"`
	SuggestedTitle  TitleSuggestion `json:"suggested_title"`
	Hashtags        []string        `json:"hashtags,omitempty"`
	Flags           []ReviewFlag    `json:"flags,omitempty"`
	SourceViews     int64           `json:"source_video_views,omitempty"`
}

// ScanOutput bundles everything a single scan run produced.
type ScanOutput struct {
	Records       []ClipRecord `json:"records"`
	VideosScanned int          `json:"videos_scanned"`
	VideosSkipped int          `json:"videos_skipped"`
}
