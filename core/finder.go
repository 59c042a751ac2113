// Package core has core logic for detection, scoring and selection of clip candidates.
package core

import (
	"github.com/clipscout/clipscout/core/algo"
	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
)

// Finder locates high-retention segments of a video and turns them into
// ranked clip candidates. It is a stateless pipeline: detection, scoring,
// selection, description. Construction validates the configuration once;
// after that every Find call is a pure function of (curve, metadata).
type Finder struct {
	cfg contract.FinderConfig
}

// NewFinder validates the configuration and returns a Finder.
// A degenerate configuration fails here, before any video is processed.
func NewFinder(cfg contract.FinderConfig) (*Finder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Finder{cfg: cfg}, nil
}

// Config returns a copy of the Finder's validated configuration.
func (f *Finder) Config() contract.FinderConfig {
	return f.cfg
}

// Find runs the full pipeline for one video and returns at most
// MaxCandidatesPerVideo clip records, highest priority first. A malformed
// curve returns ErrInvalidCurve; finding nothing is not an error and yields
// an empty slice.
func (f *Finder) Find(curve schema.RetentionCurve, meta schema.VideoMeta) ([]schema.ClipRecord, error) {
	if err := curve.Validate(); err != nil {
		return nil, err
	}

	raw := detectSegments(&curve, &f.cfg)
	for i := range raw {
		raw[i].Boost, raw[i].PriorityScore = scoreInterval(raw[i], &f.cfg)
	}

	selected := algo.SelectCandidates(raw, f.cfg.MaxCandidatesPerVideo)

	records := make([]schema.ClipRecord, 0, len(selected))
	for _, iv := range selected {
		records = append(records, describeClip(iv, meta, &f.cfg))
	}
	return records, nil
}
