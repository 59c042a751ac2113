package core

import (
	"testing"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultFinderConfig returns the stock tunables used throughout the tests.
func defaultFinderConfig() contract.FinderConfig {
	return contract.FinderConfig{
		BoostThreshold:         contract.DefaultBoostThreshold,
		MinDurationSeconds:     contract.DefaultMinDuration,
		MaxDurationSeconds:     contract.DefaultMaxDuration,
		MinSustainedSeconds:    contract.DefaultMinSustained,
		IntroExclusionFraction: contract.DefaultIntroExclusion,
		OutroExclusionFraction: contract.DefaultOutroExclusion,
		MaxCandidatesPerVideo:  contract.DefaultClipsPerVideo,
		PeakDurationBonus:      contract.DefaultPeakBonus,
		EdgeDurationBonus:      contract.DefaultEdgeBonus,
	}
}

// makeCurve builds a per-second curve where each sample's retention comes from
// the supplied function of the absolute second offset.
func makeCurve(videoID string, durationSeconds int, retention func(sec int) float64) schema.RetentionCurve {
	samples := make([]schema.RetentionSample, 0, durationSeconds+1)
	for i := 0; i <= durationSeconds; i++ {
		samples = append(samples, schema.RetentionSample{
			Position:  float64(i) / float64(durationSeconds),
			Retention: retention(i),
		})
	}
	return schema.NewRetentionCurve(videoID, durationSeconds, samples)
}

// plateauCurve builds a curve with flat base retention except a plateau of
// boosted retention between plateauStart and plateauEnd (inclusive).
func plateauCurve(videoID string, durationSeconds int, base, boosted float64, plateauStart, plateauEnd int) schema.RetentionCurve {
	return makeCurve(videoID, durationSeconds, func(sec int) float64 {
		if sec >= plateauStart && sec <= plateauEnd {
			return boosted
		}
		return base
	})
}

// TestDetectSegmentsPlateau covers the canonical case: a 30s plateau of 0.60
// retention over a 0.40 base in a 120s video yields exactly one candidate
// spanning the plateau.
func TestDetectSegmentsPlateau(t *testing.T) {
	cfg := defaultFinderConfig()
	curve := plateauCurve("vid-1", 120, 0.40, 0.60, 50, 80)

	intervals := detectSegments(&curve, &cfg)
	require.Len(t, intervals, 1)

	iv := intervals[0]
	assert.Equal(t, 50, iv.StartSeconds)
	assert.Equal(t, 80, iv.EndSeconds)
	assert.InDelta(t, 0.60, iv.AvgRetention, 0.001)
	assert.InDelta(t, 0.60, iv.PeakRetention, 0.001)

	// Baseline is the mean over the eligible region, plateau included: the
	// eligible seconds are 12..114 (103 samples), 31 of them at 0.60.
	wantBaseline := (31*0.60 + 72*0.40) / 103
	assert.InDelta(t, wantBaseline, iv.BaselineRetention, 0.001)
}

// TestDetectSegmentsBriefSpike verifies a plateau shorter than the sustained
// minimum produces nothing.
func TestDetectSegmentsBriefSpike(t *testing.T) {
	cfg := defaultFinderConfig()
	curve := plateauCurve("vid-1", 120, 0.40, 0.90, 50, 54)

	intervals := detectSegments(&curve, &cfg)
	assert.Empty(t, intervals)
}

// TestDetectSegmentsFlatCurve verifies a zero-variance curve yields no
// candidates, even with a zero boost threshold.
func TestDetectSegmentsFlatCurve(t *testing.T) {
	curve := makeCurve("vid-1", 120, func(int) float64 { return 0.40 })

	t.Run("default threshold", func(t *testing.T) {
		cfg := defaultFinderConfig()
		assert.Empty(t, detectSegments(&curve, &cfg))
	})

	t.Run("zero threshold", func(t *testing.T) {
		cfg := defaultFinderConfig()
		cfg.BoostThreshold = 0
		assert.Empty(t, detectSegments(&curve, &cfg))
	})
}

// TestDetectSegmentsAllExcluded verifies a curve whose samples all fall inside
// the intro exclusion zone yields no candidates.
func TestDetectSegmentsAllExcluded(t *testing.T) {
	cfg := defaultFinderConfig()
	curve := schema.NewRetentionCurve("vid-1", 120, []schema.RetentionSample{
		{Position: 0.01, Retention: 0.9},
		{Position: 0.04, Retention: 0.9},
		{Position: 0.08, Retention: 0.9},
	})

	assert.Empty(t, detectSegments(&curve, &cfg))
}

// TestDetectSegmentsZeroBaseline verifies a dead curve cannot divide by zero.
func TestDetectSegmentsZeroBaseline(t *testing.T) {
	cfg := defaultFinderConfig()
	curve := makeCurve("vid-1", 120, func(int) float64 { return 0 })

	assert.Empty(t, detectSegments(&curve, &cfg))
}

// TestDetectSegmentsShortRunExtension verifies a sustained-but-short run is
// extended up to the minimum duration without crossing the exclusion zones.
func TestDetectSegmentsShortRunExtension(t *testing.T) {
	cfg := defaultFinderConfig()
	// 12s plateau: above the 10s sustained floor, below the 15s minimum.
	curve := plateauCurve("vid-1", 120, 0.40, 0.70, 50, 62)

	intervals := detectSegments(&curve, &cfg)
	require.Len(t, intervals, 1)

	iv := intervals[0]
	assert.Equal(t, cfg.MinDurationSeconds, iv.DurationSeconds())
	assert.GreaterOrEqual(t, iv.StartSeconds, 12) // intro boundary at 0.10 x 120
	assert.LessOrEqual(t, iv.EndSeconds, 114)     // outro boundary at 0.95 x 120
	assert.LessOrEqual(t, iv.StartSeconds, 50)    // extension reaches left
	assert.GreaterOrEqual(t, iv.EndSeconds, 62)   // and right of the plateau
}

// TestDetectSegmentsLongRunSubWindow verifies a run longer than the maximum
// duration is trimmed to the best fixed-width sub-window instead of dropped.
func TestDetectSegmentsLongRunSubWindow(t *testing.T) {
	cfg := defaultFinderConfig()
	// 70s plateau in a 300s video; eligible region is 30..285.
	curve := plateauCurve("vid-1", 300, 0.40, 0.70, 100, 170)

	intervals := detectSegments(&curve, &cfg)
	require.Len(t, intervals, 1)

	iv := intervals[0]
	assert.Equal(t, cfg.MaxDurationSeconds, iv.DurationSeconds())
	// A flat plateau ties every window; the earliest one wins.
	assert.Equal(t, 100, iv.StartSeconds)
	assert.Equal(t, 160, iv.EndSeconds)
}

// TestDetectSegmentsDurationBounds is the blanket property: whatever the
// curve, every emitted interval respects the duration bounds and exclusions.
func TestDetectSegmentsDurationBounds(t *testing.T) {
	cfg := defaultFinderConfig()
	curves := []schema.RetentionCurve{
		plateauCurve("a", 120, 0.40, 0.60, 50, 80),
		plateauCurve("b", 300, 0.40, 0.70, 100, 170),
		plateauCurve("c", 120, 0.40, 0.70, 50, 62),
		plateauCurve("d", 600, 0.30, 0.80, 70, 95),
	}

	for _, curve := range curves {
		intervals := detectSegments(&curve, &cfg)
		introSec := int(cfg.IntroExclusionFraction * float64(curve.DurationSeconds))
		outroSec := int((1 - cfg.OutroExclusionFraction) * float64(curve.DurationSeconds))
		for _, iv := range intervals {
			assert.GreaterOrEqual(t, iv.DurationSeconds(), cfg.MinDurationSeconds, curve.VideoID)
			assert.LessOrEqual(t, iv.DurationSeconds(), cfg.MaxDurationSeconds, curve.VideoID)
			assert.GreaterOrEqual(t, iv.StartSeconds, introSec, curve.VideoID)
			assert.LessOrEqual(t, iv.EndSeconds, outroSec, curve.VideoID)
		}
	}
}
