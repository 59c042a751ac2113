package core

import (
	"math"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
)

// priorityScale maps the dimensionless boost x bonus product onto a 0-100-ish
// range for human-facing output. It is a constant factor, so ordering is
// unaffected.
const priorityScale = 100.0

// scoreInterval computes the relative boost of an interval over the video
// baseline and its priority score. The score is deterministic: two intervals
// with identical retention stats and length always score identically.
func scoreInterval(iv schema.Interval, cfg *contract.FinderConfig) (boost, score float64) {
	if iv.BaselineRetention > 0 {
		boost = (iv.AvgRetention - iv.BaselineRetention) / iv.BaselineRetention
	}
	if boost < 0 {
		boost = 0
	}
	score = boost * durationBonus(iv.DurationSeconds(), cfg) * priorityScale
	return boost, score
}

// durationBonus is a unimodal multiplier over the allowed duration range.
// It peaks at the geometric midpoint of [min, max] (around 30s for the 15-60
// defaults, the sweet spot for short-form performance) and tapers linearly in
// log-duration toward the configured edge value at both bounds. The result
// is strictly positive and bounded by the peak value, so no duration can
// dominate boost.
func durationBonus(durationSeconds int, cfg *contract.FinderConfig) float64 {
	minDur := float64(cfg.MinDurationSeconds)
	maxDur := float64(cfg.MaxDurationSeconds)
	if minDur == maxDur {
		return cfg.PeakDurationBonus
	}

	d := float64(durationSeconds)
	if d < minDur {
		d = minDur
	}
	if d > maxDur {
		d = maxDur
	}

	mid := math.Sqrt(minDur * maxDur)
	peak := cfg.PeakDurationBonus
	edge := cfg.EdgeDurationBonus

	var frac float64 // 1 at the midpoint, 0 at the nearer edge
	if d <= mid {
		frac = (math.Log(d) - math.Log(minDur)) / (math.Log(mid) - math.Log(minDur))
	} else {
		frac = (math.Log(maxDur) - math.Log(d)) / (math.Log(maxDur) - math.Log(mid))
	}
	return edge + (peak-edge)*frac
}
