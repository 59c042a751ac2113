package core

import (
	"math"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
)

// timeEpsilon guards float comparisons on second offsets derived from
// position fractions.
const timeEpsilon = 1e-9

// detectSegments scans a curve for contiguous runs of samples whose retention
// clears the hot threshold relative to the video's own baseline, and shapes
// each run into a raw candidate interval that respects the duration bounds
// and exclusion zones. Scoring happens later; intervals leave here with
// retention stats only.
func detectSegments(curve *schema.RetentionCurve, cfg *contract.FinderConfig) []schema.Interval {
	dur := float64(curve.DurationSeconds)
	introFrac := cfg.IntroExclusionFraction
	outroFrac := 1 - cfg.OutroExclusionFraction

	// Baseline is computed over the eligible (non-excluded) region only, so
	// a strong intro hook cannot inflate the comparison point.
	eligible := make([]schema.RetentionSample, 0, len(curve.Samples))
	for _, s := range curve.Samples {
		if s.Position >= introFrac && s.Position <= outroFrac {
			eligible = append(eligible, s)
		}
	}
	if len(eligible) < schema.MinCurveSamples {
		return nil // video too short or exclusion zones swallow everything
	}

	var sum float64
	for _, s := range eligible {
		sum += s.Retention
	}
	baseline := sum / float64(len(eligible))
	if baseline <= 0 {
		return nil // nobody kept watching; nothing can stand out
	}

	threshold := baseline * (1 + cfg.BoostThreshold)

	// Collapse consecutive hot samples into runs of eligible indices.
	// The strict > baseline check keeps a perfectly flat curve from
	// classifying as all-hot when the boost threshold is zero.
	var runs [][2]int
	runStart := -1
	for i, s := range eligible {
		hot := s.Retention >= threshold && s.Retention > baseline
		switch {
		case hot && runStart < 0:
			runStart = i
		case !hot && runStart >= 0:
			runs = append(runs, [2]int{runStart, i - 1})
			runStart = -1
		}
	}
	if runStart >= 0 {
		runs = append(runs, [2]int{runStart, len(eligible) - 1})
	}

	introSec := introFrac * dur
	outroSec := outroFrac * dur

	var intervals []schema.Interval
	for _, r := range runs {
		if iv, ok := shapeRun(eligible, r[0], r[1], dur, introSec, outroSec, baseline, cfg); ok {
			intervals = append(intervals, iv)
		}
	}
	return intervals
}

// shapeRun converts one hot run (eligible indices first..last, inclusive)
// into a candidate interval, enforcing the sustained minimum and the
// duration bounds. Returns false when the run must be discarded.
func shapeRun(eligible []schema.RetentionSample, first, last int, dur, introSec, outroSec, baseline float64, cfg *contract.FinderConfig) (schema.Interval, bool) {
	startSec := eligible[first].Position * dur
	endSec := eligible[last].Position * dur
	length := endSec - startSec

	// A brief spike is noise, not a clippable moment.
	if length < float64(cfg.MinSustainedSeconds) {
		return schema.Interval{}, false
	}

	minDur := float64(cfg.MinDurationSeconds)
	maxDur := float64(cfg.MaxDurationSeconds)

	switch {
	case length > maxDur:
		// Keep the strongest fixed-width sub-window instead of discarding a
		// sustained segment that happens to run long.
		startSec, endSec = bestSubWindow(eligible, first, last, dur, maxDur)
	case length < minDur:
		// Extend symmetrically up to the minimum, shifting entirely to the
		// open side when one exclusion boundary is in the way.
		need := minDur - length
		startSec -= need / 2
		endSec += need / 2
		if startSec < introSec {
			startSec = introSec
			endSec = startSec + minDur
		}
		if endSec > outroSec {
			endSec = outroSec
			startSec = endSec - minDur
		}
		if startSec < introSec-timeEpsilon {
			return schema.Interval{}, false // eligible span cannot absorb the extension
		}
	}

	avg, peak := windowStats(eligible, startSec, endSec, dur)

	// Integerize without leaking into the exclusion zones: ceil the start,
	// round the length, and shift left if the end spills past the outro.
	start := int(math.Ceil(startSec - timeEpsilon))
	clipLen := int(math.Round(endSec - startSec))
	end := start + clipLen
	if outroInt := int(math.Floor(outroSec + timeEpsilon)); end > outroInt {
		end = outroInt
		start = end - clipLen
	}
	if start < int(math.Ceil(introSec-timeEpsilon)) {
		return schema.Interval{}, false
	}

	return schema.Interval{
		StartSeconds:      start,
		EndSeconds:        end,
		AvgRetention:      avg,
		PeakRetention:     peak,
		BaselineRetention: baseline,
	}, true
}

// bestSubWindow slides a window of width maxDur across the run, anchored at
// sample positions, and returns the window with the highest average
// retention. Ties break toward the earliest position.
func bestSubWindow(eligible []schema.RetentionSample, first, last int, dur, maxDur float64) (float64, float64) {
	runEnd := eligible[last].Position * dur

	bestStart := eligible[first].Position * dur
	bestAvg := -1.0
	for i := first; i <= last; i++ {
		ws := eligible[i].Position * dur
		if ws+maxDur > runEnd+timeEpsilon {
			break // window no longer fits inside the run
		}
		avg, _ := windowStats(eligible, ws, ws+maxDur, dur)
		if avg > bestAvg+timeEpsilon {
			bestAvg = avg
			bestStart = ws
		}
	}
	return bestStart, bestStart + maxDur
}

// windowStats returns the mean and peak retention of the eligible samples
// falling inside [startSec, endSec].
func windowStats(eligible []schema.RetentionSample, startSec, endSec, dur float64) (avg, peak float64) {
	var sum float64
	var n int
	for _, s := range eligible {
		sec := s.Position * dur
		if sec < startSec-timeEpsilon || sec > endSec+timeEpsilon {
			continue
		}
		sum += s.Retention
		if s.Retention > peak {
			peak = s.Retention
		}
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), peak
}
