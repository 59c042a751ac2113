// Package algo has pure selection and ranking helpers for clip candidates.
package algo

import (
	"sort"

	"github.com/clipscout/clipscout/schema"
)

// SelectCandidates orders scored intervals by priority (ties break toward the
// earlier start) and greedily accepts non-overlapping ones until the per-video
// cap is reached. Greedy-by-score is deliberately used instead of weighted
// interval scheduling: with a cap of a few clips per video the approximation
// is adequate and the behavior stays simple and deterministic.
func SelectCandidates(intervals []schema.Interval, limit int) []schema.Interval {
	sorted := make([]schema.Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PriorityScore != sorted[j].PriorityScore {
			return sorted[i].PriorityScore > sorted[j].PriorityScore
		}
		return sorted[i].StartSeconds < sorted[j].StartSeconds
	})

	accepted := make([]schema.Interval, 0, limit)
	for _, candidate := range sorted {
		if len(accepted) >= limit {
			break
		}
		overlaps := false
		for _, kept := range accepted {
			if candidate.Overlaps(kept) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, candidate)
		}
	}
	return accepted
}

// RankClips sorts clip records by priority score in descending order and
// returns the top 'limit' records. Ties break toward the earlier start, then
// the lexically smaller video ID, so concurrent scans always agree on order.
func RankClips(records []schema.ClipRecord, limit int) []schema.ClipRecord {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].PriorityScore != records[j].PriorityScore {
			return records[i].PriorityScore > records[j].PriorityScore
		}
		if records[i].StartSeconds != records[j].StartSeconds {
			return records[i].StartSeconds < records[j].StartSeconds
		}
		return records[i].VideoID < records[j].VideoID
	})
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
