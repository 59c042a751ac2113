package core

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/clipscout/clipscout/core/algo"
	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
)

// currentCacheVersion defines the version of the curve cache schema.
const currentCacheVersion = 1

// curveCacheTTL bounds how long a cached curve is trusted. Analytics exports
// for recent videos keep accumulating samples, so stale entries are recomputed.
const curveCacheTTL = 24 * time.Hour

// videoResult carries one video's outcome back from the worker pool.
type videoResult struct {
	videoID string
	records []schema.ClipRecord
	err     error
}

// runScanCore performs the common scoping, safety filtering, and per-video
// clip finding steps. A malformed curve skips its video with a warning; only
// configuration and source errors abort the whole scan.
func runScanCore(ctx context.Context, cfg *contract.Config, src contract.CurveSource, mgr contract.CacheManager) (*schema.ScanOutput, error) {
	finder, err := NewFinder(cfg.Finder)
	if err != nil {
		return nil, err
	}

	videos, err := src.ListVideos()
	if err != nil {
		return nil, err
	}

	// --- 0. Begin Run Tracking (if configured) ---
	var runID int64
	runStore := mgr.GetRunStore()
	if runStore != nil {
		configParams := map[string]any{
			"curve_dir":       cfg.CurveDir,
			"boost_threshold": cfg.Finder.BoostThreshold,
			"min_duration":    cfg.Finder.MinDurationSeconds,
			"max_duration":    cfg.Finder.MaxDurationSeconds,
			"lookback_days":   cfg.LookbackDays,
			"top_alltime":     cfg.TopAllTime,
			"workers":         cfg.Workers,
		}
		runID, err = runStore.BeginRun(time.Now(), configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 1. Scope and Safety Filtering ---
	scoped := scopeVideos(videos, cfg)
	eligible := make([]schema.VideoMeta, 0, len(scoped))
	skipped := 0
	for _, meta := range scoped {
		if skipReason := safetySkipReason(meta, &cfg.Safety); skipReason != "" {
			skipped++
			continue
		}
		eligible = append(eligible, meta)
	}

	// --- 2. Per-Video Clip Finding ---
	results := scanVideos(ctx, cfg, src, mgr, finder, eligible)

	var records []schema.ClipRecord
	scanned := 0
	for _, res := range results {
		if res.err != nil {
			if errors.Is(res.err, schema.ErrInvalidCurve) {
				contract.LogWarn("Skipping video "+res.videoID, res.err)
				skipped++
				continue
			}
			return nil, res.err
		}
		scanned++
		records = append(records, res.records...)
		if runStore != nil && runID > 0 && len(res.records) > 0 {
			if err := runStore.RecordClips(runID, time.Now(), res.records); err != nil {
				contract.LogWarn("Run tracking failed for video "+res.videoID, err)
			}
		}
	}

	// --- 3. End Run Tracking ---
	if runStore != nil && runID > 0 {
		if err := runStore.EndRun(runID, time.Now(), scanned, len(records)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return &schema.ScanOutput{
		Records:       records,
		VideosScanned: scanned,
		VideosSkipped: skipped,
	}, nil
}

// scanVideos processes videos in parallel using a worker pool of cfg.Workers
// goroutines. Ordering of the result slice is not guaranteed; ranking happens
// downstream with a total order, so concurrency never changes the output.
func scanVideos(ctx context.Context, cfg *contract.Config, src contract.CurveSource, mgr contract.CacheManager, finder *Finder, videos []schema.VideoMeta) []videoResult {
	videoCh := make(chan schema.VideoMeta, len(videos))
	resultCh := make(chan videoResult, len(videos))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for meta := range videoCh {
				if ctx.Err() != nil {
					resultCh <- videoResult{videoID: meta.VideoID, err: ctx.Err()}
					continue
				}
				records, err := scanVideo(cfg, src, mgr, finder, meta)
				resultCh <- videoResult{videoID: meta.VideoID, records: records, err: err}
			}
		})
	}

	for _, meta := range videos {
		videoCh <- meta
	}
	close(videoCh)

	wg.Wait()
	close(resultCh)

	results := make([]videoResult, 0, len(videos))
	for r := range resultCh {
		results = append(results, r)
	}
	return results
}

// scanVideo finds the clip candidates for one video and attaches any review
// flags its metadata triggers.
func scanVideo(cfg *contract.Config, src contract.CurveSource, mgr contract.CacheManager, finder *Finder, meta schema.VideoMeta) ([]schema.ClipRecord, error) {
	curve, err := cachedCurve(src, mgr, meta.VideoID)
	if err != nil {
		return nil, err
	}

	records, err := finder.Find(curve, meta)
	if err != nil {
		return nil, err
	}

	flags := reviewFlags(meta, &cfg.Safety)
	if len(flags) > 0 {
		for i := range records {
			records[i].Flags = flags
		}
	}
	return records, nil
}

// cachedCurve returns the retention curve for a video, consulting the curve
// cache first. Cache failures fall back to the source silently; the cache is
// an accelerator, never a requirement.
func cachedCurve(src contract.CurveSource, mgr contract.CacheManager, videoID string) (schema.RetentionCurve, error) {
	store := mgr.GetCurveStore()
	if store == nil {
		return src.GetCurve(videoID)
	}

	if data, version, ts, err := store.Get(videoID); err == nil && version == currentCacheVersion {
		if time.Since(time.Unix(ts, 0)) <= curveCacheTTL {
			var curve schema.RetentionCurve
			if err := json.Unmarshal(data, &curve); err == nil {
				return curve, nil
			}
		}
	}

	curve, err := src.GetCurve(videoID)
	if err != nil {
		return schema.RetentionCurve{}, err
	}
	if data, err := json.Marshal(curve); err == nil {
		_ = store.Set(videoID, data, currentCacheVersion, time.Now().Unix())
	}
	return curve, nil
}

// scopeVideos narrows the source catalog to the scan scope: videos published
// within the lookback window, plus the all-time top performers by views. The
// union keeps evergreen hits in rotation without rescanning the full catalog.
func scopeVideos(videos []schema.VideoMeta, cfg *contract.Config) []schema.VideoMeta {
	cutoff := cfg.AsOf.AddDate(0, 0, -cfg.LookbackDays)

	topIDs := make(map[string]struct{}, cfg.TopAllTime)
	if cfg.TopAllTime > 0 {
		byViews := make([]schema.VideoMeta, len(videos))
		copy(byViews, videos)
		sort.SliceStable(byViews, func(i, j int) bool {
			if byViews[i].Views != byViews[j].Views {
				return byViews[i].Views > byViews[j].Views
			}
			return byViews[i].VideoID < byViews[j].VideoID
		})
		for i := 0; i < len(byViews) && i < cfg.TopAllTime; i++ {
			topIDs[byViews[i].VideoID] = struct{}{}
		}
	}

	scoped := make([]schema.VideoMeta, 0, len(videos))
	for _, meta := range videos {
		if _, ok := topIDs[meta.VideoID]; ok {
			scoped = append(scoped, meta)
			continue
		}
		if meta.PublishedAt == "" {
			continue // unknown age and not a top performer
		}
		published, err := time.Parse(time.RFC3339, meta.PublishedAt)
		if err != nil {
			continue
		}
		if !published.Before(cutoff) {
			scoped = append(scoped, meta)
		}
	}
	return scoped
}

// safetySkipReason returns a non-empty reason when a video must not be
// scanned at all: already short-form, explicitly excluded, or carrying
// blocked keywords or hashtags.
func safetySkipReason(meta schema.VideoMeta, safety *contract.SafetyConfig) string {
	if meta.IsShort || (meta.DurationSeconds > 0 && meta.DurationSeconds <= 60) {
		return "already short-form"
	}
	for _, id := range safety.ExcludedVideoIDs {
		if meta.VideoID == id {
			return "excluded video"
		}
	}
	text := strings.ToLower(meta.Title + " " + meta.Description)
	for _, kw := range safety.BlockedKeywords {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			return "blocked keyword"
		}
	}
	for _, tag := range safety.BlockedHashtags {
		if tag != "" && strings.Contains(text, strings.ToLower(tag)) {
			return "blocked hashtag"
		}
	}
	return ""
}

// reviewFlags collects the non-blocking flags a video's metadata triggers.
// Flagged clips still publish to the output; the flags ask for a human look.
func reviewFlags(meta schema.VideoMeta, safety *contract.SafetyConfig) []schema.ReviewFlag {
	text := strings.ToLower(meta.Title + " " + meta.Description)

	var flags []schema.ReviewFlag
	players := make([]string, 0, len(safety.FlaggedPlayers))
	for name := range safety.FlaggedPlayers {
		players = append(players, name)
	}
	sort.Strings(players) // map order must not leak into output
	for _, name := range players {
		if strings.Contains(text, strings.ToLower(name)) {
			flags = append(flags, schema.ReviewFlag{
				Kind: "player",
				Name: name,
				Note: safety.FlaggedPlayers[name],
			})
		}
	}
	for _, marker := range safety.FlaggedContent {
		if marker != "" && strings.Contains(text, strings.ToLower(marker)) {
			flags = append(flags, schema.ReviewFlag{
				Kind: "content",
				Name: marker,
				Note: "review before publishing",
			})
		}
	}
	return flags
}

// rankRecords applies the global total order and result limit.
func rankRecords(records []schema.ClipRecord, limit int) []schema.ClipRecord {
	return algo.RankClips(records, limit)
}
