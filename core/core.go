package core

import (
	"context"
	"fmt"
	"time"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/internal/outwriter"
	"github.com/clipscout/clipscout/internal/source"
	"github.com/clipscout/clipscout/schema"
)

// ExecutorFunc defines the function signature for executing different scan modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// GetScanResults runs a full scan and returns the ranked output without
// printing anything. It serves programmatic callers such as the MCP server.
func GetScanResults(ctx context.Context, cfg *contract.Config, src contract.CurveSource, mgr contract.CacheManager) (*schema.ScanOutput, error) {
	output, err := runScanCore(ctx, cfg, src, mgr)
	if err != nil {
		return nil, err
	}
	output.Records = rankRecords(output.Records, cfg.ResultLimit)
	return output, nil
}

// ExecuteScan runs the batch scan over the configured curve directory and
// prints the ranked clip candidates to stdout. It serves as the main entry
// point for the 'scan' command.
func ExecuteScan(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	outwriter.LogScanHeader(cfg)

	src, err := source.NewDirSource(cfg.CurveDir)
	if err != nil {
		return err
	}

	output, err := GetScanResults(ctx, cfg, src, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintClipResults(output, cfg, duration)
}

// GetVideoResults runs the finder for a single video and returns the ranked
// output without printing anything. Unlike a batch scan, a malformed curve is
// a hard error here since the video was asked for by name.
func GetVideoResults(_ context.Context, cfg *contract.Config, videoID string, src contract.CurveSource, mgr contract.CacheManager) (*schema.ScanOutput, error) {
	meta, err := findVideoMeta(src, videoID)
	if err != nil {
		return nil, err
	}

	finder, err := NewFinder(cfg.Finder)
	if err != nil {
		return nil, err
	}

	records, err := scanVideo(cfg, src, mgr, finder, meta)
	if err != nil {
		return nil, err
	}

	return &schema.ScanOutput{
		Records:       rankRecords(records, cfg.ResultLimit),
		VideosScanned: 1,
	}, nil
}

// ExecuteVideo runs the finder for a single video and prints its candidates.
// It serves as the main entry point for the 'video' command.
func ExecuteVideo(ctx context.Context, cfg *contract.Config, videoID string, mgr contract.CacheManager) error {
	start := time.Now()

	src, err := source.NewDirSource(cfg.CurveDir)
	if err != nil {
		return err
	}

	output, err := GetVideoResults(ctx, cfg, videoID, src, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintClipResults(output, cfg, duration)
}

// ExecuteParams displays the effective finder parameters. This is a static
// display that reads no curves.
func ExecuteParams(_ context.Context, cfg *contract.Config, _ contract.CacheManager) error {
	return outwriter.PrintParamsDefinitions(cfg)
}

// findVideoMeta resolves one video's metadata from the source catalog.
func findVideoMeta(src contract.CurveSource, videoID string) (schema.VideoMeta, error) {
	videos, err := src.ListVideos()
	if err != nil {
		return schema.VideoMeta{}, err
	}
	for _, meta := range videos {
		if meta.VideoID == videoID {
			return meta, nil
		}
	}
	return schema.VideoMeta{}, fmt.Errorf("video %q not found in source catalog", videoID)
}
