// Package source reads video analytics exports from disk.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/clipscout/clipscout/schema"
)

// videoExport is the on-disk layout of one analytics export file. Each export
// bundles the video metadata with its raw retention curve.
type videoExport struct {
	Video          schema.VideoMeta         `json:"video"`
	RetentionCurve []schema.RetentionSample `json:"retention_curve"`
}

// DirSource reads per-video JSON exports from a directory. The full catalog
// is loaded once at construction; curves are served from memory afterwards.
// Listing order is sorted by video ID so repeated runs see the same sequence.
type DirSource struct {
	videos []schema.VideoMeta
	curves map[string]schema.RetentionCurve
}

// NewDirSource loads every .json export under dir. A file that fails to parse
// aborts construction: a corrupt export directory is an operator problem, not
// a per-video condition.
func NewDirSource(dir string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve directory: %w", err)
	}

	src := &DirSource{curves: make(map[string]schema.RetentionCurve)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read export %s: %w", entry.Name(), err)
		}
		var export videoExport
		if err := json.Unmarshal(data, &export); err != nil {
			return nil, fmt.Errorf("failed to parse export %s: %w", entry.Name(), err)
		}
		if export.Video.VideoID == "" {
			return nil, fmt.Errorf("export %s has no video ID", entry.Name())
		}
		src.videos = append(src.videos, export.Video)
		src.curves[export.Video.VideoID] = schema.NewRetentionCurve(
			export.Video.VideoID,
			export.Video.DurationSeconds,
			export.RetentionCurve,
		)
	}

	sort.Slice(src.videos, func(i, j int) bool {
		return src.videos[i].VideoID < src.videos[j].VideoID
	})
	return src, nil
}

// ListVideos returns metadata for every loaded video, sorted by video ID.
func (s *DirSource) ListVideos() ([]schema.VideoMeta, error) {
	videos := make([]schema.VideoMeta, len(s.videos))
	copy(videos, s.videos)
	return videos, nil
}

// GetCurve returns the retention curve for one video.
func (s *DirSource) GetCurve(videoID string) (schema.RetentionCurve, error) {
	curve, ok := s.curves[videoID]
	if !ok {
		return schema.RetentionCurve{}, fmt.Errorf("no curve loaded for video %q", videoID)
	}
	return curve, nil
}
