package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that DirSource satisfies the scanner's source contract.
var _ contract.CurveSource = &DirSource{}

// writeExport drops one export file into dir.
func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const exportB = `{
  "video": {
    "video_id": "vid-b",
    "title": "Season opener",
    "canonical_url": "https://videos.example.com/watch?v=vid-b",
    "duration_seconds": 120,
    "views": 5000,
    "published_at": "2026-08-01T00:00:00Z"
  },
  "retention_curve": [
    {"position": 0.0, "retention": 1.0},
    {"position": 0.5, "retention": 0.6},
    {"position": 1.0, "retention": 0.4}
  ]
}`

const exportA = `{
  "video": {
    "video_id": "vid-a",
    "title": "Practice notes",
    "canonical_url": "https://videos.example.com/watch?v=vid-a",
    "duration_seconds": 90
  },
  "retention_curve": [
    {"position": 0.0, "retention": 0.9},
    {"position": 1.0, "retention": 0.3}
  ]
}`

// TestNewDirSource covers loading, ordering, and curve retrieval.
func TestNewDirSource(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "b.json", exportB)
	writeExport(t, dir, "a.json", exportA)
	writeExport(t, dir, "notes.txt", "not an export") // ignored by extension

	src, err := NewDirSource(dir)
	require.NoError(t, err)

	videos, err := src.ListVideos()
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "vid-a", videos[0].VideoID) // sorted by ID, not filename order
	assert.Equal(t, "vid-b", videos[1].VideoID)
	assert.Equal(t, "Season opener", videos[1].Title)
	assert.Equal(t, int64(5000), videos[1].Views)

	curve, err := src.GetCurve("vid-b")
	require.NoError(t, err)
	assert.Equal(t, 120, curve.DurationSeconds)
	require.Len(t, curve.Samples, 3)
	assert.Equal(t, 0.6, curve.Samples[1].Retention)
}

// TestNewDirSourceRetentionClamping verifies out-of-range analytics values are clamped.
func TestNewDirSourceRetentionClamping(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "hot.json", `{
  "video": {"video_id": "hot", "canonical_url": "u", "duration_seconds": 60},
  "retention_curve": [
    {"position": 0.0, "retention": 1.4},
    {"position": 1.0, "retention": -0.2}
  ]
}`)

	src, err := NewDirSource(dir)
	require.NoError(t, err)
	curve, err := src.GetCurve("hot")
	require.NoError(t, err)
	assert.Equal(t, 1.0, curve.Samples[0].Retention)
	assert.Equal(t, 0.0, curve.Samples[1].Retention)
}

// TestNewDirSourceErrors covers the abort-on-corruption paths.
func TestNewDirSourceErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := NewDirSource(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("malformed json aborts", func(t *testing.T) {
		dir := t.TempDir()
		writeExport(t, dir, "good.json", exportA)
		writeExport(t, dir, "bad.json", "{not json")
		_, err := NewDirSource(dir)
		assert.ErrorContains(t, err, "bad.json")
	})

	t.Run("export without video id aborts", func(t *testing.T) {
		dir := t.TempDir()
		writeExport(t, dir, "anon.json", `{"video": {"title": "no id"}, "retention_curve": []}`)
		_, err := NewDirSource(dir)
		assert.ErrorContains(t, err, "no video ID")
	})
}

// TestGetCurveUnknownVideo verifies lookups for unloaded videos fail.
func TestGetCurveUnknownVideo(t *testing.T) {
	src, err := NewDirSource(t.TempDir())
	require.NoError(t, err)
	_, err = src.GetCurve("ghost")
	assert.ErrorContains(t, err, "ghost")
}
