package iocache

import (
	"testing"
	"time"

	"github.com/clipscout/clipscout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMemoryRunStore creates an in-memory SQLite run store for tests.
func newMemoryRunStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

// TestRunStoreLifecycle covers BeginRun, RecordClips, EndRun, and the readers.
func TestRunStoreLifecycle(t *testing.T) {
	store := newMemoryRunStore(t)

	start := time.Now().Add(-2 * time.Second)
	runID, err := store.BeginRun(start, map[string]any{"boost_threshold": 0.25})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	records := []schema.ClipRecord{
		{
			VideoID:        "vid-a",
			VideoTitle:     "Season opener",
			StartSeconds:   50,
			EndSeconds:     80,
			PriorityScore:  61.7,
			BoostPercent:   51.4,
			ClipRetention:  60.4,
			VideoRetention: 39.9,
			ContentType:    schema.HighlightContent,
			SuggestedTitle: schema.TitleSuggestion{Suggestion: "The moment everyone rewatched"},
			TimestampedURL: "https://videos.example.com/watch?v=vid-a&t=50",
		},
	}
	require.NoError(t, store.RecordClips(runID, start.Add(time.Second), records))
	require.NoError(t, store.EndRun(runID, time.Now(), 5, 1))

	runs, err := store.GetRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	require.NotNil(t, runs[0].EndTime)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.GreaterOrEqual(t, *runs[0].RunDurationMs, int32(0))
	assert.Equal(t, int32(5), runs[0].VideosScanned)
	assert.Equal(t, int32(1), runs[0].ClipsFound)
	require.NotNil(t, runs[0].ConfigParams)
	assert.Contains(t, *runs[0].ConfigParams, "boost_threshold")

	rows, err := store.GetClipRows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, runID, rows[0].RunID)
	assert.Equal(t, "vid-a", rows[0].VideoID)
	assert.Equal(t, 50, rows[0].StartSeconds)
	assert.Equal(t, 61.7, rows[0].PriorityScore)
	assert.Equal(t, "The moment everyone rewatched", rows[0].SuggestedTitle)
}

// TestRunStoreGetStatus covers run counts and per-table sizes.
func TestRunStoreGetStatus(t *testing.T) {
	store := newMemoryRunStore(t)

	start := time.Now()
	runID, err := store.BeginRun(start, nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordClips(runID, start, []schema.ClipRecord{
		{VideoID: "a", StartSeconds: 10, EndSeconds: 40},
		{VideoID: "a", StartSeconds: 90, EndSeconds: 120},
	}))
	require.NoError(t, store.EndRun(runID, start.Add(time.Second), 3, 2))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, 2, status.TotalClipsFound)
	assert.Equal(t, int64(1), status.TableSizes[scanRunsTable])
	assert.Equal(t, int64(2), status.TableSizes[clipRecordsTable])
}

// TestRunStoreClear verifies runs and clip rows are both removed.
func TestRunStoreClear(t *testing.T) {
	store := newMemoryRunStore(t)

	start := time.Now()
	runID, err := store.BeginRun(start, nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordClips(runID, start, []schema.ClipRecord{
		{VideoID: "a", StartSeconds: 10, EndSeconds: 40},
	}))

	require.NoError(t, store.Clear())

	runs, err := store.GetRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
	rows, err := store.GetClipRows()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// TestRunStoreNoneBackend verifies the disabled store behaves as a no-op.
func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.RecordClips(0, time.Now(), nil))
	assert.NoError(t, store.EndRun(0, time.Now(), 0, 0))

	runs, err := store.GetRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

// TestRunStoreMultipleRuns verifies ordering by run ID.
func TestRunStoreMultipleRuns(t *testing.T) {
	store := newMemoryRunStore(t)

	first, err := store.BeginRun(time.Now().Add(-time.Minute), nil)
	require.NoError(t, err)
	second, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Greater(t, second, first)

	runs, err := store.GetRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first, runs[0].RunID)
	assert.Equal(t, second, runs[1].RunID)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, second, status.LastRunID)
}
