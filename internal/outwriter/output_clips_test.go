package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/clipscout/clipscout/internal/contract"
	"github.com/clipscout/clipscout/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleScanOutput returns a small two-clip result for writer tests.
func sampleScanOutput() *schema.ScanOutput {
	return &schema.ScanOutput{
		Records: []schema.ClipRecord{
			{
				VideoID:         "abc123",
				VideoTitle:      "Season opener highlights",
				VideoURL:        "https://videos.example.com/watch?v=abc123",
				TimestampedURL:  "https://videos.example.com/watch?v=abc123&t=50",
				StartSeconds:    50,
				EndSeconds:      80,
				StartFormatted:  "0:50",
				EndFormatted:    "1:20",
				DurationSeconds: 30,
				PriorityScore:   61.7,
				BoostPercent:    51.4,
				ClipRetention:   60.4,
				VideoRetention:  39.9,
				ContentType:     schema.HighlightContent,
				SuggestedTitle:  schema.TitleSuggestion{Suggestion: "The moment everyone rewatched"},
				Hashtags:        []string{"#Shorts", "#Highlights"},
				Flags:           []schema.ReviewFlag{{Kind: "player", Name: "J. Doe", Note: "pending trade"}},
				SourceViews:     120000,
			},
			{
				VideoID:         "def456",
				VideoTitle:      "Coach press conference",
				VideoURL:        "https://videos.example.com/watch?v=def456",
				TimestampedURL:  "https://videos.example.com/watch?v=def456&t=95",
				StartSeconds:    95,
				EndSeconds:      140,
				StartFormatted:  "1:35",
				EndFormatted:    "2:20",
				DurationSeconds: 45,
				PriorityScore:   32.1,
				BoostPercent:    28.0,
				ClipRetention:   41.0,
				VideoRetention:  32.0,
				ContentType:     schema.PresserContent,
				SuggestedTitle:  schema.TitleSuggestion{Suggestion: "You had to hear this answer"},
				Hashtags:        []string{"#Shorts", "#Interview"},
			},
		},
		VideosScanned: 5,
		VideosSkipped: 2,
	}
}

// writerConfig returns a table-friendly config with color and emoji off.
func writerConfig() *contract.Config {
	return &contract.Config{
		Output:       schema.TextOut,
		Precision:    1,
		Workers:      4,
		Width:        120,
		CacheBackend: schema.SQLiteBackend,
	}
}

// TestWriteClipTable checks headers, summary lines, and the detail columns.
func TestWriteClipTable(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	output := sampleScanOutput()

	t.Run("basic table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeClipTable(output, writerConfig(), fmtFloat, 2*time.Second, &buf))

		got := buf.String()
		for _, want := range []string{"RANK", "VIDEO", "CLIP", "DUR", "SCORE", "LABEL"} {
			assert.Contains(t, got, want)
		}
		assert.Contains(t, got, "Season opener highlights")
		assert.Contains(t, got, "0:50-1:20")
		assert.Contains(t, got, "61.7")
		assert.Contains(t, got, contract.PrimeValue)
		assert.Contains(t, got, "Showing top 2 clips from 5 videos (2 skipped)")
		assert.Contains(t, got, "Scan completed in 2s with 4 workers. Cache backend: sqlite")
		assert.NotContains(t, got, "BOOST") // detail columns off by default
	})

	t.Run("detail and explain columns", func(t *testing.T) {
		cfg := writerConfig()
		cfg.Detail = true
		cfg.Explain = true
		var buf bytes.Buffer
		require.NoError(t, writeClipTable(output, cfg, fmtFloat, time.Second, &buf))

		got := buf.String()
		for _, want := range []string{"BOOST", "CLIPRET", "BASERET", "TYPE", "FLAGS", "TITLE"} {
			assert.Contains(t, got, want)
		}
		assert.Contains(t, got, "51.4%")
		assert.Contains(t, got, "J. Doe, pending trade")
		assert.Contains(t, got, "The moment everyone rewatched")
	})

	t.Run("empty results still print summary", func(t *testing.T) {
		var buf bytes.Buffer
		empty := &schema.ScanOutput{VideosScanned: 3, VideosSkipped: 3}
		require.NoError(t, writeClipTable(empty, writerConfig(), fmtFloat, time.Second, &buf))
		assert.Contains(t, buf.String(), "Showing top 0 clips from 3 videos (3 skipped)")
	})
}

// TestWriteCSVResultsForClips checks the header shape and row contents.
func TestWriteCSVResultsForClips(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVResultsForClips(w, sampleScanOutput().Records, fmtFloat))
	w.Flush()

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 records

	header := rows[0]
	assert.Len(t, header, 16)
	assert.Equal(t, "rank", header[0])
	assert.Equal(t, "url", header[15])

	first := rows[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "abc123", first[1])
	assert.Equal(t, "0:50", first[3])
	assert.Equal(t, "30", first[5])
	assert.Equal(t, "61.7", first[6])
	assert.Equal(t, contract.PrimeValue, first[7])
	assert.Equal(t, "#Shorts|#Highlights", first[13])
	assert.Equal(t, "J. Doe, pending trade", first[14])
	assert.Equal(t, "https://videos.example.com/watch?v=abc123&t=50", first[15])

	second := rows[2]
	assert.Equal(t, "2", second[0])
	assert.Equal(t, contract.FairValue, second[7])
}

// TestWriteJSONResultsForClips checks rank and label enrichment.
func TestWriteJSONResultsForClips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONResultsForClips(&buf, sampleScanOutput()))

	var decoded struct {
		Clips []struct {
			Rank  int    `json:"rank"`
			Label string `json:"label"`
			schema.ClipRecord
		} `json:"clips"`
		VideosScanned int `json:"videos_scanned"`
		VideosSkipped int `json:"videos_skipped"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 5, decoded.VideosScanned)
	assert.Equal(t, 2, decoded.VideosSkipped)
	require.Len(t, decoded.Clips, 2)
	assert.Equal(t, 1, decoded.Clips[0].Rank)
	assert.Equal(t, contract.PrimeValue, decoded.Clips[0].Label)
	assert.Equal(t, "abc123", decoded.Clips[0].VideoID)
	assert.Equal(t, 2, decoded.Clips[1].Rank)
	assert.Equal(t, contract.FairValue, decoded.Clips[1].Label)
}

// TestCreateFormatters checks precision handling.
func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)
	assert.Equal(t, "61.7", fmtFloat(61.66))
	assert.Equal(t, "%d", intFmt)

	fmtFloat2, _ := createFormatters(2)
	assert.Equal(t, "61.66", fmtFloat2(61.66))
}

// TestGetMaxTableTitleWidth checks the override path and the clamps.
func TestGetMaxTableTitleWidth(t *testing.T) {
	t.Run("width override", func(t *testing.T) {
		cfg := writerConfig()
		cfg.Width = 120
		assert.Equal(t, 60, GetMaxTableTitleWidth(cfg)) // 120-55=65, clamped to 60
	})

	t.Run("narrow terminal clamps to minimum", func(t *testing.T) {
		cfg := writerConfig()
		cfg.Width = 40
		assert.Equal(t, 15, GetMaxTableTitleWidth(cfg))
	})

	t.Run("detail columns shrink the title space", func(t *testing.T) {
		cfg := writerConfig()
		cfg.Width = 120
		cfg.Detail = true
		assert.Equal(t, 20, GetMaxTableTitleWidth(cfg)) // 120-100=20
	})

	t.Run("mid-range width passes through", func(t *testing.T) {
		cfg := writerConfig()
		cfg.Width = 100
		assert.Equal(t, 45, GetMaxTableTitleWidth(cfg))
	})
}
