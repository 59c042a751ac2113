//go:build basic

// Package integration contains integration tests for clipscout.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"bytes"
	"encoding/csv"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanFindsPlateauClip runs a scan end to end against a synthetic curve
// and verifies the selected clip lands on the retention plateau.
func TestScanFindsPlateauClip(t *testing.T) {
	curveDir := t.TempDir()
	writeCurveExport(t, curveDir, "plateau-a", 120, 50, 80, 0.40, 0.60)
	writeCurveExport(t, curveDir, "flat-b", 120, 0, 0, 0.40, 0.40)

	outFile := filepath.Join(t.TempDir(), "clips.csv")
	output := runClipscout(t, "scan", curveDir, "--output", "csv", "--output-file", outFile)
	t.Logf("scan output: %s", output)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rows), 2, "expected a header and at least one clip row")
	header := rows[0]
	assert.Equal(t, "video_id", header[1])

	clip := rows[1]
	assert.Equal(t, "plateau-a", clip[1])
	assert.Equal(t, "0:50", clip[3])
	assert.Equal(t, "1:20", clip[4])
	assert.Equal(t, "30", clip[5])

	// The flat curve must not produce any clip
	for _, row := range rows[1:] {
		assert.NotEqual(t, "flat-b", row[1])
	}
}

// TestVideoCommand runs the single-video path end to end.
func TestVideoCommand(t *testing.T) {
	curveDir := t.TempDir()
	writeCurveExport(t, curveDir, "plateau-a", 120, 50, 80, 0.40, 0.60)

	output := runClipscout(t, "video", "plateau-a", curveDir, "--detail")
	assert.Contains(t, output, "0:50-1:20")
}

// TestParamsCommand verifies the static parameter display.
func TestParamsCommand(t *testing.T) {
	output := runClipscout(t, "params")
	assert.Contains(t, output, "boost_threshold")
	assert.Contains(t, output, "clips_per_video")
}

// runClipscout runs the CLI with caching disabled and returns combined output.
func runClipscout(t *testing.T, args ...string) string {
	t.Helper()
	clipscoutPath := getClipscoutBinary()
	cmd := exec.Command(clipscoutPath, args...)
	cmd.Dir = "../" // Run from project root
	cmd.Env = append(os.Environ(), "CLIPSCOUT_CACHE_BACKEND=none")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s\nOutput: %s", cmd.String(), string(output))
	return string(output)
}
