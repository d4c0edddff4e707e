package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seat-finder/internal/config"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "zero duration",
			duration: 0,
			want:     "0s",
		},
		{
			name:     "one second",
			duration: 1 * time.Second,
			want:     "1s",
		},
		{
			name:     "29 minutes 59 seconds",
			duration: 29*time.Minute + 59*time.Second,
			want:     "29m59s",
		},
		{
			name:     "159 minutes 59 seconds",
			duration: 159*time.Minute + 59*time.Second,
			want:     "159m59s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatElapsed(tt.duration)
			assert.Equal(t, tt.want, got, "formatElapsed should return expected format for %v", tt.duration)
		})
	}
}

// runSeats executes the root command with args and returns its stdout.
func runSeats(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDecodeCmd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "passes.txt")
	output := filepath.Join(dir, "ids.txt")
	require.NoError(t, os.WriteFile(input, []byte("FBFBBFFRLR\nBFFFBBFRRR\nFFFBBBFRRR\nBBFFBBFRLL\n"), 0644))

	out, err := runSeats(t, "decode",
		"--config", filepath.Join(dir, "missing.yaml"),
		"--input", input,
		"--output", output,
		"--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Passes decoded: 4")
	assert.Contains(t, out, "Lowest seat id: 119")
	assert.Contains(t, out, "Highest seat id: 820")
	assert.Contains(t, out, "Free seat id: none")

	ids, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "357\n567\n119\n820\n", string(ids))
}

func TestDecodeCmd_InvalidLine(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "passes.txt")
	require.NoError(t, os.WriteFile(input, []byte("FBFBBFFRLR\nFBFBBFFRL\n"), 0644))

	_, err := runSeats(t, "decode", "--config", "", "--input", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	out, err := runSeats(t, "decode", "--config", "", "--input", input, "--skip-invalid")
	require.NoError(t, err)
	assert.Contains(t, out, "Passes rejected: 1")
	assert.Contains(t, out, "Highest seat id: 357")
}

func TestDecodeCmd_MissingInput(t *testing.T) {
	_, err := runSeats(t, "decode", "--config", "")
	assert.Error(t, err)
}

func TestConfigInitCmd(t *testing.T) {
	for _, key := range []string{"DB_PATH", "ADDR", "LOG_LEVEL", "DECODE_WORKERS"} {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), "seats.yaml")

	out, err := runSeats(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = runSeats(t, "config", "init", "--config", path)
	assert.Error(t, err, "existing file must not be overwritten")

	_, err = runSeats(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}

func TestEncodeCmd(t *testing.T) {
	out, err := runSeats(t, "encode", "102", "4")
	require.NoError(t, err)
	assert.Equal(t, "BBFFBBFRLL\n", out)

	_, err = runSeats(t, "encode", "128", "0")
	assert.Error(t, err)

	_, err = runSeats(t, "encode", "row", "0")
	assert.Error(t, err)
}
