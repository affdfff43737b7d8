package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadResult_Cleanup(t *testing.T) {
	dir, err := os.MkdirTemp("", "cleanup-test")
	require.NoError(t, err)

	file := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0644))

	result := &DownloadResult{Dir: dir, Files: []string{file}}

	require.NoError(t, result.Cleanup())

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "workspace should be gone after cleanup")
	assert.Empty(t, result.Files)
}

func TestDownloadResult_Cleanup_Idempotent(t *testing.T) {
	dir, err := os.MkdirTemp("", "cleanup-test")
	require.NoError(t, err)

	result := &DownloadResult{Dir: dir}

	require.NoError(t, result.Cleanup())
	require.NoError(t, result.Cleanup())
}

func TestFetchToolError(t *testing.T) {
	err := NewFetchToolError("yt-dlp", "rate limited")
	assert.Equal(t, "yt-dlp failed: rate limited", err.Error())

	err = NewFetchToolError("yt-dlp", "")
	assert.Equal(t, "yt-dlp failed", err.Error())
}
