package infrastructure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/media-relay-go/internal/domain"
	"go.uber.org/zap"
)

func newTestRunner() *CommandRunner {
	return NewCommandRunner(zap.NewNop())
}

func TestRunInWorkspace_CollectsAndFiltersFiles(t *testing.T) {
	runner := newTestRunner()

	result, err := runner.RunInWorkspace(context.Background(),
		"sh", []string{"-c", "touch a.json b.log clip.mp4"})
	require.NoError(t, err)
	defer result.Cleanup()

	require.Len(t, result.Files, 1)
	assert.Equal(t, "clip.mp4", filepath.Base(result.Files[0]))
	assert.Equal(t, result.Dir, filepath.Dir(result.Files[0]),
		"every returned path must lie inside the workspace")
}

func TestRunInWorkspace_SortsFiles(t *testing.T) {
	runner := newTestRunner()

	result, err := runner.RunInWorkspace(context.Background(),
		"sh", []string{"-c", "touch c.mp4 a.mp4 b.mp4"})
	require.NoError(t, err)
	defer result.Cleanup()

	require.Len(t, result.Files, 3)
	assert.Equal(t, "a.mp4", filepath.Base(result.Files[0]))
	assert.Equal(t, "b.mp4", filepath.Base(result.Files[1]))
	assert.Equal(t, "c.mp4", filepath.Base(result.Files[2]))
}

func TestRunInWorkspace_NonZeroExit(t *testing.T) {
	runner := newTestRunner()

	_, err := runner.RunInWorkspace(context.Background(),
		"sh", []string{"-c", "echo rate limited >&2; exit 1"})
	require.Error(t, err)

	var toolErr *domain.FetchToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, "sh", toolErr.Tool)
	assert.Contains(t, toolErr.Stderr, "rate limited")
}

func TestRunInWorkspace_NoMediaFound(t *testing.T) {
	runner := newTestRunner()

	_, err := runner.RunInWorkspace(context.Background(),
		"sh", []string{"-c", "touch sidecar.json"})
	assert.ErrorIs(t, err, domain.ErrNoMediaFound)
}

func TestRunInWorkspace_EmptyWorkspace(t *testing.T) {
	runner := newTestRunner()

	_, err := runner.RunInWorkspace(context.Background(), "true", nil)
	assert.ErrorIs(t, err, domain.ErrNoMediaFound)
}

func TestRunInWorkspace_MissingBinary(t *testing.T) {
	runner := newTestRunner()

	_, err := runner.RunInWorkspace(context.Background(), "definitely-not-a-binary-xyz", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoMediaFound)
}

func TestRunInWorkspace_ContextTimeout(t *testing.T) {
	runner := newTestRunner()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := runner.RunInWorkspace(ctx, "sh", []string{"-c", "sleep 10"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunInWorkspace_FailureRemovesWorkspace(t *testing.T) {
	runner := newTestRunner()

	before := countRelayWorkspaces(t)
	_, err := runner.RunInWorkspace(context.Background(),
		"sh", []string{"-c", "exit 1"})
	require.Error(t, err)
	assert.Equal(t, before, countRelayWorkspaces(t),
		"failed runs must not leak workspace directories")
}

func countRelayWorkspaces(t *testing.T) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "media-relay-*"))
	require.NoError(t, err)
	return len(matches)
}

func TestIsPotentialMediaFile(t *testing.T) {
	assert.True(t, IsPotentialMediaFile("video.mp4"))
	assert.True(t, IsPotentialMediaFile("image.jpg"))
	assert.True(t, IsPotentialMediaFile("IMAGE.JPG"))
	assert.False(t, IsPotentialMediaFile(".DS_Store"))
	assert.False(t, IsPotentialMediaFile(".hidden.mp4"))
	assert.False(t, IsPotentialMediaFile("metadata.json"))
	assert.False(t, IsPotentialMediaFile("clip_metadata.mp4"))
	assert.False(t, IsPotentialMediaFile("download.log"))
	assert.False(t, IsPotentialMediaFile("info.txt"))
	assert.False(t, IsPotentialMediaFile("noextension"))
	assert.False(t, IsPotentialMediaFile("archive.zip"))
}
