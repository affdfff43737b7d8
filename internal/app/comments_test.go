package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadComments_FallbackOnEmptyPath(t *testing.T) {
	comments := LoadComments("", "", zap.NewNop())
	assert.Equal(t, len(fallbackLines), comments.Len())
}

func TestLoadComments_FallbackOnMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	comments := LoadComments(missing, "", zap.NewNop())
	assert.Equal(t, len(fallbackLines), comments.Len())
}

func TestLoadComments_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.txt")
	require.NoError(t, os.WriteFile(path,
		[]byte("first line\n\n  second line  \nthird line\n"), 0o644))

	comments := LoadComments(path, "", zap.NewNop())
	assert.Equal(t, 3, comments.Len())

	caption := comments.BuildCaption()
	assert.Contains(t, []string{"first line", "second line", "third line"}, caption)
}

func TestLoadComments_BlankFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n  \n"), 0o644))

	comments := LoadComments(path, "", zap.NewNop())
	assert.Equal(t, len(fallbackLines), comments.Len())
}

func TestBuildCaption_AppendsDisclaimer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.txt")
	require.NoError(t, os.WriteFile(path, []byte("only line\n"), 0o644))

	comments := LoadComments(path, "opinions are synthetic", zap.NewNop())
	assert.Equal(t, "only line\n\nopinions are synthetic", comments.BuildCaption())
}

func TestBuildCaption_TruncatesToLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.txt")
	long := strings.Repeat("ü", CaptionLimit+200)
	require.NoError(t, os.WriteFile(path, []byte(long+"\n"), 0o644))

	comments := LoadComments(path, "tail", zap.NewNop())
	caption := comments.BuildCaption()
	assert.Equal(t, CaptionLimit, len([]rune(caption)))
}
