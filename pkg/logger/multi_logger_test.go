package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMultiLogger(t *testing.T) (*MultiLogger, string) {
	t.Helper()
	dir := t.TempDir()
	ml, err := NewMultiLogger(MultiLoggerConfig{Level: "info", LogsDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { ml.Close() })
	return ml, dir
}

func TestMultiLogger_RequiresLogsDir(t *testing.T) {
	_, err := NewMultiLogger(MultiLoggerConfig{Level: "info"})
	assert.Error(t, err)
}

func TestMultiLogger_WritesDatedCategoryFile(t *testing.T) {
	ml, dir := newTestMultiLogger(t)

	ml.LogFetchEvent("fetch_started", zap.String("url", "https://example.com/v"))
	require.NoError(t, ml.loggers[CategoryFetch].Sync())

	path := filepath.Join(dir, "fetch-"+time.Now().Format(dateLayout)+".log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetch_started")
	assert.Contains(t, string(data), "https://example.com/v")
}

func TestMultiLogger_ErrorCategorySeparateFile(t *testing.T) {
	ml, dir := newTestMultiLogger(t)

	ml.LogAppError("pipeline run failed", zap.String("id", "abc"))
	require.NoError(t, ml.loggers[CategoryError].Sync())

	path := filepath.Join(dir, "error-"+time.Now().Format(dateLayout)+".log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pipeline run failed")
}

func TestMultiLogger_RollsOverToNewDate(t *testing.T) {
	ml, dir := newTestMultiLogger(t)

	ml.mu.Lock()
	ml.rotate("20990101")
	ml.mu.Unlock()

	assert.Equal(t, "20990101", ml.date)

	ml.loggers[CategoryFetch].Info("after rollover")
	require.NoError(t, ml.loggers[CategoryFetch].Sync())

	data, err := os.ReadFile(filepath.Join(dir, "fetch-20990101.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "after rollover")
}

func TestMultiLogger_GetLoggerRotatesWhenStale(t *testing.T) {
	ml, dir := newTestMultiLogger(t)

	// Simulate a logger left over from the previous day.
	ml.mu.Lock()
	ml.date = "20000101"
	ml.mu.Unlock()

	ml.LogFetchEvent("next_day_event")

	today := time.Now().Format(dateLayout)
	assert.Equal(t, today, ml.date)

	require.NoError(t, ml.loggers[CategoryFetch].Sync())
	data, err := os.ReadFile(filepath.Join(dir, "fetch-"+today+".log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "next_day_event")
}

func TestMultiLogger_UnknownCategoryFallsBack(t *testing.T) {
	ml, _ := newTestMultiLogger(t)

	logger := ml.GetLogger(LogCategory("bogus"))
	require.NotNil(t, logger)
	assert.Same(t, ml.loggers[CategoryError], logger)
}
