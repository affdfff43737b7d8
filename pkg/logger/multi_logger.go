package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogCategory represents different event log categories
type LogCategory string

const (
	CategoryFetch LogCategory = "fetch" // Pipeline lifecycle events (JSON)
	CategoryError LogCategory = "error" // Application errors (JSON)
)

const dateLayout = "20060102"

// MultiLogger writes categorized JSON event logs to dated files, one file per
// category per day. The date in the filename is re-evaluated on every write
// so a long-running process rolls over to the new day's files. Raw fetch-tool
// output never goes through it; the pipeline captures that separately as part
// of error payloads.
type MultiLogger struct {
	loggers map[LogCategory]*zap.Logger
	files   map[LogCategory]*os.File
	config  MultiLoggerConfig
	level   zapcore.Level
	date    string
	mu      sync.RWMutex
}

// MultiLoggerConfig contains configuration for categorized event logging
type MultiLoggerConfig struct {
	Level   string // debug, info, warn, error
	LogsDir string // Directory for log files
}

// NewMultiLogger creates a new categorized event logger
func NewMultiLogger(config MultiLoggerConfig) (*MultiLogger, error) {
	if config.LogsDir == "" {
		return nil, fmt.Errorf("logs_dir must be specified")
	}

	if err := os.MkdirAll(config.LogsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	ml := &MultiLogger{
		config: config,
		level:  level,
	}

	date := time.Now().Format(dateLayout)
	loggers, files, err := ml.open(date)
	if err != nil {
		return nil, err
	}
	ml.loggers = loggers
	ml.files = files
	ml.date = date

	return ml, nil
}

// open creates the per-category loggers for one date without touching the
// receiver's current state.
func (ml *MultiLogger) open(date string) (map[LogCategory]*zap.Logger, map[LogCategory]*os.File, error) {
	categories := []struct {
		category LogCategory
		level    zapcore.Level
	}{
		{CategoryFetch, ml.level},
		{CategoryError, zapcore.ErrorLevel},
	}

	loggers := make(map[LogCategory]*zap.Logger, len(categories))
	files := make(map[LogCategory]*os.File, len(categories))

	for _, c := range categories {
		logger, file, err := ml.createStructuredLogger(c.category, date, c.level)
		if err != nil {
			for _, f := range files {
				f.Close()
			}
			return nil, nil, fmt.Errorf("failed to create %s logger: %w", c.category, err)
		}
		loggers[c.category] = logger
		files[c.category] = file
	}

	return loggers, files, nil
}

// createStructuredLogger creates a JSON-formatted logger for a category
func (ml *MultiLogger) createStructuredLogger(category LogCategory, date string, level zapcore.Level) (*zap.Logger, *os.File, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "msg"
	encoderConfig.LevelKey = "level"
	encoderConfig.CallerKey = ""

	encoder := zapcore.NewJSONEncoder(encoderConfig)

	file, err := os.OpenFile(ml.categoryLogPath(category, date), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(file), level)
	return zap.New(core), file, nil
}

// categoryLogPath generates a log file path for a category and date
func (ml *MultiLogger) categoryLogPath(category LogCategory, date string) string {
	filename := fmt.Sprintf("%s-%s.log", category, date)
	return filepath.Join(ml.config.LogsDir, filename)
}

// GetLogger returns the structured logger for a specific category, rolling
// over to the current day's files first when the date has changed.
func (ml *MultiLogger) GetLogger(category LogCategory) *zap.Logger {
	today := time.Now().Format(dateLayout)

	ml.mu.RLock()
	if ml.date == today {
		logger := ml.lookup(category)
		ml.mu.RUnlock()
		return logger
	}
	ml.mu.RUnlock()

	ml.mu.Lock()
	defer ml.mu.Unlock()
	if ml.date != today {
		ml.rotate(today)
	}
	return ml.lookup(category)
}

// lookup must be called with the mutex held
func (ml *MultiLogger) lookup(category LogCategory) *zap.Logger {
	if logger, ok := ml.loggers[category]; ok {
		return logger
	}
	return ml.loggers[CategoryError]
}

// rotate swaps in the given date's files. The new files are opened before the
// old ones are closed; when opening fails the old day's files stay in use.
// Must be called with the mutex held.
func (ml *MultiLogger) rotate(date string) {
	loggers, files, err := ml.open(date)
	if err != nil {
		return
	}

	for _, logger := range ml.loggers {
		logger.Sync()
	}
	for _, file := range ml.files {
		file.Close()
	}

	ml.loggers = loggers
	ml.files = files
	ml.date = date
}

// LogFetchEvent logs a pipeline lifecycle event with structured data
func (ml *MultiLogger) LogFetchEvent(event string, fields ...zap.Field) {
	ml.GetLogger(CategoryFetch).Info(event, fields...)
}

// LogAppError logs an application-level error (Go errors, panics)
func (ml *MultiLogger) LogAppError(msg string, fields ...zap.Field) {
	ml.GetLogger(CategoryError).Error(msg, fields...)
}

// Close flushes all loggers and closes their files
func (ml *MultiLogger) Close() error {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	var lastErr error
	for _, logger := range ml.loggers {
		if err := logger.Sync(); err != nil {
			lastErr = err
		}
	}
	for _, file := range ml.files {
		if err := file.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
