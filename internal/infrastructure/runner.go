package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yourusername/media-relay-go/internal/domain"
	"go.uber.org/zap"
)

// CommandRunner executes external fetch executables inside fresh, exclusively
// owned workspace directories and collects the media candidates they produce.
type CommandRunner struct {
	logger *zap.Logger
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(logger *zap.Logger) *CommandRunner {
	return &CommandRunner{logger: logger}
}

// RunInWorkspace runs tool with args in a newly created temporary directory
// used as the process working directory. Stdin is closed, stdout discarded
// and stderr captured. On success the workspace's immediate entries are
// pre-filtered by name and extension, sorted lexicographically and returned
// together with the workspace; ownership of the workspace transfers to the
// caller, which must Cleanup it on every exit path.
//
// A non-zero exit returns *domain.FetchToolError carrying the tool name and
// trimmed stderr. An empty retained set returns domain.ErrNoMediaFound.
func (r *CommandRunner) RunInWorkspace(ctx context.Context, tool string, args []string) (*domain.DownloadResult, error) {
	dir, err := os.MkdirTemp("", "media-relay-")
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	// Note: exec.Command passes args directly to the process, no shell
	// quoting needed. The escaped form is for the log line only.
	r.logger.Debug("Running fetch tool",
		zap.String("workspace", dir),
		zap.String("cmd", ShellEscapeCommand(tool, args...)))

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.RemoveAll(dir)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s interrupted: %w", tool, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, domain.NewFetchToolError(tool, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("failed to run %s: %w", tool, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("failed to scan workspace: %w", err)
	}

	var files []string
	listing := make([]string, 0, len(entries))
	for _, entry := range entries {
		listing = append(listing, entry.Name())
		if !entry.Type().IsRegular() {
			continue
		}
		if !IsPotentialMediaFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		r.logger.Warn("No media files in workspace",
			zap.String("tool", tool),
			zap.Strings("dir_contents", listing))
		os.RemoveAll(dir)
		return nil, domain.ErrNoMediaFound
	}

	sort.Strings(files)

	r.logger.Debug("Collected files from workspace",
		zap.String("tool", tool),
		zap.Int("files", len(files)))

	return &domain.DownloadResult{Dir: dir, Files: files}, nil
}

// IsPotentialMediaFile filters workspace entries by name and extension before
// any classification effort is spent on them. Hidden files, anything carrying
// a metadata marker and known sidecar extensions are rejected.
func IsPotentialMediaFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	if strings.Contains(strings.ToLower(name), "metadata") {
		return false
	}

	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	if domain.IsForbiddenExtension(ext) {
		return false
	}
	return domain.IsVideoExtension(ext) || domain.IsImageExtension(ext)
}
