package domain

import (
	"errors"
	"fmt"
)

// ErrNoMediaFound indicates the fetch tool succeeded but produced no usable media
var ErrNoMediaFound = errors.New("no media found")

// ErrUnknownMediaKind indicates a file could not be resolved to video or image
var ErrUnknownMediaKind = errors.New("unknown media kind")

// ErrUnsupportedURL indicates no registered handler matched the message text
var ErrUnsupportedURL = errors.New("unsupported URL")

// FetchToolError represents a non-zero exit from an external fetch executable.
// Stderr carries the tool's trimmed diagnostic output so operators can tell
// platform errors (rate limits, auth) apart from invocation errors.
type FetchToolError struct {
	Tool   string
	Stderr string
}

// NewFetchToolError creates a FetchToolError for the given tool
func NewFetchToolError(tool, stderr string) *FetchToolError {
	return &FetchToolError{Tool: tool, Stderr: stderr}
}

func (e *FetchToolError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s failed", e.Tool)
	}
	return fmt.Sprintf("%s failed: %s", e.Tool, e.Stderr)
}
