package domain

import (
	"context"
	"regexp"
)

// FetchFunc fetches media for a matched URL or identifier and returns the
// workspace with candidate files. Implementations wrap an external fetch
// executable invocation.
type FetchFunc func(ctx context.Context, target string) (*DownloadResult, error)

// Handler pairs a URL-recognition pattern with the fetch function for one
// platform. Handlers are built once at startup and never mutated.
type Handler struct {
	// Name identifies the platform, for logging and history records.
	Name string

	// Pattern recognizes this platform's URLs inside arbitrary message text.
	Pattern *regexp.Regexp

	// Group selects which capture group is handed to Fetch. Group 0 passes
	// the whole match (tools that parse the URL themselves); a positive
	// group passes just the identifying code.
	Group int

	Fetch FetchFunc
}

// TryExtract returns the target string for this handler if text matches.
func (h Handler) TryExtract(text string) (string, bool) {
	m := h.Pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if h.Group > 0 && h.Group < len(m) {
		return m[h.Group], true
	}
	return m[0], true
}

// Registry is an ordered, read-only collection of handlers. It is safe for
// concurrent reads.
type Registry []Handler

// Dispatch scans handlers in registration order and returns the first one
// whose pattern matches, together with the extracted target. A message
// matching several patterns is routed to exactly one handler.
func (r Registry) Dispatch(text string) (Handler, string, bool) {
	for _, h := range r {
		if target, ok := h.TryExtract(text); ok {
			return h, target, true
		}
	}
	return Handler{}, "", false
}
