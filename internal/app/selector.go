package app

import (
	"context"
	"os"
	"sort"
	"sync"

	"github.com/yourusername/media-relay-go/internal/domain"
	"github.com/yourusername/media-relay-go/internal/infrastructure"
)

// maxClassifyConcurrency bounds the classification fan-out per result set.
const maxClassifyConcurrency = 8

// Candidate pairs a file path with its detected kind during selection
type Candidate struct {
	Path string
	Kind domain.MediaKind
}

// SelectMedia picks exactly one media file out of a download result.
//
// Files are re-checked against the filesystem (the runner's pre-filter was
// name-based and may be stale), classified concurrently with bounded
// parallelism, and anything unknown or unreadable is dropped. The survivors
// are put in a deterministic total order: video before image, then
// lexicographic path within the same kind. That sort is what makes the
// outcome reproducible regardless of the order classification goroutines
// finish in.
func SelectMedia(ctx context.Context, result *domain.DownloadResult) (Candidate, error) {
	if len(result.Files) == 0 {
		return Candidate{}, domain.ErrNoMediaFound
	}

	concurrency := len(result.Files)
	if concurrency > maxClassifyConcurrency {
		concurrency = maxClassifyConcurrency
	}

	sem := make(chan struct{}, concurrency)
	out := make(chan Candidate, len(result.Files))

	var wg sync.WaitGroup
	for _, path := range result.Files {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			// Authoritative metadata check: regular and non-empty.
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() || info.Size() == 0 {
				return
			}

			kind := <-infrastructure.DetectMediaKindAsync(path)
			if kind == domain.MediaUnknown {
				return
			}
			out <- Candidate{Path: path, Kind: kind}
		}(path)
	}

	wg.Wait()
	close(out)

	candidates := make([]Candidate, 0, len(result.Files))
	for c := range out {
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		return Candidate{}, domain.ErrNoMediaFound
	}

	sort.Slice(candidates, func(i, j int) bool {
		ri, rj := kindRank(candidates[i].Kind), kindRank(candidates[j].Kind)
		if ri != rj {
			return ri < rj
		}
		return candidates[i].Path < candidates[j].Path
	})

	return candidates[0], nil
}

// kindRank orders kinds by delivery preference: video outranks image
// outranks anything else.
func kindRank(k domain.MediaKind) int {
	switch k {
	case domain.MediaVideo:
		return 0
	case domain.MediaImage:
		return 1
	default:
		return 2
	}
}
