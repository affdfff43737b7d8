package domain

import "os"

// DownloadResult pairs a fetch workspace with the media candidates found in
// it. Every path in Files lies inside Dir. The workspace must stay on disk
// until the winning file has been sent; whoever consumes the result owns the
// workspace and must call Cleanup on every exit path.
type DownloadResult struct {
	Dir   string
	Files []string
}

// Cleanup removes the workspace directory and everything in it. Safe to call
// more than once.
func (r *DownloadResult) Cleanup() error {
	if r.Dir == "" {
		return nil
	}
	dir := r.Dir
	r.Dir = ""
	r.Files = nil
	return os.RemoveAll(dir)
}
