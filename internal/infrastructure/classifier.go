package infrastructure

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/yourusername/media-relay-go/internal/domain"
)

// sniffLimit bounds how much of a file is read for content detection.
const sniffLimit = 8192

// DetectMediaKind classifies a file as video, image or unknown. Extension
// lookup wins; files with an unrecognized extension fall through to content
// sniffing of the leading bytes. Unreadable or unrecognized files degrade to
// MediaUnknown; this function never fails.
func DetectMediaKind(path string) domain.MediaKind {
	if kind := kindByExtension(path); kind != domain.MediaUnknown {
		return kind
	}
	return kindByContent(path)
}

// DetectMediaKindAsync runs DetectMediaKind on its own goroutine and delivers
// the result on the returned channel, so callers already fanning out work do
// not stall on the file read.
func DetectMediaKindAsync(path string) <-chan domain.MediaKind {
	ch := make(chan domain.MediaKind, 1)
	go func() {
		ch <- DetectMediaKind(path)
	}()
	return ch
}

func kindByExtension(path string) domain.MediaKind {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return domain.MediaUnknown
	}
	if domain.IsVideoExtension(ext) {
		return domain.MediaVideo
	}
	if domain.IsImageExtension(ext) {
		return domain.MediaImage
	}
	return domain.MediaUnknown
}

func kindByContent(path string) domain.MediaKind {
	f, err := os.Open(path)
	if err != nil {
		return domain.MediaUnknown
	}
	defer f.Close()

	buf := make([]byte, sniffLimit)
	n, err := io.ReadFull(f, buf)
	if n == 0 || (err != nil && err != io.ErrUnexpectedEOF) {
		return domain.MediaUnknown
	}

	mt := mimetype.Detect(buf[:n])
	switch {
	case strings.HasPrefix(mt.String(), "video/"):
		return domain.MediaVideo
	case strings.HasPrefix(mt.String(), "image/"):
		return domain.MediaImage
	default:
		return domain.MediaUnknown
	}
}
