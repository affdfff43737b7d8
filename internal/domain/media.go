package domain

import "strings"

// MediaKind classifies a fetched file for delivery purposes
type MediaKind int

const (
	MediaUnknown MediaKind = iota
	MediaVideo
	MediaImage
)

// String returns the lowercase label used in logs and history records
func (k MediaKind) String() string {
	switch k {
	case MediaVideo:
		return "video"
	case MediaImage:
		return "image"
	default:
		return "unknown"
	}
}

// VideoExtensions lists extensions that are treated as video without sniffing
var VideoExtensions = []string{"mp4", "webm", "mov", "mkv", "avi"}

// ImageExtensions lists extensions that are treated as image without sniffing
var ImageExtensions = []string{"jpg", "jpeg", "png", "webp"}

// ForbiddenExtensions lists sidecar files fetch tools also emit (metadata,
// logs) that must never be considered media
var ForbiddenExtensions = []string{"json", "txt", "log"}

// IsVideoExtension reports whether ext (without dot) is a known video extension
func IsVideoExtension(ext string) bool {
	return containsFold(VideoExtensions, ext)
}

// IsImageExtension reports whether ext (without dot) is a known image extension
func IsImageExtension(ext string) bool {
	return containsFold(ImageExtensions, ext)
}

// IsForbiddenExtension reports whether ext (without dot) is a known sidecar extension
func IsForbiddenExtension(ext string) bool {
	return containsFold(ForbiddenExtensions, ext)
}

func containsFold(set []string, ext string) bool {
	for _, e := range set {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
