package domain

import (
	"time"

	"github.com/google/uuid"
)

// FetchStatus represents the current status of a fetch
type FetchStatus string

const (
	StatusProcessing FetchStatus = "processing"
	StatusCompleted  FetchStatus = "completed"
	StatusFailed     FetchStatus = "failed"
)

// Platform represents the source platform for fetches
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
)

// FetchRecord is the history row written for every pipeline run. It is
// observational only: the pipeline never reads history back to dedup, cache
// or retry.
type FetchRecord struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	URL          string      `json:"url" gorm:"not null"`
	Platform     Platform    `json:"platform" gorm:"not null;index"`
	Status       FetchStatus `json:"status" gorm:"not null;index"`
	MediaKind    string      `json:"media_kind,omitempty"`
	FileName     string      `json:"file_name,omitempty"`
	ErrorMessage string      `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
}

// NewFetchRecord creates a record in the processing state
func NewFetchRecord(url string, platform Platform) *FetchRecord {
	now := time.Now()
	return &FetchRecord{
		ID:        uuid.New().String(),
		URL:       url,
		Platform:  platform,
		Status:    StatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkCompleted marks the fetch as completed with the delivered file
func (f *FetchRecord) MarkCompleted(fileName string, kind MediaKind) {
	f.Status = StatusCompleted
	f.FileName = fileName
	f.MediaKind = kind.String()
	now := time.Now()
	f.CompletedAt = &now
	f.UpdatedAt = now
}

// MarkFailed marks the fetch as failed
func (f *FetchRecord) MarkFailed(err error) {
	f.Status = StatusFailed
	if err != nil {
		f.ErrorMessage = err.Error()
	}
	now := time.Now()
	f.CompletedAt = &now
	f.UpdatedAt = now
}

// IsTerminal checks if the fetch reached a final state
func (f *FetchRecord) IsTerminal() bool {
	return f.Status == StatusCompleted || f.Status == StatusFailed
}

// FetchStats summarizes the history table
type FetchStats struct {
	Total      int64 `json:"total"`
	Processing int64 `json:"processing"`
	Completed  int64 `json:"completed"`
	Failed     int64 `json:"failed"`
}
