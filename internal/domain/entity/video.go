// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is a company-owned testimonial video.
type Video struct {
	ID           uuid.UUID        `json:"id"`
	CompanyID    uuid.UUID        `json:"company_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	VideoURL     string           `json:"video_url"`
	ThumbnailURL string           `json:"thumbnail_url,omitempty"`
	Duration     *int             `json:"duration,omitempty"` // Seconds, non-negative when present.
	ViewCount    int64            `json:"view_count"`         // Monotonically non-decreasing.
	Status       ModerationStatus `json:"status"`
	Featured     bool             `json:"featured"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// NewVideo is the single construction path for videos. Status defaulting
// lives here so no call site can skip it: every new video starts pending and
// unfeatured, with a zero view counter.
func NewVideo(companyID uuid.UUID, title, videoURL, description, thumbnailURL string, duration *int) *Video {
	now := time.Now()

	return &Video{
		ID:           uuid.New(),
		CompanyID:    companyID,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Duration:     duration,
		ViewCount:    0,
		Status:       StatusPending,
		Featured:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
