package usecase

import (
	"context"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// VideoUsecase defines the interface for video-related business operations.
type VideoUsecase interface {
	// CreateVideo registers a company-owned video. It always starts pending
	// and unfeatured.
	CreateVideo(ctx context.Context, companyID uuid.UUID, input *CreateVideoInput) (*entity.Video, error)

	// ListVideos returns the unified video listing: company videos plus
	// reviews carrying their own video URL, tagged by provenance and merged
	// in creation-descending order.
	ListVideos(ctx context.Context, companyID uuid.UUID) ([]*entity.VideoListing, error)

	// SetVideoStatus moderates a company video. Missing rows and rows owned
	// by another company are both reported as not found.
	SetVideoStatus(ctx context.Context, companyID, videoID uuid.UUID, status entity.ModerationStatus) error

	// SetVideoFeatured toggles the featured flag, independently of status.
	SetVideoFeatured(ctx context.Context, companyID, videoID uuid.UUID, featured bool) error

	// RecordView increments a video's view counter. Public, unauthenticated.
	RecordView(ctx context.Context, videoID uuid.UUID) error
}

// --- Input DTOs ---

// CreateVideoInput defines the data required to register a video.
type CreateVideoInput struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description,omitempty"`
	VideoURL     string `json:"video_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Duration     *int   `json:"duration,omitempty" validate:"omitempty,min=0"`
}
