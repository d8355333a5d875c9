// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"vouch/internal/domain/entity"
	"vouch/internal/errors"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video is not found.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository defines the interface for video-related database operations.
type VideoRepository interface {
	// Create persists a new video.
	Create(ctx context.Context, video *entity.Video) error

	// FindByID retrieves a video by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// FindByCompany retrieves all videos belonging to a company in
	// creation-descending order.
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Video, error)

	// UpdateStatus sets the moderation status of a video.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ModerationStatus) error

	// UpdateFeatured sets the featured flag of a video.
	UpdateFeatured(ctx context.Context, id uuid.UUID, featured bool) error

	// IncrementViewCount adds one to the video's view counter. The counter
	// never decreases.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// Note: videos are never deleted through any exposed action.
}
