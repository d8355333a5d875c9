package usecase

import (
	"context"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the interface for dashboard review operations.
type ReviewUsecase interface {
	// CreateReview records a review entered manually from the dashboard. It
	// always starts pending and unfeatured.
	CreateReview(ctx context.Context, companyID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// ListReviews returns the company's reviews in creation-descending order.
	ListReviews(ctx context.Context, companyID uuid.UUID) ([]*entity.Review, error)

	// SetReviewStatus moderates a review. Missing rows and rows owned by
	// another company are both reported as not found.
	SetReviewStatus(ctx context.Context, companyID, reviewID uuid.UUID, status entity.ModerationStatus) error

	// SetReviewFeatured toggles the featured flag, independently of status.
	SetReviewFeatured(ctx context.Context, companyID, reviewID uuid.UUID, featured bool) error

	// DeleteReview removes a review permanently.
	DeleteReview(ctx context.Context, companyID, reviewID uuid.UUID) error

	// Stats returns the dashboard counters for the company.
	Stats(ctx context.Context, companyID uuid.UUID) (*DashboardStats, error)
}

// --- Input DTOs ---

// CreateReviewInput defines the data required to record a review manually.
type CreateReviewInput struct {
	VideoID        *uuid.UUID `json:"video_id,omitempty"`
	ReviewerName   string     `json:"reviewer_name" validate:"required"`
	ReviewerEmail  string     `json:"reviewer_email" validate:"required,email"`
	ReviewerAvatar string     `json:"reviewer_avatar,omitempty" validate:"omitempty,url"`
	Rating         *int       `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment        string     `json:"comment" validate:"required"`
	VideoURL       string     `json:"video_url,omitempty" validate:"omitempty,url"`
}

// DashboardStats aggregates the moderation counters shown on the dashboard.
type DashboardStats struct {
	TotalReviews    int `json:"total_reviews"`
	ApprovedReviews int `json:"approved_reviews"`
	PendingReviews  int `json:"pending_reviews"`
	FeaturedReviews int `json:"featured_reviews"`
	TotalVideos     int `json:"total_videos"`
	ApprovedVideos  int `json:"approved_videos"`
	PendingVideos   int `json:"pending_videos"`
	FeaturedVideos  int `json:"featured_videos"`
}
