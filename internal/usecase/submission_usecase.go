package usecase

import (
	"context"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmissionUsecase is the public, unauthenticated review intake.
type SubmissionUsecase interface {
	// SubmitReview stores a customer-submitted review. The stored row is
	// always pending and unfeatured regardless of the payload, and the
	// company contact is notified best-effort.
	SubmitReview(ctx context.Context, input *SubmitReviewInput) (*entity.Review, error)
}

// SubmitReviewInput defines the public submission payload. The rating range
// and email syntax are enforced here at the gateway.
type SubmitReviewInput struct {
	CompanyID      uuid.UUID  `json:"company_id" validate:"required"`
	VideoID        *uuid.UUID `json:"video_id,omitempty"`
	ReviewerName   string     `json:"reviewer_name" validate:"required"`
	ReviewerEmail  string     `json:"reviewer_email" validate:"required,email"`
	ReviewerAvatar string     `json:"reviewer_avatar,omitempty" validate:"omitempty,url"`
	Rating         int        `json:"rating" validate:"required,min=1,max=5"`
	Comment        string     `json:"comment" validate:"required"`
	VideoURL       string     `json:"video_url,omitempty" validate:"omitempty,url"`
}
