package usecase

import "context"

// AssistantUsecase generates review drafts. Stateless; nothing is persisted.
type AssistantUsecase interface {
	// GenerateReview returns a draft review text for the given prompt. The
	// call is retry-safe and never returns empty text without an error.
	GenerateReview(ctx context.Context, input *GenerateReviewInput) (string, error)
}

// GenerateReviewInput defines the assistant prompt payload.
type GenerateReviewInput struct {
	CompanyName string   `json:"company_name" validate:"required"`
	Keywords    []string `json:"keywords" validate:"required,min=1,dive,required"`
	Emotions    []string `json:"emotions" validate:"required,min=1,dive,required"`
	ServiceType string   `json:"service_type" validate:"required"`
}
