// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import "context"

// ReviewPrompt is the structured input to the generative review assistant.
type ReviewPrompt struct {
	CompanyName string   `json:"company_name"`
	Keywords    []string `json:"keywords"`
	Emotions    []string `json:"emotions"`
	ServiceType string   `json:"service_type"`
}

// ReviewGenerator produces a short first-person review paragraph from a
// structured prompt. The call is stateless and safe to retry; nothing is
// persisted until the caller explicitly submits the resulting text.
type ReviewGenerator interface {
	// GenerateReview delegates to the external text-generation provider.
	// A provider failure must surface as an error, never as empty text.
	GenerateReview(ctx context.Context, prompt *ReviewPrompt) (string, error)
}
