package impl

import (
	"context"
	"log/slog"

	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/service"
	"vouch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type assistantService struct {
	generator service.ReviewGenerator
	logger    *slog.Logger
}

// AssistantServiceParams holds dependencies for AssistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	Generator service.ReviewGenerator
	Logger    *slog.Logger
}

// NewAssistantService creates the review drafting service.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		generator: params.Generator,
		logger:    params.Logger,
	}
}

// GenerateReview produces a draft review. Nothing is persisted; provider
// failures surface as a retryable upstream error with a readable message.
func (s *assistantService) GenerateReview(ctx context.Context, input *usecase.GenerateReviewInput) (string, error) {
	prompt := &service.ReviewPrompt{
		CompanyName: input.CompanyName,
		Keywords:    input.Keywords,
		Emotions:    input.Emotions,
		ServiceType: input.ServiceType,
	}

	draft, err := s.generator.GenerateReview(ctx, prompt)
	if err != nil {
		s.logger.Warn("Review generation failed", "company", input.CompanyName, "error", err)

		return "", errors.Wrap(domainerrors.ErrAssistantUnavailable, err.Error())
	}

	return draft, nil
}
