package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/service"
	mockService "vouch/internal/mocks/service"
	"vouch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assistantServiceFixtures struct {
	service   usecase.AssistantUsecase
	generator *mockService.MockReviewGenerator
}

func createTestAssistantService(t *testing.T) assistantServiceFixtures {
	generator := mockService.NewMockReviewGenerator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAssistantService(AssistantServiceParams{
		Generator: generator,
		Logger:    logger,
	})

	return assistantServiceFixtures{
		service:   svc,
		generator: generator,
	}
}

func TestAssistantService_GenerateReview_Success(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()
	input := &usecase.GenerateReviewInput{
		CompanyName: "Acme Dental",
		Keywords:    []string{"friendly", "fast"},
		Emotions:    []string{"relieved"},
		ServiceType: "dental care",
	}

	fx.generator.EXPECT().
		GenerateReview(ctx, &service.ReviewPrompt{
			CompanyName: "Acme Dental",
			Keywords:    []string{"friendly", "fast"},
			Emotions:    []string{"relieved"},
			ServiceType: "dental care",
		}).
		Return("The staff at Acme Dental were friendly and fast.", nil)

	draft, err := fx.service.GenerateReview(ctx, input)
	require.NoError(t, err)
	assert.Contains(t, draft, "Acme Dental")
}

func TestAssistantService_GenerateReview_ProviderFailure(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()
	input := &usecase.GenerateReviewInput{
		CompanyName: "Acme Dental",
		Keywords:    []string{"friendly"},
		Emotions:    []string{"happy"},
		ServiceType: "dental care",
	}

	fx.generator.EXPECT().
		GenerateReview(ctx, &service.ReviewPrompt{
			CompanyName: "Acme Dental",
			Keywords:    []string{"friendly"},
			Emotions:    []string{"happy"},
			ServiceType: "dental care",
		}).
		Return("", errors.New("model not loaded"))

	draft, err := fx.service.GenerateReview(ctx, input)
	require.Error(t, err)
	assert.Empty(t, draft)
	assert.True(t, errors.Is(err, domainerrors.ErrAssistantUnavailable))
}
