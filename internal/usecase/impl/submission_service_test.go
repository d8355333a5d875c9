package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	mockRepo "vouch/internal/mocks/repository"
	mockService "vouch/internal/mocks/service"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type submissionServiceFixtures struct {
	service     usecase.SubmissionUsecase
	companyRepo *mockRepo.MockCompanyRepository
	reviewRepo  *mockRepo.MockReviewRepository
	mailer      *mockService.MockMailer
}

func createTestSubmissionService(t *testing.T) submissionServiceFixtures {
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	mailer := mockService.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSubmissionService(SubmissionServiceParams{
		CompanyRepo: companyRepo,
		ReviewRepo:  reviewRepo,
		Mailer:      mailer,
		Logger:      logger,
	})

	return submissionServiceFixtures{
		service:     svc,
		companyRepo: companyRepo,
		reviewRepo:  reviewRepo,
		mailer:      mailer,
	}
}

func TestSubmissionService_SubmitReview_ForcesPending(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Acme Dental", ContactEmail: "owner@acme.example"}

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(review *entity.Review) bool {
			return review.Status == entity.StatusPending && !review.IsFeatured
		})).
		Return(nil)
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.Message")).Return(nil)

	review, err := fx.service.SubmitReview(ctx, &usecase.SubmitReviewInput{
		CompanyID:     companyID,
		ReviewerName:  "Dana",
		ReviewerEmail: "dana@example.com",
		Rating:        5,
		Comment:       "Wonderful experience",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, review.Status)
	assert.False(t, review.IsFeatured)
	require.NotNil(t, review.Rating)
	assert.Equal(t, 5, *review.Rating)
}

func TestSubmissionService_SubmitReview_CompanyNotFound(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(nil, repository.ErrCompanyNotFound)

	review, err := fx.service.SubmitReview(ctx, &usecase.SubmitReviewInput{
		CompanyID:     companyID,
		ReviewerName:  "Dana",
		ReviewerEmail: "dana@example.com",
		Rating:        5,
		Comment:       "Wonderful experience",
	})
	require.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrCompanyNotFound))
}

func TestSubmissionService_SubmitReview_MailFailureDoesNotFailSubmission(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Acme Dental", ContactEmail: "owner@acme.example"}

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.Message")).Return(errors.New("smtp down"))

	review, err := fx.service.SubmitReview(ctx, &usecase.SubmitReviewInput{
		CompanyID:     companyID,
		ReviewerName:  "Dana",
		ReviewerEmail: "dana@example.com",
		Rating:        4,
		Comment:       "Pretty good",
	})
	require.NoError(t, err)
	assert.NotNil(t, review)
}

func TestSubmissionService_SubmitReview_NoMailerConfigured(t *testing.T) {
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSubmissionService(SubmissionServiceParams{
		CompanyRepo: companyRepo,
		ReviewRepo:  reviewRepo,
		Mailer:      nil,
		Logger:      logger,
	})

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Acme Dental", ContactEmail: "owner@acme.example"}

	companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	review, err := svc.SubmitReview(ctx, &usecase.SubmitReviewInput{
		CompanyID:     companyID,
		ReviewerName:  "Dana",
		ReviewerEmail: "dana@example.com",
		Rating:        3,
		Comment:       "Okay",
	})
	require.NoError(t, err)
	assert.NotNil(t, review)
}
