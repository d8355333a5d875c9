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
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	reviewRepo *mockRepo.MockReviewRepository
	videoRepo  *mockRepo.MockVideoRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewReviewService(ReviewServiceParams{
		ReviewRepo: reviewRepo,
		VideoRepo:  videoRepo,
		Logger:     logger,
	})

	return reviewServiceFixtures{
		service:    service,
		reviewRepo: reviewRepo,
		videoRepo:  videoRepo,
	}
}

func TestReviewService_CreateReview_StartsPendingUnfeatured(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	companyID := uuid.New()
	rating := 4

	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	review, err := fx.service.CreateReview(ctx, companyID, &usecase.CreateReviewInput{
		ReviewerName:  "Alex",
		ReviewerEmail: "alex@example.com",
		Rating:        &rating,
		Comment:       "Great service",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, review.Status)
	assert.False(t, review.IsFeatured)
	assert.Equal(t, companyID, review.CompanyID)
}

func TestReviewService_SetReviewStatus_Reapply(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	companyID := uuid.New()
	reviewID := uuid.New()

	// Re-applying the current status is a plain overwrite, not an error.
	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, CompanyID: companyID, Status: entity.StatusApproved}, nil)
	fx.reviewRepo.EXPECT().UpdateStatus(ctx, reviewID, entity.StatusApproved).Return(nil)

	err := fx.service.SetReviewStatus(ctx, companyID, reviewID, entity.StatusApproved)
	require.NoError(t, err)
}

func TestReviewService_SetReviewStatus_CrossTenantLooksLikeMissing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, CompanyID: uuid.New()}, nil)

	err := fx.service.SetReviewStatus(ctx, uuid.New(), reviewID, entity.StatusRejected)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_SetReviewFeatured_IndependentOfStatus(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	companyID := uuid.New()
	reviewID := uuid.New()

	// Featuring a still-pending review is allowed; public visibility is
	// decided by the widget filter.
	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, CompanyID: companyID, Status: entity.StatusPending}, nil)
	fx.reviewRepo.EXPECT().UpdateFeatured(ctx, reviewID, true).Return(nil)

	err := fx.service.SetReviewFeatured(ctx, companyID, reviewID, true)
	require.NoError(t, err)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	companyID := uuid.New()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, CompanyID: companyID}, nil)
	fx.reviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)

	err := fx.service.DeleteReview(ctx, companyID, reviewID)
	require.NoError(t, err)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)

	err := fx.service.DeleteReview(ctx, uuid.New(), reviewID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_Stats_CountsByStatusAndFeature(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	companyID := uuid.New()

	reviews := []*entity.Review{
		{Status: entity.StatusApproved, IsFeatured: true},
		{Status: entity.StatusApproved},
		{Status: entity.StatusPending},
		{Status: entity.StatusRejected, IsFeatured: true},
	}
	videos := []*entity.Video{
		{Status: entity.StatusApproved, Featured: true},
		{Status: entity.StatusPending},
	}

	fx.reviewRepo.EXPECT().FindByCompany(ctx, companyID).Return(reviews, nil)
	fx.videoRepo.EXPECT().FindByCompany(ctx, companyID).Return(videos, nil)

	stats, err := fx.service.Stats(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalReviews)
	assert.Equal(t, 2, stats.ApprovedReviews)
	assert.Equal(t, 1, stats.PendingReviews)
	assert.Equal(t, 2, stats.FeaturedReviews)
	assert.Equal(t, 2, stats.TotalVideos)
	assert.Equal(t, 1, stats.ApprovedVideos)
	assert.Equal(t, 1, stats.PendingVideos)
	assert.Equal(t, 1, stats.FeaturedVideos)
}
