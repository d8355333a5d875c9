package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vouch/config"
	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	mockRepo "vouch/internal/mocks/repository"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widgetServiceFixtures struct {
	service     usecase.WidgetUsecase
	companyRepo *mockRepo.MockCompanyRepository
	reviewRepo  *mockRepo.MockReviewRepository
}

func createTestWidgetService(t *testing.T, defaultLimit int) widgetServiceFixtures {
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Widget = &config.WidgetConfig{DefaultLimit: defaultLimit}

	service := NewWidgetService(WidgetServiceParams{
		CompanyRepo: companyRepo,
		ReviewRepo:  reviewRepo,
		Config:      cfg,
		Logger:      logger,
	})

	return widgetServiceFixtures{
		service:     service,
		companyRepo: companyRepo,
		reviewRepo:  reviewRepo,
	}
}

func ratedReview(companyID uuid.UUID, status entity.ModerationStatus, featured bool, rating int) *entity.Review {
	return &entity.Review{
		ID:            uuid.New(),
		CompanyID:     companyID,
		ReviewerName:  "Reviewer",
		ReviewerEmail: "private@example.com",
		Rating:        &rating,
		Comment:       "Comment",
		Status:        status,
		IsFeatured:    featured,
	}
}

func TestWidgetService_Widget_FiltersToApproved(t *testing.T) {
	fx := createTestWidgetService(t, 0)

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Acme Dental"}

	reviews := []*entity.Review{
		ratedReview(companyID, entity.StatusApproved, false, 5),
		ratedReview(companyID, entity.StatusPending, false, 1),
		ratedReview(companyID, entity.StatusRejected, true, 1),
		ratedReview(companyID, entity.StatusApproved, true, 3),
	}

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	fx.reviewRepo.EXPECT().FindByCompany(ctx, companyID).Return(reviews, nil)

	view, err := fx.service.Widget(ctx, companyID, nil)
	require.NoError(t, err)
	assert.Len(t, view.Reviews, 2)
	assert.Equal(t, 2, view.ReviewCount)
	assert.InDelta(t, 4.0, view.AverageRating, 0.001)
}

func TestWidgetService_Widget_FeaturedOnly(t *testing.T) {
	fx := createTestWidgetService(t, 0)

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Acme Dental"}

	reviews := []*entity.Review{
		ratedReview(companyID, entity.StatusApproved, false, 5),
		ratedReview(companyID, entity.StatusApproved, true, 3),
		// Featured but rejected never leaks onto a public surface.
		ratedReview(companyID, entity.StatusRejected, true, 1),
	}

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	fx.reviewRepo.EXPECT().FindByCompany(ctx, companyID).Return(reviews, nil)

	view, err := fx.service.Widget(ctx, companyID, &usecase.WidgetOptions{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, view.Reviews, 1)
	assert.Equal(t, 1, view.ReviewCount)
	assert.InDelta(t, 3.0, view.AverageRating, 0.001)
	assert.True(t, view.Reviews[0].IsFeatured)
}

func TestWidgetService_Widget_AggregatesComputedBeforeLimit(t *testing.T) {
	fx := createTestWidgetService(t, 0)

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Acme Dental"}

	reviews := []*entity.Review{
		ratedReview(companyID, entity.StatusApproved, false, 5),
		ratedReview(companyID, entity.StatusApproved, false, 4),
		ratedReview(companyID, entity.StatusApproved, false, 3),
	}

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	fx.reviewRepo.EXPECT().FindByCompany(ctx, companyID).Return(reviews, nil)

	view, err := fx.service.Widget(ctx, companyID, &usecase.WidgetOptions{Limit: 1})
	require.NoError(t, err)

	// One review rendered, but count and average describe all three.
	assert.Len(t, view.Reviews, 1)
	assert.Equal(t, 3, view.ReviewCount)
	assert.InDelta(t, 4.0, view.AverageRating, 0.001)
}

func TestWidgetService_Widget_DefaultLimitFromConfig(t *testing.T) {
	fx := createTestWidgetService(t, 2)

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Acme Dental"}

	reviews := []*entity.Review{
		ratedReview(companyID, entity.StatusApproved, false, 5),
		ratedReview(companyID, entity.StatusApproved, false, 4),
		ratedReview(companyID, entity.StatusApproved, false, 3),
	}

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	fx.reviewRepo.EXPECT().FindByCompany(ctx, companyID).Return(reviews, nil)

	view, err := fx.service.Widget(ctx, companyID, &usecase.WidgetOptions{})
	require.NoError(t, err)
	assert.Len(t, view.Reviews, 2)
	assert.Equal(t, 3, view.ReviewCount)
}

func TestWidgetService_Widget_UnratedReviewsCountWithoutSkewingAverage(t *testing.T) {
	fx := createTestWidgetService(t, 0)

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "Acme Dental"}

	unrated := &entity.Review{
		ID:        uuid.New(),
		CompanyID: companyID,
		Comment:   "No stars given",
		Status:    entity.StatusApproved,
	}
	reviews := []*entity.Review{
		ratedReview(companyID, entity.StatusApproved, false, 4),
		unrated,
	}

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	fx.reviewRepo.EXPECT().FindByCompany(ctx, companyID).Return(reviews, nil)

	view, err := fx.service.Widget(ctx, companyID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, view.ReviewCount)
	assert.InDelta(t, 4.0, view.AverageRating, 0.001)
}

func TestWidgetService_Widget_CompanyNotFound(t *testing.T) {
	fx := createTestWidgetService(t, 0)

	ctx := context.Background()
	companyID := uuid.New()

	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(nil, repository.ErrCompanyNotFound)

	view, err := fx.service.Widget(ctx, companyID, nil)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrCompanyNotFound))
}
