package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

type videoServiceFixtures struct {
	service    usecase.VideoUsecase
	videoRepo  *mockRepo.MockVideoRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestVideoService(t *testing.T) videoServiceFixtures {
	videoRepo := mockRepo.NewMockVideoRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewVideoService(VideoServiceParams{
		VideoRepo:  videoRepo,
		ReviewRepo: reviewRepo,
		Logger:     logger,
	})

	return videoServiceFixtures{
		service:    service,
		videoRepo:  videoRepo,
		reviewRepo: reviewRepo,
	}
}

func TestVideoService_CreateVideo_StartsPending(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.videoRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Video")).Return(nil)

	video, err := fx.service.CreateVideo(ctx, companyID, &usecase.CreateVideoInput{
		Title:    "Lobby tour",
		VideoURL: "https://cdn.example.com/lobby.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, video.Status)
	assert.False(t, video.Featured)
	assert.Zero(t, video.ViewCount)
	assert.Equal(t, companyID, video.CompanyID)
}

func TestVideoService_ListVideos_MergesSourcesNewestFirst(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	companyID := uuid.New()
	now := time.Now()

	companyVideo := &entity.Video{
		ID:        uuid.New(),
		CompanyID: companyID,
		Title:     "Office walkthrough",
		VideoURL:  "https://cdn.example.com/office.mp4",
		CreatedAt: now.Add(-2 * time.Hour),
	}
	rating := 5
	customerReview := &entity.Review{
		ID:           uuid.New(),
		CompanyID:    companyID,
		ReviewerName: "Dana",
		Rating:       &rating,
		VideoURL:     "https://cdn.example.com/dana.webm",
		CreatedAt:    now.Add(-1 * time.Hour),
	}

	fx.videoRepo.EXPECT().FindByCompany(ctx, companyID).Return([]*entity.Video{companyVideo}, nil)
	fx.reviewRepo.EXPECT().FindWithVideoByCompany(ctx, companyID).Return([]*entity.Review{customerReview}, nil)

	listings, err := fx.service.ListVideos(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	// Newest first: the customer review is more recent.
	assert.Equal(t, entity.SourceCustomer, listings[0].Source)
	assert.Equal(t, customerReview.ID, listings[0].ID)
	assert.Equal(t, "Dana", listings[0].ReviewerName)
	assert.Equal(t, entity.SourceCompany, listings[1].Source)
	assert.Equal(t, companyVideo.ID, listings[1].ID)
}

func TestVideoService_SetVideoStatus_Success(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	companyID := uuid.New()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID, CompanyID: companyID}, nil)
	fx.videoRepo.EXPECT().UpdateStatus(ctx, videoID, entity.StatusApproved).Return(nil)

	err := fx.service.SetVideoStatus(ctx, companyID, videoID, entity.StatusApproved)
	require.NoError(t, err)
}

func TestVideoService_SetVideoStatus_InvalidStatus(t *testing.T) {
	fx := createTestVideoService(t)

	err := fx.service.SetVideoStatus(context.Background(), uuid.New(), uuid.New(), entity.ModerationStatus("published"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestVideoService_SetVideoStatus_CrossTenantLooksLikeMissing(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()
	otherCompany := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID, CompanyID: otherCompany}, nil)

	err := fx.service.SetVideoStatus(ctx, uuid.New(), videoID, entity.StatusRejected)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestVideoService_SetVideoFeatured_CrossTenantLooksLikeMissing(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	err := fx.service.SetVideoFeatured(ctx, uuid.New(), videoID, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestVideoService_RecordView_Success(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().IncrementViewCount(ctx, videoID).Return(nil)

	err := fx.service.RecordView(ctx, videoID)
	require.NoError(t, err)
}

func TestVideoService_RecordView_NotFound(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().IncrementViewCount(ctx, videoID).Return(repository.ErrVideoNotFound)

	err := fx.service.RecordView(ctx, videoID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}
