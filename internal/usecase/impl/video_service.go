package impl

import (
	"context"
	"log/slog"
	"sort"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type videoService struct {
	videoRepo  repository.VideoRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	VideoRepo  repository.VideoRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewVideoService creates a new video service instance.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		videoRepo:  params.VideoRepo,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

// CreateVideo registers a company video through the entity constructor, so
// the pending status and zeroed counters cannot be bypassed.
func (s *videoService) CreateVideo(ctx context.Context, companyID uuid.UUID, input *usecase.CreateVideoInput) (*entity.Video, error) {
	s.logger.Info("Creating video", "companyID", companyID, "title", input.Title)

	video := entity.NewVideo(companyID, input.Title, input.VideoURL, input.Description, input.ThumbnailURL, input.Duration)

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to create video")
	}

	return video, nil
}

// ListVideos merges company videos and customer review videos into the
// unified listing, newest first. Entries keep their source row ids so
// moderation actions stay addressable.
func (s *videoService) ListVideos(ctx context.Context, companyID uuid.UUID) ([]*entity.VideoListing, error) {
	videos, err := s.videoRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list company videos")
	}

	reviews, err := s.reviewRepo.FindWithVideoByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer videos")
	}

	listings := make([]*entity.VideoListing, 0, len(videos)+len(reviews))
	for _, video := range videos {
		listings = append(listings, companyListing(video))
	}
	for _, review := range reviews {
		listings = append(listings, customerListing(review))
	}

	// Both inputs arrive newest-first; the merged view must stay that way.
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})

	return listings, nil
}

// SetVideoStatus moderates a company video after re-validating ownership.
func (s *videoService) SetVideoStatus(ctx context.Context, companyID, videoID uuid.UUID, status entity.ModerationStatus) error {
	if !status.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidStatus, "unknown moderation status")
	}

	if err := s.ownedVideo(ctx, companyID, videoID); err != nil {
		return err
	}

	if err := s.videoRepo.UpdateStatus(ctx, videoID, status); err != nil {
		return errors.Wrap(err, "failed to update video status")
	}

	s.logger.Info("Video status updated", "companyID", companyID, "videoID", videoID, "status", status)

	return nil
}

// SetVideoFeatured toggles the featured flag after re-validating ownership.
func (s *videoService) SetVideoFeatured(ctx context.Context, companyID, videoID uuid.UUID, featured bool) error {
	if err := s.ownedVideo(ctx, companyID, videoID); err != nil {
		return err
	}

	if err := s.videoRepo.UpdateFeatured(ctx, videoID, featured); err != nil {
		return errors.Wrap(err, "failed to update video featured flag")
	}

	return nil
}

// RecordView increments the public view counter.
func (s *videoService) RecordView(ctx context.Context, videoID uuid.UUID) error {
	if err := s.videoRepo.IncrementViewCount(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return errors.Wrap(err, "failed to record view")
	}

	return nil
}

// ownedVideo fetches the video and verifies it belongs to the caller's
// company. A row owned by another tenant reports the same not-found error as
// a missing row, so ids cannot be probed across tenants.
func (s *videoService) ownedVideo(ctx context.Context, companyID, videoID uuid.UUID) error {
	video, err := s.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return errors.Wrap(err, "failed to find video")
	}

	if video.CompanyID != companyID {
		return errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
	}

	return nil
}

func companyListing(video *entity.Video) *entity.VideoListing {
	return &entity.VideoListing{
		ID:           video.ID,
		CompanyID:    video.CompanyID,
		Title:        video.Title,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		ViewCount:    video.ViewCount,
		Status:       video.Status,
		Featured:     video.Featured,
		Source:       entity.SourceCompany,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}
}

func customerListing(review *entity.Review) *entity.VideoListing {
	return &entity.VideoListing{
		ID:            review.ID,
		CompanyID:     review.CompanyID,
		Title:         "Review by " + review.ReviewerName,
		VideoURL:      review.VideoURL,
		Status:        review.Status,
		Featured:      review.IsFeatured,
		Source:        entity.SourceCustomer,
		ReviewerName:  review.ReviewerName,
		ReviewerEmail: review.ReviewerEmail,
		Rating:        review.Rating,
		CreatedAt:     review.CreatedAt,
		UpdatedAt:     review.UpdatedAt,
	}
}
