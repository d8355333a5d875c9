package impl

import (
	"context"
	"log/slog"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	videoRepo  repository.VideoRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	VideoRepo  repository.VideoRepository
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		videoRepo:  params.VideoRepo,
		logger:     params.Logger,
	}
}

// CreateReview records a manually entered review. The entity constructor
// forces pending status and a cleared featured flag.
func (s *reviewService) CreateReview(ctx context.Context, companyID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	s.logger.Info("Creating review", "companyID", companyID, "reviewer", input.ReviewerName)

	review := entity.NewReview(companyID, input.VideoID, input.ReviewerName, input.ReviewerEmail, input.ReviewerAvatar, input.Rating, input.Comment, input.VideoURL)

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}

// ListReviews returns the company's reviews, newest first.
func (s *reviewService) ListReviews(ctx context.Context, companyID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// SetReviewStatus moderates a review after re-validating ownership.
func (s *reviewService) SetReviewStatus(ctx context.Context, companyID, reviewID uuid.UUID, status entity.ModerationStatus) error {
	if !status.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidStatus, "unknown moderation status")
	}

	if err := s.ownedReview(ctx, companyID, reviewID); err != nil {
		return err
	}

	if err := s.reviewRepo.UpdateStatus(ctx, reviewID, status); err != nil {
		return errors.Wrap(err, "failed to update review status")
	}

	s.logger.Info("Review status updated", "companyID", companyID, "reviewID", reviewID, "status", status)

	return nil
}

// SetReviewFeatured toggles the featured flag after re-validating ownership.
func (s *reviewService) SetReviewFeatured(ctx context.Context, companyID, reviewID uuid.UUID, featured bool) error {
	if err := s.ownedReview(ctx, companyID, reviewID); err != nil {
		return err
	}

	if err := s.reviewRepo.UpdateFeatured(ctx, reviewID, featured); err != nil {
		return errors.Wrap(err, "failed to update review featured flag")
	}

	return nil
}

// DeleteReview permanently removes a review after re-validating ownership.
func (s *reviewService) DeleteReview(ctx context.Context, companyID, reviewID uuid.UUID) error {
	if err := s.ownedReview(ctx, companyID, reviewID); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	s.logger.Info("Review deleted", "companyID", companyID, "reviewID", reviewID)

	return nil
}

// Stats computes the dashboard counters from the company's rows.
func (s *reviewService) Stats(ctx context.Context, companyID uuid.UUID) (*usecase.DashboardStats, error) {
	reviews, err := s.reviewRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	videos, err := s.videoRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	stats := &usecase.DashboardStats{
		TotalReviews: len(reviews),
		TotalVideos:  len(videos),
	}

	for _, review := range reviews {
		switch review.Status {
		case entity.StatusApproved:
			stats.ApprovedReviews++
		case entity.StatusPending:
			stats.PendingReviews++
		}
		if review.IsFeatured {
			stats.FeaturedReviews++
		}
	}

	for _, video := range videos {
		switch video.Status {
		case entity.StatusApproved:
			stats.ApprovedVideos++
		case entity.StatusPending:
			stats.PendingVideos++
		}
		if video.Featured {
			stats.FeaturedVideos++
		}
	}

	return stats, nil
}

// ownedReview fetches the review and verifies company ownership, reporting
// cross-tenant rows as not found.
func (s *reviewService) ownedReview(ctx context.Context, companyID, reviewID uuid.UUID) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}

		return errors.Wrap(err, "failed to find review")
	}

	if review.CompanyID != companyID {
		return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
	}

	return nil
}
