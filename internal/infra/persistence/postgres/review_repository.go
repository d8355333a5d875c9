// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCompanyNotFound.WrapMessage("invalid company or video reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByCompany retrieves all reviews belonging to a company.
func (repo *reviewRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by company")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// FindWithVideoByCompany retrieves the company's reviews that carry a video URL.
func (repo *reviewRepository) FindWithVideoByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("company_id = ? AND video_url <> ''", companyID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews with video by company")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// UpdateStatus sets the moderation status of a review.
func (repo *reviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ModerationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// UpdateFeatured sets the featured flag of a review.
func (repo *reviewRepository) UpdateFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("is_featured", featured)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review featured flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review permanently.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:             data.ID,
		CompanyID:      data.CompanyID,
		VideoID:        data.VideoID,
		ReviewerName:   data.ReviewerName,
		ReviewerEmail:  data.ReviewerEmail,
		ReviewerAvatar: data.ReviewerAvatar,
		Rating:         data.Rating,
		Comment:        data.Comment,
		VideoURL:       data.VideoURL,
		Status:         entity.ModerationStatus(data.Status),
		IsFeatured:     data.IsFeatured,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:             data.ID,
		CompanyID:      data.CompanyID,
		VideoID:        data.VideoID,
		ReviewerName:   data.ReviewerName,
		ReviewerEmail:  data.ReviewerEmail,
		ReviewerAvatar: data.ReviewerAvatar,
		Rating:         data.Rating,
		Comment:        data.Comment,
		VideoURL:       data.VideoURL,
		Status:         data.Status.String(),
		IsFeatured:     data.IsFeatured,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
