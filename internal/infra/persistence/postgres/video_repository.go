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

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{
		db: db,
	}
}

// Create persists a new video.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCompanyNotFound.WrapMessage("invalid company reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required video information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	// Update the entity with generated values
	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

// FindByID retrieves a video by its unique ID.
func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by ID")
	}

	return toVideoDomain(&videoM), nil
}

// FindByCompany retrieves all videos belonging to a company.
func (repo *videoRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Video, error) {
	var videoModels []*model.VideoModel

	if err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&videoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find videos by company")
	}

	videos := make([]*entity.Video, 0, len(videoModels))
	for _, videoM := range videoModels {
		videos = append(videos, toVideoDomain(videoM))
	}

	return videos, nil
}

// UpdateStatus sets the moderation status of a video.
func (repo *videoRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ModerationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update video status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// UpdateFeatured sets the featured flag of a video.
func (repo *videoRepository) UpdateFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Update("featured", featured)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update video featured flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// IncrementViewCount adds one to the video's view counter atomically in the
// database, keeping the counter monotone under concurrent views.
func (repo *videoRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment video view count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVideoDomain converts a GORM VideoModel to a domain Video entity.
func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	return &entity.Video{
		ID:           data.ID,
		CompanyID:    data.CompanyID,
		Title:        data.Title,
		Description:  data.Description,
		VideoURL:     data.VideoURL,
		ThumbnailURL: data.ThumbnailURL,
		Duration:     data.Duration,
		ViewCount:    data.ViewCount,
		Status:       entity.ModerationStatus(data.Status),
		Featured:     data.Featured,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromVideoDomain converts a domain Video entity to a GORM VideoModel.
func fromVideoDomain(data *entity.Video) *model.VideoModel {
	if data == nil {
		return nil
	}

	return &model.VideoModel{
		ID:           data.ID,
		CompanyID:    data.CompanyID,
		Title:        data.Title,
		Description:  data.Description,
		VideoURL:     data.VideoURL,
		ThumbnailURL: data.ThumbnailURL,
		Duration:     data.Duration,
		ViewCount:    data.ViewCount,
		Status:       data.Status.String(),
		Featured:     data.Featured,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
