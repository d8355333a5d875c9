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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create persists a new profile binding an identity to a company.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCompanyNotFound.WrapMessage("invalid company reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Update the entity with generated values
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// FindByUserID retrieves the profile for an external identity.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		UserID:    data.UserID,
		CompanyID: data.CompanyID,
		Role:      data.Role,
		CreatedAt: data.CreatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        data.ID,
		UserID:    data.UserID,
		CompanyID: data.CompanyID,
		Role:      data.Role,
		CreatedAt: data.CreatedAt,
	}
}
