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

// companyRepository implements the repository.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

// Create persists a new company.
func (repo *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required company information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	// Update the entity with generated values
	company.ID = companyM.ID
	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// FindByID retrieves a company by its unique ID.
func (repo *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&companyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by ID")
	}

	return toCompanyDomain(&companyM), nil
}

// Update modifies an existing company.
func (repo *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	result := repo.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("id = ?", company.ID).
		Updates(map[string]any{
			"name":             companyM.Name,
			"website":          companyM.Website,
			"logo_url":         companyM.LogoURL,
			"description":      companyM.Description,
			"brand_color":      companyM.BrandColor,
			"google_place_id":  companyM.GooglePlaceID,
			"facebook_page_id": companyM.FacebookPageID,
			"contact_email":    companyM.ContactEmail,
			"contact_phone":    companyM.ContactPhone,
			"contact_address":  companyM.ContactAddress,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update company")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCompanyDomain converts a GORM CompanyModel to a domain Company entity.
func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	return &entity.Company{
		ID:             data.ID,
		Name:           data.Name,
		Website:        data.Website,
		LogoURL:        data.LogoURL,
		Description:    data.Description,
		BrandColor:     data.BrandColor,
		GooglePlaceID:  data.GooglePlaceID,
		FacebookPageID: data.FacebookPageID,
		ContactEmail:   data.ContactEmail,
		ContactPhone:   data.ContactPhone,
		ContactAddress: data.ContactAddress,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromCompanyDomain converts a domain Company entity to a GORM CompanyModel.
func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	return &model.CompanyModel{
		ID:             data.ID,
		Name:           data.Name,
		Website:        data.Website,
		LogoURL:        data.LogoURL,
		Description:    data.Description,
		BrandColor:     data.BrandColor,
		GooglePlaceID:  data.GooglePlaceID,
		FacebookPageID: data.FacebookPageID,
		ContactEmail:   data.ContactEmail,
		ContactPhone:   data.ContactPhone,
		ContactAddress: data.ContactAddress,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
