package impl

import (
	"context"
	"log/slog"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/domain/service"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type companyService struct {
	companyRepo   repository.CompanyRepository
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// CompanyServiceParams holds dependencies for CompanyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	CompanyRepo   repository.CompanyRepository
	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCompanyService creates a new company service instance.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		companyRepo:   params.CompanyRepo,
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// Onboard creates the company and the owner profile in one transaction, so a
// failed profile insert never leaves an orphan company behind.
func (s *companyService) Onboard(ctx context.Context, userID uuid.UUID, input *usecase.OnboardInput) (*entity.Company, error) {
	s.logger.Info("Onboarding company", "userID", userID, "name", input.Name)

	company := entity.NewCompany(input.Name)
	company.Website = input.Website
	company.LogoURL = input.LogoURL
	company.Description = input.Description
	company.BrandColor = input.BrandColor
	company.ContactEmail = input.ContactEmail
	company.ContactPhone = input.ContactPhone
	company.ContactAddress = input.ContactAddress

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCompanyRepository().Create(ctx, company); err != nil {
			return errors.Wrap(err, "failed to create company")
		}

		profile := entity.NewProfile(userID, company.ID, entity.RoleOwner)
		if err := repoFactory.NewProfileRepository().Create(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrDuplicateProfile) {
				return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "identity already onboarded")
			}

			return errors.Wrap(err, "failed to create owner profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "onboarding failed")
	}

	return company, nil
}

// GetCompany returns the caller's own company record.
func (s *companyService) GetCompany(ctx context.Context, companyID uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "company not found")
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	return company, nil
}

// GetPublicCompany returns the company for public submit and showcase pages.
// It is the same read as GetCompany; handlers decide which fields to expose.
func (s *companyService) GetPublicCompany(ctx context.Context, companyID uuid.UUID) (*entity.Company, error) {
	return s.GetCompany(ctx, companyID)
}

// UpdateCompany applies the non-nil input fields to the caller's company.
func (s *companyService) UpdateCompany(ctx context.Context, companyID, targetID uuid.UUID, input *usecase.UpdateCompanyInput) (*entity.Company, error) {
	if companyID != targetID {
		return nil, errors.Wrap(domainerrors.ErrCompanyOwnershipViolation, "target company is not the caller's")
	}

	s.logger.Info("Updating company", "companyID", companyID)

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "company not found")
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	applyCompanyInput(company, input)

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, errors.Wrap(err, "failed to update company")
	}

	return company, nil
}

// SubmitQRCode renders the submit-page QR code for the caller's own company.
func (s *companyService) SubmitQRCode(ctx context.Context, companyID, targetID uuid.UUID) ([]byte, error) {
	if companyID != targetID {
		return nil, errors.Wrap(domainerrors.ErrCompanyOwnershipViolation, "target company is not the caller's")
	}

	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateSubmitQR(companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate submit QR code")
	}

	return png, nil
}

func applyCompanyInput(company *entity.Company, input *usecase.UpdateCompanyInput) {
	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Website != nil {
		company.Website = *input.Website
	}
	if input.LogoURL != nil {
		company.LogoURL = *input.LogoURL
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.BrandColor != nil {
		company.BrandColor = *input.BrandColor
	}
	if input.GooglePlaceID != nil {
		company.GooglePlaceID = *input.GooglePlaceID
	}
	if input.FacebookPageID != nil {
		company.FacebookPageID = *input.FacebookPageID
	}
	if input.ContactEmail != nil {
		company.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		company.ContactPhone = *input.ContactPhone
	}
	if input.ContactAddress != nil {
		company.ContactAddress = *input.ContactAddress
	}
}
